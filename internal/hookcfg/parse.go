package hookcfg

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes a hook configuration document. Decoding is strict: unknown
// keys anywhere in the document are errors, as is a document that is empty
// or not a mapping. Parse does not validate field contents; call
// Config.Validate for that.
func Parse(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse hook config: document is empty")
		}
		return nil, fmt.Errorf("parse hook config: %w", err)
	}

	// A trailing second document means the file is not the single-document
	// format the runner reads.
	if err := dec.Decode(new(yaml.Node)); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse hook config: unexpected second document")
	}

	// An absent hooks key and `hooks: []` mean the same thing. Canonicalize
	// to nil so parse→marshal→parse is an identity for both spellings.
	for i := range cfg.Repos {
		if len(cfg.Repos[i].Hooks) == 0 {
			cfg.Repos[i].Hooks = nil
		}
	}

	return &cfg, nil
}

// Load reads and parses the document at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read hook config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Marshal serializes the document in canonical form: two-space indentation,
// fields in declaration order, optional fields omitted when empty. Parsing
// the output yields a Config equal to the input (round-trip property).
func Marshal(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("marshal hook config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshal hook config: %w", err)
	}
	return buf.Bytes(), nil
}
