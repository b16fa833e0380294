package hookcfg

import (
	"errors"
	"fmt"
	"regexp"
)

// Error describes one validation failure, pointing at the offending field
// with a document path such as "repos[1].hooks[0].id".
type Error struct {
	Path string
	Msg  string
}

func (e *Error) Error() string {
	return e.Path + ": " + e.Msg
}

// revPattern accepts git revision-ish tokens: tags, branches, and commit
// hashes. Whitespace and shell metacharacters are rejected.
var revPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._/+-]*$`)

// ValidRev reports whether rev is a syntactically plausible version pin.
func ValidRev(rev string) bool {
	return revPattern.MatchString(rev)
}

// Validate checks the document against the schema rules and returns every
// violation found, joined into a single error. A nil return means the
// document is valid.
func (c *Config) Validate() error {
	var errs []error
	fail := func(path, format string, args ...any) {
		errs = append(errs, &Error{Path: path, Msg: fmt.Sprintf(format, args...)})
	}

	if c.Repos == nil {
		fail("repos", "required key is missing")
	}

	for i, s := range c.DefaultStages {
		if !s.Known() {
			fail(fmt.Sprintf("default_stages[%d]", i), "unknown stage %q", s)
		}
	}

	seen := make(map[string]int)
	for i, repo := range c.Repos {
		path := fmt.Sprintf("repos[%d]", i)

		if repo.Repo == "" {
			fail(path+".repo", "required field is missing")
		}

		switch {
		case repo.IsLocal():
			if repo.Rev != "" {
				fail(path+".rev", "local providers take no rev")
			}
		case repo.Repo != "":
			if repo.Rev == "" {
				fail(path+".rev", "required field is missing")
			} else if !ValidRev(repo.Rev) {
				fail(path+".rev", "%q is not a valid revision", repo.Rev)
			}
		}

		// A provider is identified by source plus pin; the same pair
		// twice makes execution order ambiguous.
		if repo.Repo != "" {
			key := repo.Repo + "@" + repo.Rev
			if prev, dup := seen[key]; dup {
				fail(path, "duplicate provider %s (first declared at repos[%d])", key, prev)
			} else {
				seen[key] = i
			}
		}

		for j, hook := range repo.Hooks {
			validateHook(path+fmt.Sprintf(".hooks[%d]", j), repo, hook, fail)
		}
	}

	return errors.Join(errs...)
}

func validateHook(path string, repo Repo, hook Hook, fail func(path, format string, args ...any)) {
	if hook.ID == "" {
		fail(path+".id", "required field is missing")
	}

	// Local hooks have no provider manifest to fall back on, so the
	// invocation must be spelled out in the document.
	if repo.IsLocal() {
		if hook.Entry == "" {
			fail(path+".entry", "required for local hooks")
		}
		if hook.Language == "" {
			fail(path+".language", "required for local hooks")
		}
	}

	for k, s := range hook.Stages {
		if !s.Known() {
			fail(fmt.Sprintf("%s.stages[%d]", path, k), "unknown stage %q", s)
		}
	}

	if hook.Files != "" {
		if _, err := regexp.Compile(hook.Files); err != nil {
			fail(path+".files", "invalid pattern: %v", err)
		}
	}
	if hook.Exclude != "" {
		if _, err := regexp.Compile(hook.Exclude); err != nil {
			fail(path+".exclude", "invalid pattern: %v", err)
		}
	}
}
