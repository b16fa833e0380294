// Package hookcfg models hook-runner configuration documents: an ordered
// list of hook providers, each pinned to a revision and declaring the hook
// entries it contributes. It parses, validates, and re-serializes the
// document; running hooks is out of scope.
package hookcfg

// ConfigFileName is the default document name looked up in a repository root.
const ConfigFileName = ".pre-commit-config.yaml"

// LocalRepo is the reserved source for hooks defined inline in the document
// rather than fetched from a remote provider. Local providers carry no rev.
const LocalRepo = "local"

// Stage identifies a git lifecycle point at which a hook is eligible to run.
type Stage string

const (
	StagePreCommit        Stage = "pre-commit"
	StagePreMergeCommit   Stage = "pre-merge-commit"
	StagePrePush          Stage = "pre-push"
	StagePrepareCommitMsg Stage = "prepare-commit-msg"
	StageCommitMsg        Stage = "commit-msg"
	StagePostCheckout     Stage = "post-checkout"
	StagePostCommit       Stage = "post-commit"
	StagePostMerge        Stage = "post-merge"
	StagePostRewrite      Stage = "post-rewrite"
	StagePreRebase        Stage = "pre-rebase"
	StageManual           Stage = "manual"
)

// Stages lists every known stage in lifecycle order.
func Stages() []Stage {
	return []Stage{
		StagePreCommit,
		StagePreMergeCommit,
		StagePrepareCommitMsg,
		StageCommitMsg,
		StagePostCommit,
		StagePrePush,
		StagePostCheckout,
		StagePostMerge,
		StagePostRewrite,
		StagePreRebase,
		StageManual,
	}
}

var knownStages = func() map[Stage]bool {
	m := make(map[Stage]bool, len(Stages()))
	for _, s := range Stages() {
		m[s] = true
	}
	return m
}()

// Known reports whether s is one of the recognized stages.
func (s Stage) Known() bool {
	return knownStages[s]
}

// Config is the top-level hook configuration document.
type Config struct {
	// Repos is the ordered provider list. Order fixes execution order
	// within a provider; there is no cross-provider ordering guarantee.
	Repos []Repo `yaml:"repos"`

	// DefaultStages applies to hook entries that declare no stages.
	DefaultStages []Stage `yaml:"default_stages,omitempty"`

	// FailFast tells the runner to stop after the first failing hook.
	FailFast bool `yaml:"fail_fast,omitempty"`
}

// Repo declares one hook provider: where its implementation comes from and
// which of its hooks this document enables.
type Repo struct {
	Repo string `yaml:"repo"`
	Rev  string `yaml:"rev,omitempty"`

	// Hooks may be empty; a provider with no enabled hooks is accepted.
	// Parse leaves an absent or empty hooks list as nil, and Marshal
	// omits it, so the two spellings are one canonical form.
	Hooks []Hook `yaml:"hooks,omitempty"`
}

// IsLocal reports whether the provider defines its hooks inline.
func (r Repo) IsLocal() bool {
	return r.Repo == LocalRepo
}

// Hook enables a single hook from its provider, optionally overriding how it
// is invoked and narrowing when it applies.
type Hook struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name,omitempty"`
	Alias string `yaml:"alias,omitempty"`

	// Entry replaces the provider's invocation; Args are appended to it.
	// Args order is preserved exactly as written.
	Entry string   `yaml:"entry,omitempty"`
	Args  []string `yaml:"args,omitempty"`

	Language               string   `yaml:"language,omitempty"`
	AdditionalDependencies []string `yaml:"additional_dependencies,omitempty"`

	// Stages and Types narrow when the hook runs; Files and Exclude are
	// regular expressions matched against candidate paths.
	Stages  []Stage  `yaml:"stages,omitempty"`
	Types   []string `yaml:"types,omitempty"`
	Files   string   `yaml:"files,omitempty"`
	Exclude string   `yaml:"exclude,omitempty"`

	AlwaysRun bool `yaml:"always_run,omitempty"`
	Verbose   bool `yaml:"verbose,omitempty"`
}

// DisplayName returns the human-readable label for the entry, falling back
// to the hook ID when no name is set.
func (h Hook) DisplayName() string {
	if h.Name != "" {
		return h.Name
	}
	return h.ID
}
