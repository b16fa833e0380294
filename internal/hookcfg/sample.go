package hookcfg

// SampleConfig returns a starter document: commit-message linting plus a
// Python linter and import sorter. Useful as `lilhook sample` output and as
// a known-good fixture in tests.
func SampleConfig() *Config {
	return &Config{
		Repos: []Repo{
			{
				Repo: "https://github.com/compilerla/conventional-pre-commit",
				Rev:  "v3.4.0",
				Hooks: []Hook{
					{
						ID:     "conventional-pre-commit",
						Stages: []Stage{StageCommitMsg},
					},
				},
			},
			{
				Repo: "https://github.com/astral-sh/ruff-pre-commit",
				Rev:  "v0.6.9",
				Hooks: []Hook{
					{
						ID:   "ruff",
						Args: []string{"--fix"},
					},
				},
			},
			{
				Repo: "https://github.com/pycqa/isort",
				Rev:  "5.13.2",
				Hooks: []Hook{
					{
						ID:   "isort",
						Args: []string{"--lai", "2", "--sl"},
					},
				},
			},
		},
	}
}
