// Package config loads the checker's option file, following the
// teacher's gopkg.in/yaml.v3-based spec-file loader.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// OccursCheckMode selects how the solver reports an occurs-check
// violation: a reported InfiniteType diagnostic (the default, per
// spec.md's documented open-question decision) or a silent failure of
// just that branch, matching the alternative spec.md says is also
// conforming.
type OccursCheckMode string

const (
	OccursCheckReport OccursCheckMode = "report"
	OccursCheckSilent OccursCheckMode = "silent"
)

// Options is the checker's option file, `lam-check.yaml` by
// convention.
type Options struct {
	// Builtins lists which names the root environment preloads beyond
	// the fixed set spec.md §4.4 always includes (String, Int, Bool,
	// True, False, +, -, *, /, ==, not). Disabling an entry here has
	// no effect on that fixed set; it only gates this implementation's
	// supplemented extras (see internal/check/builtins.go).
	Builtins []string `yaml:"builtins"`

	// OccursCheck selects InfiniteType reporting vs. silent failure.
	OccursCheck OccursCheckMode `yaml:"occurs_check"`

	// ColorOutput forces colored CLI diagnostics on or off; nil means
	// cmd/checklam decides via go-isatty.
	ColorOutput *bool `yaml:"color_output"`

	// MaxDiagnostics caps how many diagnostics cmd/checklam prints
	// before truncating, 0 meaning unlimited.
	MaxDiagnostics int `yaml:"max_diagnostics"`
}

// Default returns the checker's built-in defaults, used when no
// option file is present.
func Default() *Options {
	return &Options{
		OccursCheck:    OccursCheckReport,
		MaxDiagnostics: 0,
	}
}

// Load reads and parses an option file at path.
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var opts Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if opts.OccursCheck == "" {
		opts.OccursCheck = OccursCheckReport
	}
	if opts.OccursCheck != OccursCheckReport && opts.OccursCheck != OccursCheckSilent {
		return nil, fmt.Errorf("config: occurs_check must be %q or %q, got %q", OccursCheckReport, OccursCheckSilent, opts.OccursCheck)
	}

	return &opts, nil
}
