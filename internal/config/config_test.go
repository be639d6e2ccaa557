package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAppliesDefaultsForMissingFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lam-check.yaml")
	if err := os.WriteFile(path, []byte("builtins: [\"double\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if opts.OccursCheck != OccursCheckReport {
		t.Fatalf("expected default occurs_check %q, got %q", OccursCheckReport, opts.OccursCheck)
	}
	if len(opts.Builtins) != 1 || opts.Builtins[0] != "double" {
		t.Fatalf("expected builtins [double], got %v", opts.Builtins)
	}
}

func TestLoadRejectsUnknownOccursCheckMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lam-check.yaml")
	if err := os.WriteFile(path, []byte("occurs_check: bogus\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for an unknown occurs_check mode")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := Default()
	if opts.OccursCheck != OccursCheckReport {
		t.Fatalf("expected report mode by default, got %q", opts.OccursCheck)
	}
	if opts.MaxDiagnostics != 0 {
		t.Fatalf("expected unlimited diagnostics by default, got %d", opts.MaxDiagnostics)
	}
}
