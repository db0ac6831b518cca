package main

import (
	"errors"
	"flag"
	"path/filepath"
	"strings"
	"testing"

	"GopherNoise/perlin"
)

func TestShade(t *testing.T) {
	if shade(0) != ' ' {
		t.Errorf("Expected ' ' for 0, got %q", shade(0))
	}
	if shade(1) != '@' {
		t.Errorf("Expected '@' for 1, got %q", shade(1))
	}
	if shade(-5) != ' ' || shade(5) != '@' {
		t.Error("Out of range values should clamp to the ends of the ramp")
	}
}

func TestRenderPreview(t *testing.T) {
	noise := perlin.New(42)
	rows := renderPreview(noise, 20, 8, 0.25, perlin.DefaultZSlice)

	if len(rows) != 8 {
		t.Fatalf("Expected 8 rows, got %d", len(rows))
	}
	for j, row := range rows {
		if len(row) != 20 {
			t.Errorf("row %d: expected width 20, got %d", j, len(row))
		}
		for i := 0; i < len(row); i++ {
			if !strings.ContainsRune(shades, rune(row[i])) {
				t.Errorf("row %d: unexpected character %q", j, row[i])
			}
			want := shade(noise.Noise3D(float64(i)*0.25, float64(j)*0.25, perlin.DefaultZSlice))
			if row[i] != want {
				t.Errorf("(%d, %d): expected %q, got %q", i, j, want, row[i])
			}
		}
	}
}

func TestOptionsResolveOverrides(t *testing.T) {
	opts := options{seed: 5, seedSet: true, size: 64, backend: "opensimplex"}
	cfg, err := opts.resolve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Seed == nil || *cfg.Seed != 5 {
		t.Errorf("Expected seed 5, got %v", cfg.Seed)
	}
	if cfg.TableSize != 64 {
		t.Errorf("Expected table size 64, got %d", cfg.TableSize)
	}
	if cfg.Backend != "opensimplex" {
		t.Errorf("Expected backend opensimplex, got %s", cfg.Backend)
	}
}

func TestOptionsResolveRejectsBadSize(t *testing.T) {
	opts := options{size: 48}
	if _, err := opts.resolve(); err == nil {
		t.Error("Expected an error for table size 48")
	}
}

func TestRunUnknownCommand(t *testing.T) {
	if err := run("render", nil); err == nil {
		t.Error("Expected an error for an unknown command")
	}
}

func TestRunSample(t *testing.T) {
	if err := run("sample", []string{"-seed", "42", "-x", "0.5", "-y", "0.5", "-z", "0.5", "-log-level", "error"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSeedFlagRejectsTrailingText(t *testing.T) {
	var opts options
	fs := flag.NewFlagSet("sample", flag.ContinueOnError)
	opts.register(fs)

	if err := fs.Parse([]string{"-seed", "42abc"}); err == nil {
		t.Error("Expected an error for seed 42abc")
	}
	if opts.seedSet {
		t.Error("seed should not be marked as set after a parse error")
	}

	if err := fs.Parse([]string{"-seed", "-9"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !opts.seedSet || opts.seed != -9 {
		t.Errorf("Expected seed -9, got %d (set=%v)", opts.seed, opts.seedSet)
	}
}

func TestOptionsResolveMissingExplicitConfig(t *testing.T) {
	opts := options{configPath: filepath.Join(t.TempDir(), "absent.yaml")}
	if _, err := opts.resolve(); err == nil {
		t.Error("Expected an error when -config names a missing file")
	}
}

func TestOptionsResolveWithoutConfigUsesDefaults(t *testing.T) {
	var opts options
	cfg, err := opts.resolve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TableSize != perlin.DefaultTableSize {
		t.Errorf("Expected table size %d, got %d", perlin.DefaultTableSize, cfg.TableSize)
	}
}

func TestRunHelpIsNotAFailure(t *testing.T) {
	err := run("sample", []string{"-h"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("Expected flag.ErrHelp, got %v", err)
	}
	if code := exitCode(err); code != 0 {
		t.Errorf("Expected exit code 0 for help, got %d", code)
	}
}

func TestExitCode(t *testing.T) {
	if code := exitCode(nil); code != 0 {
		t.Errorf("Expected 0 for nil, got %d", code)
	}
	if code := exitCode(errors.New("boom")); code != 1 {
		t.Errorf("Expected 1 for an error, got %d", code)
	}
}
