package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/alnah/go-md2docx/internal/config"
)

func TestURLBase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rawURL   string
		expected string
	}{
		{
			name:     "file name from path",
			rawURL:   "https://raw.githubusercontent.com/o/r/main/docs/guide.md",
			expected: "guide.md",
		},
		{
			name:     "root path falls back",
			rawURL:   "https://raw.githubusercontent.com/",
			expected: "document.md",
		},
		{
			name:     "empty path falls back",
			rawURL:   "https://raw.githubusercontent.com",
			expected: "document.md",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := urlBase(tt.rawURL); got != tt.expected {
				t.Errorf("urlBase(%q) = %q, want %q", tt.rawURL, got, tt.expected)
			}
		})
	}
}

func TestResolveWorkers(t *testing.T) {
	t.Parallel()

	if got := resolveWorkers(3); got != 3 {
		t.Errorf("explicit workers = %d, want 3", got)
	}

	auto := resolveWorkers(0)
	if auto < minWorkers || auto > maxWorkers {
		t.Errorf("auto workers = %d, want within [%d,%d]", auto, minWorkers, maxWorkers)
	}
	if n := runtime.GOMAXPROCS(0); n <= maxWorkers && auto != n {
		t.Errorf("auto workers = %d, want GOMAXPROCS %d", auto, n)
	}
}

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Style.Title = "From Config"

	mergeFlags(cfg, &convertFlags{
		title:       "From Flag",
		fontSize:    14,
		noMath:      true,
		noHighlight: true,
		output:      "out",
	})

	if cfg.Style.Title != "From Flag" {
		t.Errorf("Title = %q, flag should win", cfg.Style.Title)
	}
	if cfg.Style.BaseFontSize != 14 {
		t.Errorf("BaseFontSize = %d, want 14", cfg.Style.BaseFontSize)
	}
	if cfg.Style.PreserveMath {
		t.Error("PreserveMath should be off after --no-math")
	}
	if cfg.Style.HighlightStyle != "" {
		t.Errorf("HighlightStyle = %q, want disabled", cfg.Style.HighlightStyle)
	}
	if cfg.Output.DefaultDir != "out" {
		t.Errorf("DefaultDir = %q, want %q", cfg.Output.DefaultDir, "out")
	}
}

func TestMergeFlagsUnsetKeepConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Style.Title = "Kept"
	cfg.Style.BaseFontSize = 10

	mergeFlags(cfg, &convertFlags{fontSize: fontSizeUnset})

	if cfg.Style.Title != "Kept" {
		t.Errorf("Title = %q, want config value kept", cfg.Style.Title)
	}
	if cfg.Style.BaseFontSize != 10 {
		t.Errorf("BaseFontSize = %d, want config value kept", cfg.Style.BaseFontSize)
	}
}

func TestRunConvertsFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(input, []byte("# Hello\n\nbody **bold**\n"), 0o600); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	flags := &convertFlags{fontSize: fontSizeUnset, output: dir, quiet: true}
	if err := run(context.Background(), flags, []string{input}); err != nil {
		t.Fatalf("run() error: %v", err)
	}

	output := filepath.Join(dir, "doc.docx")
	info, err := os.Stat(output)
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}
}

func TestRunRejectsBadExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(input, []byte("# Hello\n"), 0o600); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	flags := &convertFlags{fontSize: fontSizeUnset, quiet: true}
	err := run(context.Background(), flags, []string{input})
	if !errors.Is(err, ErrInvalidExtension) {
		t.Errorf("run() error = %v, want ErrInvalidExtension", err)
	}
}

func TestRunNoInput(t *testing.T) {
	t.Parallel()

	flags := &convertFlags{fontSize: fontSizeUnset, quiet: true}
	err := run(context.Background(), flags, nil)
	if !errors.Is(err, ErrNoInput) {
		t.Errorf("run() error = %v, want ErrNoInput", err)
	}
}
