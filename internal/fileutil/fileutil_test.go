package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "present.md")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	if !FileExists(file) {
		t.Error("FileExists() = false for an existing file")
	}
	if FileExists(filepath.Join(dir, "absent.md")) {
		t.Error("FileExists() = true for a missing file")
	}
	if FileExists(dir) {
		t.Error("FileExists() = true for a directory")
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected bool
	}{
		{"config", false},
		{"./config.yaml", true},
		{"dir/config.yaml", true},
		{`dir\config.yaml`, true},
	}

	for _, tt := range tests {
		if got := IsFilePath(tt.input); got != tt.expected {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestIsURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected bool
	}{
		{"https://example.com/doc.md", true},
		{"http://example.com/doc.md", true},
		{"ftp://example.com/doc.md", false},
		{"doc.md", false},
	}

	for _, tt := range tests {
		if got := IsURL(tt.input); got != tt.expected {
			t.Errorf("IsURL(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestIsMarkdownFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected bool
	}{
		{"doc.md", true},
		{"doc.markdown", true},
		{"DOC.MD", true},
		{"doc.txt", false},
		{"doc", false},
		{"md", false},
	}

	for _, tt := range tests {
		if got := IsMarkdownFile(tt.input); got != tt.expected {
			t.Errorf("IsMarkdownFile(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestOutputName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		dir      string
		expected string
	}{
		{
			name:     "next to input",
			input:    filepath.Join("notes", "doc.md"),
			dir:      "",
			expected: filepath.Join("notes", "doc.docx"),
		},
		{
			name:     "explicit directory",
			input:    filepath.Join("notes", "doc.md"),
			dir:      "out",
			expected: filepath.Join("out", "doc.docx"),
		},
		{
			name:     "markdown extension",
			input:    "doc.markdown",
			dir:      "",
			expected: "doc.docx",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := OutputName(tt.input, tt.dir); got != tt.expected {
				t.Errorf("OutputName(%q, %q) = %q, want %q", tt.input, tt.dir, got, tt.expected)
			}
		})
	}
}
