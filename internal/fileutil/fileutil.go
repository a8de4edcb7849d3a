// Package fileutil provides file and path utility functions for the CLI.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than
// a bare name: anything containing a path separator is treated as a path.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsURL returns true if the string looks like an http(s) URL.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// IsMarkdownFile returns true for .md and .markdown extensions,
// case-insensitive.
func IsMarkdownFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// OutputName derives the .docx output path for a markdown input path,
// placing it in dir when dir is non-empty, else next to the input.
func OutputName(inputPath, dir string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath)) + ".docx"
	if dir == "" {
		return filepath.Join(filepath.Dir(inputPath), base)
	}
	return filepath.Join(dir, base)
}
