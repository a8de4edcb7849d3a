// Package config loads the optional CLI configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds persistent defaults for document generation. Flags override
// whatever is loaded here.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Style  StyleConfig  `yaml:"style"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // default output directory (empty = next to source)
}

// StyleConfig defines document styling defaults.
type StyleConfig struct {
	Title           string `yaml:"title"`           // document title (usually set per run via flag)
	BaseFontSize    int    `yaml:"baseFontSize"`    // points, 8-16
	ColoredHeadings bool   `yaml:"coloredHeadings"` // 3-tier blue heading palette
	PreserveMath    bool   `yaml:"preserveMath"`    // transliterate LaTeX math
	HighlightStyle  string `yaml:"highlightStyle"`  // chroma style for code fences
}

// DefaultConfig returns the defaults used when no config file is given.
func DefaultConfig() *Config {
	return &Config{
		Style: StyleConfig{
			BaseFontSize:    12,
			ColoredHeadings: true,
			PreserveMath:    true,
			HighlightStyle:  "github",
		},
	}
}

// LoadConfig loads configuration from a file path or config name. If
// nameOrPath contains a path separator it is treated as a file path;
// otherwise it is searched in standard locations. Missing keys keep their
// default values; unknown keys are rejected.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return cfg, nil
}

// resolveConfigPath searches for a config file by name: .yaml then .yml,
// in the current directory then ~/.config/go-md2docx/.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	tried := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		tried = append(tried, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-md2docx", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			tried = append(tried, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
