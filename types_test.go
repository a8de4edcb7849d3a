package md2docx

import (
	"errors"
	"testing"
)

func TestStyleConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		config    *StyleConfig
		expectErr error
	}{
		{name: "nil config means defaults", config: nil, expectErr: nil},
		{name: "minimum size", config: &StyleConfig{BaseFontSize: 8}, expectErr: nil},
		{name: "maximum size", config: &StyleConfig{BaseFontSize: 16}, expectErr: nil},
		{name: "too small", config: &StyleConfig{BaseFontSize: 7}, expectErr: ErrInvalidFontSize},
		{name: "too large", config: &StyleConfig{BaseFontSize: 17}, expectErr: ErrInvalidFontSize},
		{name: "zero is invalid when explicit", config: &StyleConfig{}, expectErr: ErrInvalidFontSize},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.config.Validate()
			if !errors.Is(err, tt.expectErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.expectErr)
			}
		})
	}
}

func TestDefaultStyleConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultStyleConfig()
	if cfg.BaseFontSize != DefaultFontSize {
		t.Errorf("BaseFontSize = %d, want %d", cfg.BaseFontSize, DefaultFontSize)
	}
	if !cfg.ColoredHeadings {
		t.Error("ColoredHeadings should default to true")
	}
	if !cfg.PreserveMath {
		t.Error("PreserveMath should default to true")
	}
	if cfg.Title != "" {
		t.Errorf("Title should default to empty, got %q", cfg.Title)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate, got %v", err)
	}
}
