package md2docx

import "fmt"

// Base font size bounds in points.
const (
	MinFontSize     = 8
	MaxFontSize     = 16
	DefaultFontSize = 12
)

// defaultHighlightStyle is the chroma style used for code blocks unless
// overridden or disabled.
const defaultHighlightStyle = "github"

// StyleConfig configures a single conversion. It is read-only input: the
// engine never mutates it and keeps no state across calls, so one config
// value may serve concurrent conversions.
type StyleConfig struct {
	Title           string // centered document title; empty = no title paragraph
	BaseFontSize    int    // points, 8-16
	ColoredHeadings bool   // apply the 3-tier blue heading palette
	PreserveMath    bool   // recognize \(...\) and \[...\] and transliterate
}

// DefaultStyleConfig returns a config with the default values.
func DefaultStyleConfig() *StyleConfig {
	return &StyleConfig{
		BaseFontSize:    DefaultFontSize,
		ColoredHeadings: true,
		PreserveMath:    true,
	}
}

// Validate checks that the config is usable. Returns nil for a nil
// receiver (nil means use defaults).
func (c *StyleConfig) Validate() error {
	if c == nil {
		return nil
	}
	if c.BaseFontSize < MinFontSize || c.BaseFontSize > MaxFontSize {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidFontSize, c.BaseFontSize, MinFontSize, MaxFontSize)
	}
	return nil
}

// Input contains conversion parameters.
type Input struct {
	Markdown string       // Markdown content (required)
	Style    *StyleConfig // style settings (optional, nil = defaults)
}

// ConvertResult holds the conversion output.
type ConvertResult struct {
	DOCX []byte // complete .docx package bytes
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	highlightStyle string
}

// WithHighlightStyle sets the chroma style used to colour fenced code
// blocks that carry a language tag.
func WithHighlightStyle(name string) Option {
	return func(c *Converter) {
		c.cfg.highlightStyle = name
	}
}

// WithoutSyntaxHighlight disables code-block colouring; fences render as
// plain monospace regardless of language tag.
func WithoutSyntaxHighlight() Option {
	return func(c *Converter) {
		c.cfg.highlightStyle = ""
	}
}
