package md2docx

import (
	"context"
	"fmt"

	"github.com/alnah/go-md2docx/internal/docx"
	"github.com/alnah/go-md2docx/internal/markdown"
)

// Compile-time interface implementation checks.
var _ markdownNormalizer = (*lineNormalizer)(nil)

// Converter runs the markdown-to-DOCX pipeline. It is stateless between
// calls and safe for concurrent use: every conversion works on its own
// block and span values, so a failure in one call cannot affect another
// in flight.
type Converter struct {
	cfg          converterConfig
	preprocessor markdownNormalizer
}

// NewConverter creates a Converter with default configuration. Use options
// to customize behavior (e.g., WithHighlightStyle).
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		cfg:          converterConfig{highlightStyle: defaultHighlightStyle},
		preprocessor: &lineNormalizer{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert runs the full pipeline and returns the result containing the
// .docx bytes. The context is checked between stages; the stages
// themselves are bounded by input size and need no cancellation points.
// Recovers from internal panics to prevent crashes from propagating to
// callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	style := input.Style
	if style == nil {
		style = DefaultStyleConfig()
	}

	// Normalize line endings and collapse multi-line math.
	content := c.preprocessor.Normalize(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Parse into blocks.
	blocks := markdown.Parse(content, style.PreserveMath)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Build the document package.
	data, err := docx.Build(blocks, docx.Style{
		Title:           style.Title,
		BaseFontSize:    style.BaseFontSize,
		ColoredHeadings: style.ColoredHeadings,
		HighlightStyle:  c.cfg.highlightStyle,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocxRender, err)
	}

	return &ConvertResult{DOCX: data}, nil
}

// validateInput checks that required fields are present and valid.
//
// This is the trust boundary for direct library users who build Input
// manually; the CLI validates earlier at config load time. Both paths
// converge here.
func (c *Converter) validateInput(input Input) error {
	if input.Markdown == "" {
		return ErrEmptyMarkdown
	}
	return input.Style.Validate()
}
