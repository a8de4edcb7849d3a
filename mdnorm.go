package md2docx

import (
	"context"
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Display math region, possibly spanning lines. Non-greedy so two
	// regions on one document don't merge.
	displayMathRegion = regexp.MustCompile(`(?s)\\\[.*?\\\]`)
)

// markdownNormalizer defines the contract for the pre-parse normalization
// pass.
type markdownNormalizer interface {
	Normalize(ctx context.Context, content string) string
}

// lineNormalizer prepares raw Markdown for the line-oriented parser.
type lineNormalizer struct{}

// Normalize applies the normalization passes in order: line endings first,
// then display-math collapsing, so the math scan sees \n-only input.
func (n *lineNormalizer) Normalize(_ context.Context, content string) string {
	content = normalizeLineEndings(content)
	content = collapseDisplayMath(content)
	return content
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// collapseDisplayMath folds each multi-line \[...\] region onto a single
// line by replacing embedded newlines with spaces, so the parser never
// sees a math block split across lines.
func collapseDisplayMath(content string) string {
	return displayMathRegion.ReplaceAllStringFunc(content, func(region string) string {
		return strings.ReplaceAll(region, "\n", " ")
	})
}
