// Package markdown parses Markdown source into a flat sequence of typed
// blocks with styled inline spans.
//
// The parser is deliberately not a CommonMark implementation: it is a
// line-oriented classifier with a single-pass inline tokenizer, tolerant of
// malformed input (unmatched delimiters fall open to plain text) and aware
// of LaTeX math delimiters, which it resolves to Unicode via the latex
// package.
package markdown

// SpanKind identifies the inline style carried by a Span.
type SpanKind uint8

const (
	// SpanPlain is an unstyled text run.
	SpanPlain SpanKind = iota
	// SpanBold is text delimited by **.
	SpanBold
	// SpanItalic is text delimited by single *.
	SpanItalic
	// SpanCode is text delimited by backticks.
	SpanCode
	// SpanInlineMath is transliterated math from \(...\).
	SpanInlineMath
	// SpanDisplayMath is transliterated math from \[...\].
	SpanDisplayMath
)

// Span is a run of text carrying one inline style. Math spans hold the
// already-transliterated Unicode text, never raw LaTeX.
type Span struct {
	Kind SpanKind
	Text string
}

// BlockKind identifies the structural type of a Block.
type BlockKind uint8

const (
	// BlockHeading is an ATX heading, levels 1-3.
	BlockHeading BlockKind = iota
	// BlockParagraph is a run of ordinary text.
	BlockParagraph
	// BlockQuote is a '>' prefixed paragraph.
	BlockQuote
	// BlockListItem is a single bullet or numbered item.
	BlockListItem
	// BlockCode is a fenced code block, content verbatim.
	BlockCode
	// BlockTable is a pipe table with a separator line.
	BlockTable
	// BlockRule is a horizontal rule.
	BlockRule
	// BlockBlank is an empty source line.
	BlockBlank
)

// Block is one structural unit of the parsed document. Blocks are created
// in source order and not mutated after Parse returns. Only the fields
// relevant to Kind are populated.
type Block struct {
	Kind    BlockKind
	Level   int    // BlockHeading: 1..3
	Ordered bool   // BlockListItem
	Spans   []Span // heading, paragraph, quote, list item
	Lang    string // BlockCode: fence language tag, may be empty
	Lines   []string
	Table   *TableData
}

// TableData holds a parsed pipe table. The header fixes the column count;
// body rows may be shorter (the renderer pads) but are never empty.
type TableData struct {
	Headers []string
	Rows    [][]string
}
