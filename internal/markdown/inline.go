package markdown

import (
	"strings"

	"github.com/alnah/go-md2docx/internal/latex"
)

// FormatInline tokenizes one line of text into styled spans with a single
// left-to-right scan. Delimiters are tried at each position in precedence
// order: display math, inline math, bold, italic, inline code. A delimiter
// whose closing counterpart is missing is emitted literally as plain text;
// the scan never fails.
//
// When preserveMath is false the math delimiters are not recognized and
// pass through as plain text. An empty bold pair (****) is not a span:
// both delimiters fall through as literal text.
func FormatInline(text string, preserveMath bool) []Span {
	var spans []Span
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			spans = append(spans, Span{Kind: SpanPlain, Text: plain.String()})
			plain.Reset()
		}
	}
	emit := func(kind SpanKind, s string) {
		flush()
		spans = append(spans, Span{Kind: kind, Text: s})
	}

	i := 0
	for i < len(text) {
		rest := text[i:]

		if preserveMath && strings.HasPrefix(rest, `\[`) {
			if end := strings.Index(rest[2:], `\]`); end >= 0 {
				emit(SpanDisplayMath, latex.Transliterate(rest[2:2+end]))
				i += 2 + end + 2
				continue
			}
		}

		if preserveMath && strings.HasPrefix(rest, `\(`) {
			if end := strings.Index(rest[2:], `\)`); end >= 0 {
				emit(SpanInlineMath, latex.Transliterate(rest[2:2+end]))
				i += 2 + end + 2
				continue
			}
		}

		if strings.HasPrefix(rest, "**") {
			if end := strings.Index(rest[2:], "**"); end > 0 {
				emit(SpanBold, rest[2:2+end])
				i += 2 + end + 2
				continue
			}
			// Unmatched or empty pair: fall through, both stars literal.
		}

		if isItalicDelim(text, i) {
			if end := findItalicClose(text, i+1); end > i {
				emit(SpanItalic, text[i+1:end])
				i = end + 1
				continue
			}
		}

		if text[i] == '`' {
			if end := strings.Index(rest[1:], "`"); end >= 0 {
				emit(SpanCode, rest[1:1+end])
				i += 1 + end + 1
				continue
			}
		}

		plain.WriteByte(text[i])
		i++
	}
	flush()
	return spans
}

// isItalicDelim reports whether text[i] is a single '*' with no '*'
// adjacent on either side, which is what qualifies it as an italic
// delimiter. Double stars belong to bold and are never italic delimiters.
func isItalicDelim(text string, i int) bool {
	if i >= len(text) || text[i] != '*' {
		return false
	}
	if i > 0 && text[i-1] == '*' {
		return false
	}
	if i+1 < len(text) && text[i+1] == '*' {
		return false
	}
	return true
}

// findItalicClose scans forward from 'from' for a closing single '*' under
// the same adjacency rule. Returns -1 when the line ends first.
func findItalicClose(text string, from int) int {
	for j := from; j < len(text); j++ {
		if isItalicDelim(text, j) {
			return j
		}
	}
	return -1
}
