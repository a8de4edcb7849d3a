package docx

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// writeCodeRuns emits the runs for a code block. When the fence carries a
// language tag with a known lexer and a highlight style is configured, one
// coloured run is written per chroma token; otherwise the content renders
// as plain monospace. Newlines inside the content become w:br elements so
// the whole block stays one paragraph.
func writeCodeRuns(b *xmlBuffer, lines []string, lang string, style Style) {
	source := strings.Join(lines, "\n")
	base := runProps{font: codeFont, sizeHalf: style.BaseFontSize * 2}

	tokens, ok := tokenize(source, lang, style.HighlightStyle)
	if !ok {
		writeMultiline(b, source, base)
		return
	}

	chromaStyle := styles.Get(style.HighlightStyle)
	if chromaStyle == nil {
		chromaStyle = styles.Fallback
	}
	for _, tok := range tokens {
		p := base
		entry := chromaStyle.Get(tok.Type)
		if entry.Colour.IsSet() {
			p.color = strings.ToUpper(strings.TrimPrefix(entry.Colour.String(), "#"))
		}
		p.bold = entry.Bold == chroma.Yes
		p.italic = entry.Italic == chroma.Yes
		writeMultiline(b, tok.Value, p)
	}
}

// tokenize runs the chroma lexer for lang over source. Returns ok=false
// when colouring is disabled, the language is unknown, or lexing fails,
// in which case the caller falls back to plain monospace.
func tokenize(source, lang, styleName string) ([]chroma.Token, bool) {
	if lang == "" || styleName == "" {
		return nil, false
	}
	lexer := lexers.Get(lang)
	if lexer == nil {
		return nil, false
	}
	lexer = chroma.Coalesce(lexer)
	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil, false
	}
	return iterator.Tokens(), true
}

// writeMultiline writes text as runs with w:br elements at newlines.
func writeMultiline(b *xmlBuffer, text string, p runProps) {
	for i, part := range strings.Split(text, "\n") {
		if i > 0 {
			writeBreak(b, p)
		}
		if part == "" {
			continue
		}
		writeRun(b, part, p)
	}
}
