package docx

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// xmlBuffer accumulates the document part. Markup goes in through raw,
// character data through text (escaped), so content can never break the
// element structure.
type xmlBuffer struct {
	sb strings.Builder
}

func (b *xmlBuffer) raw(s string) {
	b.sb.WriteString(s)
}

func (b *xmlBuffer) int(n int) {
	b.sb.WriteString(strconv.Itoa(n))
}

func (b *xmlBuffer) text(s string) {
	// strings.Builder never returns a write error.
	_ = xml.EscapeText(&b.sb, []byte(s))
}

func (b *xmlBuffer) String() string {
	return b.sb.String()
}

// writeRunProps emits the w:rPr group for the given properties, omitting
// the group entirely when everything inherits.
func writeRunProps(b *xmlBuffer, p runProps) {
	if !p.bold && !p.italic && p.font == "" && p.color == "" && p.sizeHalf == 0 {
		return
	}
	b.raw(`<w:rPr>`)
	if p.font != "" {
		b.raw(`<w:rFonts w:ascii="`)
		b.raw(p.font)
		b.raw(`" w:hAnsi="`)
		b.raw(p.font)
		b.raw(`"/>`)
	}
	if p.bold {
		b.raw(`<w:b/>`)
	}
	if p.italic {
		b.raw(`<w:i/>`)
	}
	if p.color != "" {
		b.raw(`<w:color w:val="`)
		b.raw(p.color)
		b.raw(`"/>`)
	}
	if p.sizeHalf != 0 {
		b.raw(`<w:sz w:val="`)
		b.int(p.sizeHalf)
		b.raw(`"/><w:szCs w:val="`)
		b.int(p.sizeHalf)
		b.raw(`"/>`)
	}
	b.raw(`</w:rPr>`)
}

// writeRun emits one w:r with escaped text. xml:space="preserve" keeps
// leading and trailing spaces that Word would otherwise drop.
func writeRun(b *xmlBuffer, text string, p runProps) {
	b.raw(`<w:r>`)
	writeRunProps(b, p)
	b.raw(`<w:t xml:space="preserve">`)
	b.text(text)
	b.raw(`</w:t></w:r>`)
}

// writeBreak emits a line break run inside the current paragraph.
func writeBreak(b *xmlBuffer, p runProps) {
	b.raw(`<w:r>`)
	writeRunProps(b, p)
	b.raw(`<w:br/></w:r>`)
}
