package docx

import (
	"fmt"

	"github.com/alnah/go-md2docx/internal/markdown"
)

// Default and bounds for the base font size, in points.
const (
	MinFontSize     = 8
	MaxFontSize     = 16
	DefaultFontSize = 12
)

const documentOpen = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
	`<w:body>`

const documentClose = `<w:sectPr><w:pgSz w:w="11906" w:h="16838"/>` +
	`<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440"/></w:sectPr>` +
	`</w:body></w:document>`

// Quote paragraphs indent by half an inch (twentieths of a point).
const quoteIndentTwips = 720

// Build serializes the block sequence into a complete .docx package. It is
// a deterministic single pass: a centered title paragraph first (when the
// style carries a title), then one paragraph or table per block in source
// order. Runs of blank blocks collapse into a single empty paragraph.
func Build(blocks []markdown.Block, style Style) ([]byte, error) {
	if style.BaseFontSize == 0 {
		style.BaseFontSize = DefaultFontSize
	}
	if style.BaseFontSize < MinFontSize || style.BaseFontSize > MaxFontSize {
		return nil, fmt.Errorf("base font size %d out of range [%d,%d]", style.BaseFontSize, MinFontSize, MaxFontSize)
	}

	var b xmlBuffer
	b.raw(documentOpen)

	if style.Title != "" {
		writeTitle(&b, style)
	}

	ordinal := 0
	prevBlank := false
	for _, blk := range blocks {
		if blk.Kind == markdown.BlockBlank {
			if !prevBlank {
				b.raw(`<w:p/>`)
			}
			prevBlank = true
			continue
		}
		prevBlank = false

		// The ordered-item counter survives blank lines inside a list but
		// resets at any other block.
		if blk.Kind != markdown.BlockListItem || !blk.Ordered {
			ordinal = 0
		}

		switch blk.Kind {
		case markdown.BlockHeading:
			writeHeading(&b, blk, style)
		case markdown.BlockParagraph:
			writeParagraph(&b, blk.Spans, style)
		case markdown.BlockQuote:
			writeQuote(&b, blk.Spans, style)
		case markdown.BlockListItem:
			if blk.Ordered {
				ordinal++
			}
			writeListItem(&b, blk, ordinal, style)
		case markdown.BlockCode:
			writeCodeBlock(&b, blk, style)
		case markdown.BlockTable:
			writeTable(&b, blk.Table, style)
		case markdown.BlockRule:
			writeRule(&b)
		}
	}

	b.raw(documentClose)
	return packageDocx(b.String(), style.BaseFontSize)
}

// spanProps resolves a span's run formatting against the base size.
func spanProps(s markdown.Span, baseSize int) runProps {
	p := runProps{sizeHalf: baseSize * 2}
	switch s.Kind {
	case markdown.SpanBold:
		p.bold = true
	case markdown.SpanItalic:
		p.italic = true
	case markdown.SpanCode:
		p.font = codeFont
	case markdown.SpanInlineMath, markdown.SpanDisplayMath:
		p.font = mathFont
	}
	return p
}

// writeSpans emits one run per span.
func writeSpans(b *xmlBuffer, spans []markdown.Span, baseSize int, override func(*runProps)) {
	for _, s := range spans {
		p := spanProps(s, baseSize)
		if override != nil {
			override(&p)
		}
		writeRun(b, s.Text, p)
	}
}

func writeTitle(b *xmlBuffer, style Style) {
	b.raw(`<w:p><w:pPr><w:jc w:val="center"/></w:pPr>`)
	writeRun(b, style.Title, runProps{bold: true, sizeHalf: (style.BaseFontSize + 6) * 2})
	b.raw(`</w:p>`)
}

func writeHeading(b *xmlBuffer, blk markdown.Block, style Style) {
	level := blk.Level
	if level < 1 || level > 3 {
		level = 3
	}
	size := style.BaseFontSize + headingSizeDelta[level-1]
	color := ""
	if style.ColoredHeadings {
		color = headingPalette[level-1]
	}
	b.raw(`<w:p>`)
	writeSpans(b, blk.Spans, style.BaseFontSize, func(p *runProps) {
		p.bold = true
		p.sizeHalf = size * 2
		if p.color == "" {
			p.color = color
		}
	})
	b.raw(`</w:p>`)
}

func writeParagraph(b *xmlBuffer, spans []markdown.Span, style Style) {
	b.raw(`<w:p>`)
	writeSpans(b, spans, style.BaseFontSize, nil)
	b.raw(`</w:p>`)
}

func writeQuote(b *xmlBuffer, spans []markdown.Span, style Style) {
	b.raw(`<w:p><w:pPr><w:pBdr>`)
	quoteBar.writeEdge(b, "left")
	b.raw(`</w:pBdr><w:shd w:val="clear" w:color="auto" w:fill="`)
	b.raw(quoteFill)
	b.raw(`"/><w:ind w:left="`)
	b.int(quoteIndentTwips)
	b.raw(`"/></w:pPr>`)
	writeSpans(b, spans, style.BaseFontSize, nil)
	b.raw(`</w:p>`)
}

func writeListItem(b *xmlBuffer, blk markdown.Block, ordinal int, style Style) {
	b.raw(`<w:p><w:pPr><w:ind w:left="360"/></w:pPr>`)
	marker := "- "
	if blk.Ordered {
		marker = fmt.Sprintf("%d. ", ordinal)
	}
	writeRun(b, marker, runProps{sizeHalf: style.BaseFontSize * 2})
	writeSpans(b, blk.Spans, style.BaseFontSize, nil)
	b.raw(`</w:p>`)
}

func writeRule(b *xmlBuffer) {
	b.raw(`<w:p><w:pPr><w:pBdr>`)
	ruleBorder.writeEdge(b, "bottom")
	b.raw(`</w:pBdr></w:pPr></w:p>`)
}

// writeCodeBlock renders the fence content as one shaded monospace
// paragraph with explicit line breaks; the content is written exactly as
// parsed, no inline formatting.
func writeCodeBlock(b *xmlBuffer, blk markdown.Block, style Style) {
	b.raw(`<w:p><w:pPr><w:shd w:val="clear" w:color="auto" w:fill="`)
	b.raw(codeFill)
	b.raw(`"/></w:pPr>`)
	writeCodeRuns(b, blk.Lines, blk.Lang, style)
	b.raw(`</w:p>`)
}

// writeTable renders a bordered grid. The header row fixes the column
// count: short body rows pad with empty cells and excess cells are
// dropped by the bounds check.
func writeTable(b *xmlBuffer, table *markdown.TableData, style Style) {
	if table == nil || len(table.Headers) == 0 {
		return
	}
	b.raw(`<w:tbl><w:tblPr><w:tblW w:w="0" w:type="auto"/>`)
	tableBorder.writeTableBorders(b)
	b.raw(`</w:tblPr><w:tblGrid>`)
	for range table.Headers {
		b.raw(`<w:gridCol/>`)
	}
	b.raw(`</w:tblGrid>`)

	writeTableRow(b, table.Headers, true, style)
	for _, row := range table.Rows {
		cells := make([]string, len(table.Headers))
		for i := range cells {
			if i < len(row) {
				cells[i] = row[i]
			}
		}
		writeTableRow(b, cells, false, style)
	}
	b.raw(`</w:tbl>`)
}

func writeTableRow(b *xmlBuffer, cells []string, header bool, style Style) {
	b.raw(`<w:tr>`)
	for _, cell := range cells {
		b.raw(`<w:tc><w:tcPr/><w:p>`)
		writeRun(b, cell, runProps{bold: header, sizeHalf: style.BaseFontSize * 2})
		b.raw(`</w:p></w:tc>`)
	}
	b.raw(`</w:tr>`)
}
