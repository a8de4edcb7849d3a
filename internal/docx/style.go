// Package docx builds a WordprocessingML (.docx) package from parsed
// markdown blocks.
//
// A .docx file is a ZIP archive of OOXML parts; the document content lives
// in word/document.xml as a flat sequence of w:p (paragraph) and w:tbl
// (table) elements, each made of w:r runs. The builder maps blocks onto
// those primitives and serializes the package with archive/zip. All
// styling is declared through descriptors in this file and applied at
// serialization time; nothing mutates the XML tree after the fact.
package docx

// Style is the per-conversion style configuration. BaseFontSize is in
// points; run sizes in OOXML are half-points and converted at write time.
type Style struct {
	Title           string
	BaseFontSize    int
	ColoredHeadings bool
	HighlightStyle  string // chroma style name; empty disables colouring
}

// Font families for the non-body run kinds.
const (
	bodyFont = "Calibri"
	codeFont = "Consolas"
	mathFont = "Cambria Math"
)

// Fill colours for shaded paragraph containers.
const (
	codeFill  = "F2F2F2"
	quoteFill = "F7F7F7"
)

// headingPalette is the fixed 3-tier blue palette for coloured headings,
// level 1 darkest.
var headingPalette = [3]string{"1F4E79", "2E74B5", "5B9BD5"}

// headingSizeDelta is the point-size increase over the base font size for
// heading levels 1-3.
var headingSizeDelta = [3]int{2, 1, 0}

// borderSpec describes one border line. The zero value means no border.
type borderSpec struct {
	style string // OOXML border style, e.g. "single"
	size  int    // eighths of a point
	color string // RRGGBB
}

// tableBorder is the uniform single-line border used on all four table
// sides and all internal gridlines.
var tableBorder = borderSpec{style: "single", size: 4, color: "000000"}

// quoteBar is the left-edge bar distinguishing blockquote paragraphs.
var quoteBar = borderSpec{style: "single", size: 12, color: "BFBFBF"}

// ruleBorder renders a horizontal rule as a bottom paragraph border.
var ruleBorder = borderSpec{style: "single", size: 6, color: "A6A6A6"}

// runProps carries the resolved character formatting for one run.
type runProps struct {
	bold     bool
	italic   bool
	font     string // empty means inherit the document default
	color    string // RRGGBB, empty means automatic
	sizeHalf int    // half-points; 0 means inherit
}

// writeEdge emits one border edge element (w:top, w:insideH, ...).
func (s borderSpec) writeEdge(b *xmlBuffer, edge string) {
	if s.style == "" {
		return
	}
	b.raw(`<w:`)
	b.raw(edge)
	b.raw(` w:val="`)
	b.raw(s.style)
	b.raw(`" w:sz="`)
	b.int(s.size)
	b.raw(`" w:space="0" w:color="`)
	b.raw(s.color)
	b.raw(`"/>`)
}

// writeTableBorders emits the w:tblBorders group: four outer edges plus
// both internal gridline directions, all from the same spec.
func (s borderSpec) writeTableBorders(b *xmlBuffer) {
	b.raw(`<w:tblBorders>`)
	for _, edge := range []string{"top", "left", "bottom", "right", "insideH", "insideV"} {
		s.writeEdge(b, edge)
	}
	b.raw(`</w:tblBorders>`)
}
