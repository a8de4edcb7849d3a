package markdown

import (
	"regexp"
	"strings"
)

// orderedItemPattern matches a numbered list marker at the start of a
// trimmed line, e.g. "12. ".
var orderedItemPattern = regexp.MustCompile(`^\d+\.\s`)

// Parse scans the document line by line and classifies each line or run of
// lines into a Block. The input must already be normalized: \n line
// endings only, multi-line display math collapsed onto single lines.
//
// Classification order per line: table start, code fence, rule, heading,
// bullet item, numbered item, blockquote, blank, paragraph. Inside a code
// fence every line is kept verbatim with no inline formatting.
func Parse(doc string, preserveMath bool) []Block {
	lines := strings.Split(doc, "\n")
	blocks := make([]Block, 0, len(lines))

	inCode := false
	var codeLang string
	var codeLines []string

	for i := 0; i < len(lines); {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if inCode {
			if strings.HasPrefix(trimmed, "```") {
				blocks = append(blocks, Block{Kind: BlockCode, Lang: codeLang, Lines: codeLines})
				inCode = false
				codeLines = nil
				codeLang = ""
			} else {
				codeLines = append(codeLines, line)
			}
			i++
			continue
		}

		// Table start: pipe in this line and a --- separator on the next.
		// ParseTable re-checks the shape and leaves the cursor unmoved on
		// a false positive, so the line falls through to paragraph.
		if strings.Contains(line, "|") && i+1 < len(lines) && isTableSeparator(lines[i+1]) {
			if table, end, ok := ParseTable(lines, i); ok {
				blocks = append(blocks, Block{Kind: BlockTable, Table: table})
				i = end
				continue
			}
		}

		if strings.HasPrefix(trimmed, "```") {
			inCode = true
			codeLang = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(trimmed, "```")))
			i++
			continue
		}

		if trimmed == "---" {
			blocks = append(blocks, Block{Kind: BlockRule})
			i++
			continue
		}

		if level, content, ok := headingLine(trimmed); ok {
			blocks = append(blocks, Block{
				Kind:  BlockHeading,
				Level: level,
				Spans: FormatInline(content, preserveMath),
			})
			i++
			continue
		}

		if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
			blocks = append(blocks, Block{
				Kind:  BlockListItem,
				Spans: FormatInline(trimmed[2:], preserveMath),
			})
			i++
			continue
		}

		if loc := orderedItemPattern.FindStringIndex(trimmed); loc != nil {
			blocks = append(blocks, Block{
				Kind:    BlockListItem,
				Ordered: true,
				Spans:   FormatInline(trimmed[loc[1]:], preserveMath),
			})
			i++
			continue
		}

		if strings.HasPrefix(trimmed, ">") {
			content := strings.TrimSpace(strings.TrimPrefix(trimmed, ">"))
			blocks = append(blocks, Block{
				Kind:  BlockQuote,
				Spans: FormatInline(content, preserveMath),
			})
			i++
			continue
		}

		if trimmed == "" {
			blocks = append(blocks, Block{Kind: BlockBlank})
			i++
			continue
		}

		blocks = append(blocks, Block{
			Kind:  BlockParagraph,
			Spans: FormatInline(line, preserveMath),
		})
		i++
	}

	// Unterminated fence at EOF: keep what was collected rather than
	// dropping it.
	if inCode && len(codeLines) > 0 {
		blocks = append(blocks, Block{Kind: BlockCode, Lang: codeLang, Lines: codeLines})
	}

	return blocks
}

// headingLine recognizes ATX headings of levels 1-3. Deeper markers are
// not headings here and fall through to paragraph handling.
func headingLine(trimmed string) (level int, content string, ok bool) {
	switch {
	case strings.HasPrefix(trimmed, "### "):
		return 3, trimmed[4:], true
	case strings.HasPrefix(trimmed, "## "):
		return 2, trimmed[3:], true
	case strings.HasPrefix(trimmed, "# "):
		return 1, trimmed[2:], true
	}
	return 0, "", false
}

// isTableSeparator reports whether the line is a header/body separator:
// it must contain both a pipe and a --- marker.
func isTableSeparator(line string) bool {
	return strings.Contains(line, "|") && strings.Contains(line, "---")
}
