package markdown

import "strings"

// ParseTable reads a pipe table starting at lines[start]. It collects the
// contiguous run of lines containing '|', takes the first as the header and
// discards the second (the separator, already vetted by the caller).
//
// Returns the table, the index just past the last consumed line, and
// whether a table was recognized. Fewer than two pipe lines is not a
// table: the cursor stays at start and ok is false.
func ParseTable(lines []string, start int) (*TableData, int, bool) {
	end := start
	for end < len(lines) && strings.Contains(lines[end], "|") {
		end++
	}
	if end-start < 2 {
		return nil, start, false
	}

	table := &TableData{Headers: splitRow(lines[start])}

	// lines[start+1] is the separator; body follows.
	for i := start + 2; i < end; i++ {
		row := splitRow(lines[i])
		if len(row) == 0 {
			continue
		}
		table.Rows = append(table.Rows, row)
	}
	return table, end, true
}

// splitRow splits a pipe-delimited line into trimmed cells, dropping the
// empty fragments produced by leading and trailing pipes.
func splitRow(line string) []string {
	parts := strings.Split(line, "|")
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		cell := strings.TrimSpace(p)
		if cell == "" {
			continue
		}
		cells = append(cells, cell)
	}
	return cells
}
