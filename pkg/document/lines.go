package document

import "sort"

// Line holds the byte range of a single line.
type Line struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where the line terminator begins.
	// Equal to EndOffset for a final line without a terminator.
	NewlineStart int

	// EndOffset is the byte index just after the terminator.
	EndOffset int
}

// BuildLines indexes the lines of source, handling LF and CRLF endings.
func BuildLines(source string) []Line {
	if source == "" {
		return []Line{}
	}

	var lines []Line
	lineStart := 0

	for idx := 0; idx < len(source); idx++ {
		if source[idx] != '\n' {
			continue
		}
		newlineStart := idx
		if idx > 0 && source[idx-1] == '\r' {
			newlineStart = idx - 1
		}
		lines = append(lines, Line{
			StartOffset:  lineStart,
			NewlineStart: newlineStart,
			EndOffset:    idx + 1,
		})
		lineStart = idx + 1
	}

	if lineStart < len(source) {
		lines = append(lines, Line{
			StartOffset:  lineStart,
			NewlineStart: len(source),
			EndOffset:    len(source),
		})
	}

	return lines
}

// Position converts a byte offset to 1-based line and column numbers.
// Columns count bytes. Returns (0, 0) when offset is out of range.
func (d *Document) Position(offset int) (int, int) {
	if offset < 0 || offset > len(d.source) || len(d.lines) == 0 {
		return 0, 0
	}

	lineIdx := sort.Search(len(d.lines), func(i int) bool {
		return d.lines[i].EndOffset > offset
	})
	if lineIdx >= len(d.lines) {
		lineIdx = len(d.lines) - 1
	}

	line := d.lines[lineIdx]
	return lineIdx + 1, offset - line.StartOffset + 1
}

// LineText returns the content of a 1-based line without its terminator.
func (d *Document) LineText(lineNum int) string {
	if lineNum < 1 || lineNum > len(d.lines) {
		return ""
	}
	line := d.lines[lineNum-1]
	return d.source[line.StartOffset:line.NewlineStart]
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	return len(d.lines)
}
