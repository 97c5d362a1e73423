// Package buffer holds the text of the file being edited as an ordered list
// of lines and answers line/character addressed reads and mutations.
//
// A source that ends in a line terminator does not produce an extra empty
// line. The terminator is remembered and written back, so the last line
// of the buffer is always a real cursor target.
package buffer

import (
	"strings"
)

// Buffer is the document being edited. It always holds at least one line.
type Buffer struct {
	backend         Backend
	lines           [][]rune
	trailingNewline bool
	modified        bool
}

// Open loads the local file at path.
func Open(path string) (*Buffer, error) {
	return Load(LocalFile{Path: path})
}

// Load reads the full content of b into a new Buffer.
func Load(b Backend) (*Buffer, error) {
	data, err := b.Read()
	if err != nil {
		return nil, &ReadError{Path: b.Name(), Err: err}
	}
	buf := &Buffer{backend: b}
	buf.setContent(string(data))
	return buf, nil
}

// FromString builds a Buffer with content s that writes to b.
func FromString(b Backend, s string) *Buffer {
	buf := &Buffer{backend: b}
	buf.setContent(s)
	return buf
}

func (b *Buffer) setContent(s string) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	b.trailingNewline = strings.HasSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\n")

	parts := strings.Split(s, "\n")
	b.lines = make([][]rune, len(parts))
	for i, p := range parts {
		b.lines[i] = []rune(p)
	}
}

// Name returns the display path of the backing file.
func (b *Buffer) Name() string { return b.backend.Name() }

// Modified reports whether the buffer changed since it was loaded or written.
func (b *Buffer) Modified() bool { return b.modified }

// LineCount returns the number of lines. It is never less than one.
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the content of row without its terminator.
func (b *Buffer) Line(row int) (string, bool) {
	if row < 0 || row >= len(b.lines) {
		return "", false
	}
	return string(b.lines[row]), true
}

// LineLen returns the number of characters in row, or 0 if out of range.
func (b *Buffer) LineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

// Bytes serializes the buffer with LF terminators. A final empty line is
// always followed by a terminator so that reloading yields the same lines.
func (b *Buffer) Bytes() []byte {
	var sb strings.Builder
	for i, l := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(l))
	}
	last := len(b.lines) - 1
	if b.trailingNewline || (last > 0 && len(b.lines[last]) == 0) {
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}

// Write overwrites the backing file with the current content.
func (b *Buffer) Write() error {
	if err := b.backend.Write(b.Bytes()); err != nil {
		return &WriteError{Path: b.backend.Name(), Err: err}
	}
	b.modified = false
	return nil
}

// --- Mutation -----------------------------------------------------------

// InsertChar inserts ch at (row, col). col is clamped to the line length.
func (b *Buffer) InsertChar(row, col int, ch rune) {
	if row < 0 || row >= len(b.lines) {
		return
	}
	line := b.lines[row]
	col = clamp(col, 0, len(line))
	out := make([]rune, 0, len(line)+1)
	out = append(out, line[:col]...)
	out = append(out, ch)
	out = append(out, line[col:]...)
	b.lines[row] = out
	b.modified = true
}

// InsertNewline splits row at col into two lines.
func (b *Buffer) InsertNewline(row, col int) {
	if row < 0 || row >= len(b.lines) {
		return
	}
	line := b.lines[row]
	col = clamp(col, 0, len(line))
	head := append([]rune(nil), line[:col]...)
	tail := append([]rune(nil), line[col:]...)

	lines := make([][]rune, 0, len(b.lines)+1)
	lines = append(lines, b.lines[:row]...)
	lines = append(lines, head, tail)
	lines = append(lines, b.lines[row+1:]...)
	b.lines = lines
	b.modified = true
}

// DeleteLine removes row. The last remaining line is never removed.
func (b *Buffer) DeleteLine(row int) {
	if row < 0 || row >= len(b.lines) || len(b.lines) == 1 {
		return
	}
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	b.modified = true
}

// DeleteCharAt removes the character at (row, col). It does nothing on an
// empty line or when col is past the end.
func (b *Buffer) DeleteCharAt(row, col int) {
	n := b.LineLen(row)
	if n == 0 || col < 0 || col >= n {
		return
	}
	line := b.lines[row]
	b.lines[row] = append(line[:col], line[col+1:]...)
	b.modified = true
}

// DeleteCharBack removes the character before (row, col) and returns the
// new cursor position. At column 0 the line is joined onto the previous
// one; at (0, 0) nothing happens.
func (b *Buffer) DeleteCharBack(row, col int) (int, int) {
	if row < 0 || row >= len(b.lines) {
		return 0, 0
	}
	col = clamp(col, 0, len(b.lines[row]))
	if col > 0 {
		line := b.lines[row]
		b.lines[row] = append(line[:col-1], line[col:]...)
		b.modified = true
		return row, col - 1
	}
	if row == 0 {
		return 0, 0
	}
	prevLen := len(b.lines[row-1])
	b.lines[row-1] = append(b.lines[row-1], b.lines[row]...)
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	b.modified = true
	return row - 1, prevLen
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
