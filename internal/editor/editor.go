// Package editor is the modal editing core: cursor motions, edit commands,
// the Normal/Insert/Command state machine and the colon-command interpreter.
// It has no terminal dependency; callers feed it Keys one at a time and read
// back a Snapshot to render.
package editor

// Text is the read-only view of a document that motions are computed on.
type Text interface {
	LineCount() int
	Line(row int) (string, bool)
	LineLen(row int) int
}

// Document is the text storage an Editor mutates. *buffer.Buffer satisfies it.
type Document interface {
	Text
	Name() string
	Modified() bool
	Write() error
	InsertChar(row, col int, ch rune)
	InsertNewline(row, col int)
	DeleteLine(row int)
	DeleteCharAt(row, col int)
	DeleteCharBack(row, col int) (int, int)
}

// Position is a zero-based line index and character offset.
type Position struct {
	Row int
	Col int
}

// Editor owns the cursor, viewport and mode state for one document.
type Editor struct {
	doc Document

	cursor Position
	scroll int
	height int

	mode    Mode
	prefix  Prefix
	cmdLine string
	running bool
}

// New returns an editor in Normal mode with the cursor at the top of doc.
func New(doc Document) *Editor {
	return &Editor{
		doc:     doc,
		height:  1,
		mode:    ModeNormal,
		running: true,
	}
}

// Mode returns the current mode.
func (e *Editor) Mode() Mode { return e.mode }

// Prefix returns the pending two-key prefix, if any.
func (e *Editor) Prefix() Prefix { return e.prefix }

// Cursor returns the cursor position.
func (e *Editor) Cursor() Position { return e.cursor }

// ScrollOffset returns the first visible row.
func (e *Editor) ScrollOffset() int { return e.scroll }

// CommandLine returns the text typed after ':' in Command mode.
func (e *Editor) CommandLine() string { return e.cmdLine }

// Running reports whether the editor has not been quit.
func (e *Editor) Running() bool { return e.running }

// Document returns the document being edited.
func (e *Editor) Document() Document { return e.doc }

// ViewportHeight returns the height last set by SetViewportHeight.
func (e *Editor) ViewportHeight() int { return e.height }

// Quit stops the editor; Running reports false afterwards.
func (e *Editor) Quit() { e.running = false }

// MaxRow returns the index of the last line.
func (e *Editor) MaxRow() int { return maxRow(e.doc) }

func (e *Editor) lineRunes(row int) []rune { return lineRunes(e.doc, row) }

// SetViewportHeight records the number of text rows the renderer shows.
// Heights below one are treated as one.
func (e *Editor) SetViewportHeight(h int) {
	e.height = max(h, 1)
}

// SetCursor moves the cursor to p, clamped to the document.
func (e *Editor) SetCursor(p Position) {
	e.cursor.Row = min(max(p.Row, 0), e.MaxRow())
	e.cursor.Col = max(p.Col, 0)
	e.clampCol()
}

// clampCol keeps the column on a character in Normal and Command mode and
// allows the one-past-end append position in Insert mode.
func (e *Editor) clampCol() {
	n := e.doc.LineLen(e.cursor.Row)
	e.cursor.Col = min(max(e.cursor.Col, 0), maxCol(n, e.mode))
}

func maxCol(lineLen int, mode Mode) int {
	if mode == ModeInsert {
		return lineLen
	}
	return max(lineLen-1, 0)
}

// maxRow is the last row the cursor may occupy.
func maxRow(t Text) int {
	return max(t.LineCount()-1, 0)
}

func lineRunes(t Text, row int) []rune {
	l, _ := t.Line(row)
	return []rune(l)
}
