package editor

// --- Normal mode deletion -----------------------------------------------

// DeleteLine removes the cursor line (dd). A single-line document is left
// unchanged.
func (e *Editor) DeleteLine() {
	e.doc.DeleteLine(e.cursor.Row)
	e.cursor.Row = min(e.cursor.Row, e.MaxRow())
	e.clampCol()
}

// DeleteCharAtCursor removes the character under the cursor (x).
func (e *Editor) DeleteCharAtCursor() {
	if e.doc.LineLen(e.cursor.Row) == 0 {
		return
	}
	e.doc.DeleteCharAt(e.cursor.Row, e.cursor.Col)
	e.clampCol()
}

// DeleteToEndOfLine removes from the cursor to the end of the line (D).
func (e *Editor) DeleteToEndOfLine() {
	n := e.doc.LineLen(e.cursor.Row)
	if n == 0 {
		return
	}
	for i := 0; i < n-e.cursor.Col; i++ {
		e.doc.DeleteCharAt(e.cursor.Row, e.cursor.Col)
	}
	e.clampCol()
}

// DeleteWord removes what a w motion would skip over, without crossing
// into the next line (dw).
func (e *Editor) DeleteWord() {
	chars := e.lineRunes(e.cursor.Row)
	if e.cursor.Col >= len(chars) {
		return
	}
	end := wordExtent(chars, e.cursor.Col)
	for i := e.cursor.Col; i < end; i++ {
		e.doc.DeleteCharAt(e.cursor.Row, e.cursor.Col)
	}
	e.clampCol()
}

// --- Insert mode --------------------------------------------------------

// EnterInsert switches to Insert mode at the cursor (i).
func (e *Editor) EnterInsert() {
	e.mode = ModeInsert
}

// EnterInsertAppend switches to Insert mode after the cursor character (a).
func (e *Editor) EnterInsertAppend() {
	if e.doc.LineLen(e.cursor.Row) > 0 {
		e.cursor.Col++
	}
	e.mode = ModeInsert
	e.clampCol()
}

// OpenBelow opens an empty line under the cursor and moves onto it (o).
func (e *Editor) OpenBelow() {
	e.doc.InsertNewline(e.cursor.Row, e.doc.LineLen(e.cursor.Row))
	e.cursor = Position{Row: e.cursor.Row + 1}
	e.mode = ModeInsert
}

// OpenAbove opens an empty line at the cursor row, pushing the current
// line down (O).
func (e *Editor) OpenAbove() {
	e.doc.InsertNewline(e.cursor.Row, 0)
	e.cursor.Col = 0
	e.mode = ModeInsert
}

// ExitInsert returns to Normal mode, stepping back one column as vim does.
func (e *Editor) ExitInsert() {
	e.mode = ModeNormal
	if e.cursor.Col > 0 {
		e.cursor.Col--
	}
	e.clampCol()
}

// InsertChar types ch at the cursor and advances past it.
func (e *Editor) InsertChar(ch rune) {
	e.doc.InsertChar(e.cursor.Row, e.cursor.Col, ch)
	e.cursor.Col++
}

// InsertNewline splits the line at the cursor and moves to the new line.
func (e *Editor) InsertNewline() {
	e.doc.InsertNewline(e.cursor.Row, e.cursor.Col)
	e.cursor = Position{Row: e.cursor.Row + 1}
}

// DeleteCharBack is Insert mode backspace; at column 0 it joins the line
// onto the previous one.
func (e *Editor) DeleteCharBack() {
	row, col := e.doc.DeleteCharBack(e.cursor.Row, e.cursor.Col)
	e.cursor = Position{Row: row, Col: col}
}
