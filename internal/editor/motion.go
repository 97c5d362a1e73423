package editor

// --- Simple movement ----------------------------------------------------

// MoveLeft moves one character left, stopping at column 0 (h).
func (e *Editor) MoveLeft() {
	if e.cursor.Col > 0 {
		e.cursor.Col--
	}
	e.clampCol()
}

// MoveRight moves one character right within the line (l).
func (e *Editor) MoveRight() {
	if e.cursor.Col < maxCol(e.doc.LineLen(e.cursor.Row), e.mode) {
		e.cursor.Col++
	}
}

// MoveUp moves to the previous line, clamping the column (k).
func (e *Editor) MoveUp() {
	if e.cursor.Row > 0 {
		e.cursor.Row--
	}
	e.clampCol()
}

// MoveDown moves to the next line, clamping the column (j).
func (e *Editor) MoveDown() {
	if e.cursor.Row < e.MaxRow() {
		e.cursor.Row++
	}
	e.clampCol()
}

// --- File and viewport jumps --------------------------------------------

// GotoTop moves to the start of the first line (gg).
func (e *Editor) GotoTop() {
	e.cursor.Row = 0
	e.clampCol()
}

// GotoBottom moves to the start of the last line (G).
func (e *Editor) GotoBottom() {
	e.cursor.Row = e.MaxRow()
	e.clampCol()
}

// ViewportTop moves to the first visible row (H).
func (e *Editor) ViewportTop() {
	e.cursor.Row = min(e.scroll, e.MaxRow())
	e.clampCol()
}

// ViewportBottom moves to the last visible row that holds text (L).
func (e *Editor) ViewportBottom(h int) {
	e.cursor.Row = e.viewportLastRow(h)
	e.clampCol()
}

// ViewportMiddle moves to the row halfway between the first visible row
// and the last visible row that holds text, rounding down.
func (e *Editor) ViewportMiddle(h int) {
	top := min(e.scroll, e.MaxRow())
	e.cursor.Row = (top + e.viewportLastRow(h)) / 2
	e.clampCol()
}

func (e *Editor) viewportLastRow(h int) int {
	return min(e.scroll+max(h, 1)-1, e.MaxRow())
}

// HalfPageDown moves the cursor down by half of h rows (Ctrl+d).
func (e *Editor) HalfPageDown(h int) {
	e.cursor.Row = min(e.cursor.Row+max(h, 0)/2, e.MaxRow())
	e.clampCol()
}

// HalfPageUp moves the cursor up by half of h rows (Ctrl+u).
func (e *Editor) HalfPageUp(h int) {
	e.cursor.Row = max(e.cursor.Row-max(h, 0)/2, 0)
	e.clampCol()
}

// AdjustScroll moves the viewport the minimum amount needed to keep the
// cursor row visible in a viewport h rows tall.
func (e *Editor) AdjustScroll(h int) {
	h = max(h, 1)
	if e.cursor.Row < e.scroll {
		e.scroll = e.cursor.Row
	}
	if e.cursor.Row >= e.scroll+h {
		e.scroll = e.cursor.Row - h + 1
	}
}

// --- Word motions -------------------------------------------------------

// WordForward moves to the start of the next word (w).
func (e *Editor) WordForward() {
	e.cursor = wordForward(e.doc, e.cursor)
}

// WordBackward moves to the start of the previous word (b).
func (e *Editor) WordBackward() {
	e.cursor = wordBackward(e.doc, e.cursor)
}

// WordEnd moves to the end of the current or next word (e).
func (e *Editor) WordEnd() {
	e.cursor = wordEnd(e.doc, e.cursor)
}

func wordForward(t Text, p Position) Position {
	last := maxRow(t)
	chars := lineRunes(t, p.Row)

	if len(chars) == 0 || p.Col >= len(chars) {
		if p.Row >= last {
			return p
		}
		return Position{Row: p.Row + 1, Col: firstNonBlank(lineRunes(t, p.Row+1))}
	}

	col := wordExtent(chars, max(p.Col, 0))
	if col < len(chars) {
		return Position{Row: p.Row, Col: col}
	}
	if p.Row >= last {
		return Position{Row: p.Row, Col: len(chars) - 1}
	}
	return Position{Row: p.Row + 1, Col: firstNonBlank(lineRunes(t, p.Row+1))}
}

func wordBackward(t Text, p Position) Position {
	row, col := p.Row, p.Col
	if col <= 0 {
		if row == 0 {
			return Position{}
		}
		row--
		col = max(t.LineLen(row)-1, 0)
	} else {
		col--
	}

	chars := lineRunes(t, row)
	if len(chars) == 0 {
		return Position{Row: row}
	}
	col = min(col, len(chars)-1)
	for col > 0 && isSpace(chars[col]) {
		col--
	}

	// Only whitespace before the cursor: continue from the end of the
	// previous line.
	if isSpace(chars[col]) && row > 0 {
		row--
		chars = lineRunes(t, row)
		if len(chars) == 0 {
			return Position{Row: row}
		}
		col = len(chars) - 1
		for col > 0 && isSpace(chars[col]) {
			col--
		}
	}
	return Position{Row: row, Col: runStart(chars, col)}
}

func wordEnd(t Text, p Position) Position {
	last := maxRow(t)
	row, col := p.Row, p.Col
	chars := lineRunes(t, row)

	if len(chars) == 0 {
		if row >= last {
			return p
		}
	} else {
		col = skipSpace(chars, max(col, 0)+1)
		if col < len(chars) {
			return Position{Row: row, Col: runEnd(chars, col) - 1}
		}
		if row >= last {
			return Position{Row: row, Col: len(chars) - 1}
		}
	}

	row++
	chars = lineRunes(t, row)
	col = skipSpace(chars, 0)
	if col >= len(chars) {
		return Position{Row: row}
	}
	return Position{Row: row, Col: runEnd(chars, col) - 1}
}

// --- Line position motions ----------------------------------------------

// LineStart moves to column 0 (0).
func (e *Editor) LineStart() {
	e.cursor.Col = 0
}

// LineEnd moves to the last character of the line ($).
func (e *Editor) LineEnd() {
	e.cursor.Col = max(e.doc.LineLen(e.cursor.Row)-1, 0)
}

// FirstNonBlank moves to the first non-whitespace character (^).
func (e *Editor) FirstNonBlank() {
	e.cursor.Col = firstNonBlank(e.lineRunes(e.cursor.Row))
}

// firstNonBlank returns the first non-whitespace column, or 0 when the line
// is empty or all whitespace.
func firstNonBlank(chars []rune) int {
	col := skipSpace(chars, 0)
	if col >= len(chars) {
		return 0
	}
	return col
}
