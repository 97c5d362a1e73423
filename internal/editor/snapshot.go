package editor

// Snapshot is the read-only state a renderer needs for one frame.
type Snapshot struct {
	Mode         Mode
	Prefix       Prefix
	Cursor       Position
	ScrollOffset int
	Filename     string
	CommandLine  string
	Modified     bool
	LineCount    int

	text Text
}

// Line returns the content of row, or false past the end of the document.
func (s Snapshot) Line(row int) (string, bool) {
	if s.text == nil {
		return "", false
	}
	return s.text.Line(row)
}

// Snapshot captures the current state for rendering.
func (e *Editor) Snapshot() Snapshot {
	return Snapshot{
		Mode:         e.mode,
		Prefix:       e.prefix,
		Cursor:       e.cursor,
		ScrollOffset: e.scroll,
		Filename:     e.doc.Name(),
		CommandLine:  e.cmdLine,
		Modified:     e.doc.Modified(),
		LineCount:    e.doc.LineCount(),
		text:         e.doc,
	}
}
