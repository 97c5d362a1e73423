package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"svi/internal/editor"
)

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	if m.showHelp {
		return RenderHelp(m.help, m.keys, m.width, m.height)
	}

	snap := m.ed.Snapshot()
	gw := m.gutterWidth(snap.LineCount)
	showCursor := snap.Mode != editor.ModeCommand

	rows := make([]string, 0, m.textRows()+1)
	for i := 0; i < m.textRows(); i++ {
		row := snap.ScrollOffset + i
		line, ok := snap.Line(row)
		if !ok {
			rows = append(rows, strings.Repeat(" ", gw)+tildeStyle.Render("~"))
			continue
		}
		var sb strings.Builder
		if gw > 0 {
			sb.WriteString(gutterStyle.Render(fmt.Sprintf("%*d ", gw-1, row+1)))
		}
		cursorCol := -1
		if showCursor && row == snap.Cursor.Row {
			cursorCol = snap.Cursor.Col
		}
		sb.WriteString(m.renderLine([]rune(line), cursorCol))
		rows = append(rows, sb.String())
	}
	rows = append(rows, m.renderStatusBar(snap))
	return strings.Join(rows, "\n")
}

// gutterWidth is the width of the line number column including its trailing
// space, or 0 when line numbers are off.
func (m Model) gutterWidth(lineCount int) int {
	if !m.opts.LineNumbers {
		return 0
	}
	return max(len(fmt.Sprint(lineCount))+1, 4)
}

func (m Model) contentWidth() int {
	return max(m.width-m.gutterWidth(m.ed.Document().LineCount()), 1)
}

// cellWidth is the number of terminal columns r occupies when it starts at
// display column x.
func cellWidth(r rune, x, tabWidth int) int {
	if r == '\t' {
		return tabWidth - x%tabWidth
	}
	return max(runewidth.RuneWidth(r), 1)
}

// displayCol returns the display column where character col of line starts.
func displayCol(line []rune, col, tabWidth int) int {
	x := 0
	for i := 0; i < col && i < len(line); i++ {
		x += cellWidth(line[i], x, tabWidth)
	}
	if col > len(line) {
		x += col - len(line)
	}
	return x
}

// renderLine draws the part of line visible from m.leftCol, highlighting the
// character at cursorCol (or the cell after the line when cursorCol is at the
// end). A cursorCol of -1 draws no cursor.
func (m Model) renderLine(line []rune, cursorCol int) string {
	cw := m.contentWidth()
	left, right := m.leftCol, m.leftCol+cw

	var sb strings.Builder
	x := 0
	for i, r := range line {
		w := cellWidth(r, x, m.opts.TabWidth)
		start := x
		x += w
		if x <= left {
			continue
		}
		if start >= right {
			break
		}

		cell := visibleRune(r, w)
		if start < left || x > right {
			// Wide character cut by an edge.
			cell = strings.Repeat(" ", min(x, right)-max(start, left))
		}
		if i == cursorCol {
			sb.WriteString(cursorStyle.Render(cell))
		} else {
			sb.WriteString(cell)
		}
	}
	if cursorCol >= len(line) && x >= left && x < right {
		sb.WriteString(cursorStyle.Render(" "))
	}
	return sb.String()
}

func visibleRune(r rune, w int) string {
	switch {
	case r == '\t':
		return strings.Repeat(" ", w)
	case runewidth.RuneWidth(r) == 0:
		return "?"
	}
	return string(r)
}

func (m Model) renderStatusBar(snap editor.Snapshot) string {
	if snap.Mode == editor.ModeCommand {
		return commandBarStyle.Width(m.width).MaxHeight(1).Render(":" + snap.CommandLine)
	}

	mode := modeStyle.Render(fmt.Sprintf(" %s ", snap.Mode))
	right := fmt.Sprintf(" %s %d:%d ", snap.Prefix, snap.Cursor.Row+1, snap.Cursor.Col+1)
	avail := max(m.width-lipgloss.Width(mode)-lipgloss.Width(right)-1, 0)

	name := " " + snap.Filename
	if snap.Modified {
		name += " [+]"
	}
	name = runewidth.Truncate(name, avail, "…")
	if room := avail - runewidth.StringWidth(name) - 2; m.status != "" && room > 0 {
		style := messageStyle
		if m.statusErr {
			style = errorStyle
		}
		name += "  " + style.Render(runewidth.Truncate(m.status, room, "…"))
	}

	gap := max(m.width-lipgloss.Width(mode)-lipgloss.Width(name)-lipgloss.Width(right), 1)
	return statusStyle.Width(m.width).MaxHeight(1).Render(mode + name + strings.Repeat(" ", gap) + right)
}

var (
	gutterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555"))

	cursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#FFFFFF")).
			Foreground(lipgloss.Color("#000000"))

	tildeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#444444"))

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#333333")).
			Foreground(lipgloss.Color("#AAAAAA"))

	modeStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#7D56F4")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8BE9FD"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555"))

	commandBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1E1E1E")).
			Foreground(lipgloss.Color("#FFFFFF"))
)
