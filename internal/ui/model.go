package ui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"svi/internal/editor"
)

// Options are the display settings the model renders with.
type Options struct {
	LineNumbers bool
	TabWidth    int
}

// Model is the bubbletea model wrapping one editor.
type Model struct {
	ed   *editor.Editor
	opts Options

	width   int
	height  int
	leftCol int // first visible display column of the text area

	status    string
	statusErr bool

	showHelp bool
	help     help.Model
	keys     keyMap
}

// NewModel returns a model rendering ed.
func NewModel(ed *editor.Editor, opts Options) Model {
	if opts.TabWidth < 1 {
		opts.TabWidth = 4
	}
	h := help.New()
	h.ShowAll = true
	return Model{
		ed:   ed,
		opts: opts,
		help: h,
		keys: defaultKeyMap(),
	}
}

// Editor returns the wrapped editor.
func (m Model) Editor() *editor.Editor { return m.ed }

// Status returns the message shown in the status bar and whether it is an error.
func (m Model) Status() (string, bool) { return m.status, m.statusErr }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ed.SetViewportHeight(m.textRows())
		m.ed.AdjustScroll(m.textRows())
		m.scrollHorizontally()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			log.Printf("[Model] ctrl+c, quitting without write")
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Help) {
			m.showHelp = !m.showHelp
			return m, nil
		}
		if m.showHelp {
			if msg.Type == tea.KeyEsc {
				m.showHelp = false
			}
			return m, nil
		}

		for _, k := range translateKey(msg) {
			m.handleKey(k)
		}
		m.ed.AdjustScroll(m.textRows())
		m.scrollHorizontally()

		if !m.ed.Running() {
			log.Printf("[Model] editor stopped, quitting")
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) handleKey(k editor.Key) {
	executing := m.ed.Mode() == editor.ModeCommand && k.Code == editor.KeyEnter
	var cmd editor.Command
	wasModified := m.ed.Document().Modified()
	if executing {
		cmd = editor.ParseCommand(m.ed.CommandLine())
		m.status, m.statusErr = "", false
	}

	if err := m.ed.HandleKey(k); err != nil {
		log.Printf("[Model] write failed: %v", err)
		m.status, m.statusErr = err.Error(), true
		return
	}
	if !executing || !writes(cmd.Kind) || m.ed.Document().Modified() {
		return
	}
	// Forced writes swallow their error, so an unmodified document only
	// proves success when it was modified before.
	if forced(cmd.Kind) && !wasModified {
		return
	}
	doc := m.ed.Document()
	m.status = fmt.Sprintf("%q %dL written", doc.Name(), doc.LineCount())
	log.Printf("[Model] wrote %s", doc.Name())
}

func forced(k editor.CommandKind) bool {
	return k == editor.CmdForceWrite || k == editor.CmdForceWriteQuit
}

func writes(k editor.CommandKind) bool {
	switch k {
	case editor.CmdWrite, editor.CmdWriteQuit, editor.CmdForceWrite, editor.CmdForceWriteQuit:
		return true
	}
	return false
}

// textRows is the height of the text area: the full terminal minus the
// status line.
func (m Model) textRows() int {
	return max(m.height-1, 1)
}

// scrollHorizontally keeps the cursor's display column inside the text area.
func (m *Model) scrollHorizontally() {
	cw := m.contentWidth()
	c := m.ed.Cursor()
	line, _ := m.ed.Document().Line(c.Row)
	x := displayCol([]rune(line), c.Col, m.opts.TabWidth)
	if x < m.leftCol {
		m.leftCol = x
	}
	if x >= m.leftCol+cw {
		m.leftCol = x - cw + 1
	}
}
