package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"svi/internal/buffer"
	"svi/internal/editor"
)

type memFile struct {
	data     []byte
	writeErr error
}

func (m *memFile) Name() string          { return "notes.txt" }
func (m *memFile) Read() ([]byte, error) { return m.data, nil }
func (m *memFile) Write(data []byte) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.data = append([]byte(nil), data...)
	return nil
}

func newTestModel(t *testing.T, content string, width, height int) (Model, *memFile) {
	t.Helper()
	f := &memFile{data: []byte(content)}
	b, err := buffer.Load(f)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	m := NewModel(editor.New(b), Options{LineNumbers: true, TabWidth: 4})
	m = update(t, m, tea.WindowSizeMsg{Width: width, Height: height})
	return m, f
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// ---------------------------------------------------------------------------
// translateKey
// ---------------------------------------------------------------------------

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []editor.Key
	}{
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, []editor.Key{editor.RuneKey('x')}},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")}, []editor.Key{editor.RuneKey('a'), editor.RuneKey('b')}},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, []editor.Key{editor.RuneKey(' ')}},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, []editor.Key{editor.RuneKey('\t')}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, []editor.Key{{Code: editor.KeyEsc}}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []editor.Key{{Code: editor.KeyEnter}}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, []editor.Key{{Code: editor.KeyBackspace}}},
		{"ctrl+h", tea.KeyMsg{Type: tea.KeyCtrlH}, []editor.Key{{Code: editor.KeyBackspace}}},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, []editor.Key{{Code: editor.KeyUp}}},
		{"ctrl+d", tea.KeyMsg{Type: tea.KeyCtrlD}, []editor.Key{editor.CtrlKey('d')}},
		{"ctrl+u", tea.KeyMsg{Type: tea.KeyCtrlU}, []editor.Key{editor.CtrlKey('u')}},
		{"alt", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}, nil},
		{"f2", tea.KeyMsg{Type: tea.KeyF2}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateKey(tt.msg)
			if len(got) != len(tt.want) {
				t.Fatalf("translateKey() = %+v, want %+v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("key %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func TestWindowSizeSetsViewportHeight(t *testing.T) {
	m, _ := newTestModel(t, "a\nb\n", 80, 10)
	if got := m.Editor().ViewportHeight(); got != 9 {
		t.Errorf("viewport height = %d, want 9", got)
	}
}

func TestKeysReachEditor(t *testing.T) {
	m, _ := newTestModel(t, "one\ntwo\nthree\n", 80, 10)
	m = typeText(t, m, "jdd")
	lines := []string{}
	doc := m.Editor().Document()
	for i := 0; i < doc.LineCount(); i++ {
		l, _ := doc.Line(i)
		lines = append(lines, l)
	}
	if strings.Join(lines, ",") != "one,three" {
		t.Errorf("lines = %v, want [one three]", lines)
	}
}

func TestScrollFollowsCursor(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 50; i++ {
		sb.WriteString("line\n")
	}
	m, _ := newTestModel(t, sb.String(), 80, 10)
	m = typeText(t, m, "G")
	if got := m.Editor().ScrollOffset(); got != 41 {
		t.Errorf("scroll = %d, want 41", got)
	}
}

func TestQuitCommandQuitsProgram(t *testing.T) {
	m, _ := newTestModel(t, "abc\n", 80, 10)
	m = typeText(t, m, ":q")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !isQuit(cmd) {
		t.Error(":q should return tea.Quit")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := newTestModel(t, "abc\n", 80, 10)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Error("ctrl+c should return tea.Quit")
	}
}

func TestWriteSuccessStatus(t *testing.T) {
	m, f := newTestModel(t, "abc\n", 80, 10)
	m = typeText(t, m, "x:w")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if string(f.data) != "bc\n" {
		t.Errorf("written = %q", f.data)
	}
	msg, isErr := m.Status()
	if isErr || !strings.Contains(msg, "written") {
		t.Errorf("status = %q (err %v)", msg, isErr)
	}
}

func TestWriteFailureShownInStatusBar(t *testing.T) {
	m, f := newTestModel(t, "abc\n", 80, 10)
	f.writeErr = errors.New("permission denied")
	m = typeText(t, m, ":w")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	if isQuit(cmd) {
		t.Fatal("failed write must not quit")
	}
	msg, isErr := m.Status()
	if !isErr || !strings.Contains(msg, "permission denied") {
		t.Errorf("status = %q (err %v)", msg, isErr)
	}
	if !strings.Contains(m.View(), "permission denied") {
		t.Error("view should show the write error")
	}
	if m.Editor().Mode() != editor.ModeNormal {
		t.Errorf("mode = %v, want NORMAL", m.Editor().Mode())
	}
}

func TestForceWriteFailureIsSilent(t *testing.T) {
	m, f := newTestModel(t, "abc\n", 80, 10)
	f.writeErr = errors.New("read-only file system")
	m = typeText(t, m, ":w!")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if msg, _ := m.Status(); msg != "" {
		t.Errorf("status = %q, want empty", msg)
	}
	if !m.Editor().Running() {
		t.Error(":w! must keep the editor running")
	}
}

func TestHelpOverlay(t *testing.T) {
	m, _ := newTestModel(t, "abc\n", 80, 30)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyF1})
	if !strings.Contains(m.View(), "svi keys") {
		t.Error("F1 should show the help overlay")
	}

	// Keys are swallowed while help is open.
	m = typeText(t, m, "x")
	if l, _ := m.Editor().Document().Line(0); l != "abc" {
		t.Errorf("line = %q, key leaked through help overlay", l)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if strings.Contains(m.View(), "svi keys") {
		t.Error("Esc should close the help overlay")
	}
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func TestViewBeforeSize(t *testing.T) {
	f := &memFile{}
	m := NewModel(editor.New(buffer.FromString(f, "x")), Options{})
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View() = %q", got)
	}
}

func TestViewLayout(t *testing.T) {
	m, _ := newTestModel(t, "alpha\nbeta\n", 40, 5)
	rows := strings.Split(m.View(), "\n")
	if len(rows) != 5 {
		t.Fatalf("rows = %d, want 5", len(rows))
	}
	if !strings.HasPrefix(rows[0], "  1 ") || !strings.Contains(rows[0], "lpha") {
		t.Errorf("row 0 = %q", rows[0])
	}
	if !strings.HasPrefix(rows[1], "  2 beta") {
		t.Errorf("row 1 = %q", rows[1])
	}
	for _, r := range rows[2:4] {
		if strings.TrimSpace(r) != "~" {
			t.Errorf("row past EOF = %q, want ~", r)
		}
	}
	status := rows[4]
	for _, want := range []string{"NORMAL", "notes.txt", "1:1"} {
		if !strings.Contains(status, want) {
			t.Errorf("status %q missing %q", status, want)
		}
	}
}

func TestViewWithoutLineNumbers(t *testing.T) {
	f := &memFile{data: []byte("alpha\n")}
	b, _ := buffer.Load(f)
	m := NewModel(editor.New(b), Options{LineNumbers: false, TabWidth: 4})
	m = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 3})
	rows := strings.Split(m.View(), "\n")
	if !strings.HasPrefix(rows[1], "~") {
		t.Errorf("row 1 = %q, want ~ with no gutter", rows[1])
	}
	if strings.Contains(rows[0], " 1 ") {
		t.Errorf("row 0 = %q, should have no line number", rows[0])
	}
}

func TestViewShowsModifiedAndMode(t *testing.T) {
	m, _ := newTestModel(t, "abc\n", 60, 5)
	m = typeText(t, m, "iZ")
	v := m.View()
	if !strings.Contains(v, "INSERT") || !strings.Contains(v, "[+]") {
		t.Errorf("view missing INSERT or [+]:\n%s", v)
	}
}

func TestViewCommandLine(t *testing.T) {
	m, _ := newTestModel(t, "abc\n", 60, 5)
	m = typeText(t, m, ":wq")
	rows := strings.Split(m.View(), "\n")
	if !strings.HasPrefix(rows[len(rows)-1], ":wq") {
		t.Errorf("bottom row = %q, want :wq", rows[len(rows)-1])
	}
}

func TestViewExpandsTabs(t *testing.T) {
	m, _ := newTestModel(t, "\tx\n", 40, 3)
	m = typeText(t, m, "$")
	rows := strings.Split(m.View(), "\n")
	if !strings.HasPrefix(rows[0], "  1     x") {
		t.Errorf("row 0 = %q, want tab expanded to 4 columns", rows[0])
	}
}

func TestHorizontalScroll(t *testing.T) {
	long := strings.Repeat("a", 60) + "Z"
	m, _ := newTestModel(t, long+"\n", 24, 3)
	m = typeText(t, m, "$")
	if m.leftCol == 0 {
		t.Fatal("leftCol should move right to show the cursor")
	}
	rows := strings.Split(m.View(), "\n")
	if !strings.Contains(rows[0], "Z") {
		t.Errorf("row 0 = %q, want end of line visible", rows[0])
	}
	m = typeText(t, m, "0")
	if m.leftCol != 0 {
		t.Errorf("leftCol = %d after 0, want 0", m.leftCol)
	}
}

// ---------------------------------------------------------------------------
// Display columns
// ---------------------------------------------------------------------------

func TestDisplayCol(t *testing.T) {
	tests := []struct {
		line string
		col  int
		want int
	}{
		{"abc", 2, 2},
		{"a\tb", 2, 4},
		{"\t\tb", 2, 8},
		{"ab\tc", 3, 4},
		{"日本語", 1, 2},
		{"日本語", 3, 6},
		{"ab", 3, 3},
	}
	for _, tt := range tests {
		if got := displayCol([]rune(tt.line), tt.col, 4); got != tt.want {
			t.Errorf("displayCol(%q, %d) = %d, want %d", tt.line, tt.col, got, tt.want)
		}
	}
}

func TestStatusBarFitsNarrowTerminal(t *testing.T) {
	m, f := newTestModel(t, strings.Repeat("a", 60)+"\n", 24, 3)
	f.writeErr = errors.New("disk quota exceeded on a very long device name")
	m = typeText(t, m, "x:w")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	rows := strings.Split(m.View(), "\n")
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3 (status bar must not wrap)", len(rows))
	}
}
