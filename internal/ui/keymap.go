package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"svi/internal/editor"
)

// keyMap holds the bindings the UI handles itself and the editor bindings
// listed in the help overlay. Only Help and Quit are matched here; the rest
// are interpreted by the editor package.
type keyMap struct {
	Help key.Binding
	Quit key.Binding

	Move       key.Binding
	Words      key.Binding
	LineEnds   key.Binding
	FileEnds   key.Binding
	Screen     key.Binding
	HalfPage   key.Binding
	Insert     key.Binding
	Open       key.Binding
	DeleteLine key.Binding
	DeleteWord key.Binding
	DeleteChar key.Binding
	DeleteEOL  key.Binding
	Escape     key.Binding

	Write     key.Binding
	QuitCmd   key.Binding
	WriteQuit key.Binding
	Force     key.Binding
	GotoLine  key.Binding
}

// defaultKeyMap binds every entry to real key names. Sequences such as dd
// or :wq bind the key that starts them.
func defaultKeyMap() keyMap {
	return keyMap{
		Help: key.NewBinding(key.WithKeys("f1"), key.WithHelp("F1", "toggle help")),
		Quit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("Ctrl+C", "quit without saving")),

		Move:       key.NewBinding(key.WithKeys("h", "j", "k", "l"), key.WithHelp("h j k l", "left down up right")),
		Words:      key.NewBinding(key.WithKeys("w", "b", "e"), key.WithHelp("w b e", "word forward / back / end")),
		LineEnds:   key.NewBinding(key.WithKeys("0", "^", "$"), key.WithHelp("0 ^ $", "line start / first non-blank / end")),
		FileEnds:   key.NewBinding(key.WithKeys("g", "G"), key.WithHelp("gg G", "first / last line")),
		Screen:     key.NewBinding(key.WithKeys("H", "M", "L"), key.WithHelp("H M L", "top / middle / bottom of screen")),
		HalfPage:   key.NewBinding(key.WithKeys("ctrl+d", "ctrl+u"), key.WithHelp("Ctrl+D Ctrl+U", "half page down / up")),
		Insert:     key.NewBinding(key.WithKeys("i", "a"), key.WithHelp("i a", "insert / append")),
		Open:       key.NewBinding(key.WithKeys("o", "O"), key.WithHelp("o O", "open line below / above")),
		DeleteLine: key.NewBinding(key.WithKeys("d"), key.WithHelp("dd", "delete line")),
		DeleteWord: key.NewBinding(key.WithKeys("d"), key.WithHelp("dw", "delete word")),
		DeleteChar: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete character")),
		DeleteEOL:  key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete to end of line")),
		Escape:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "back to normal mode")),

		Write:     key.NewBinding(key.WithKeys(":"), key.WithHelp(":w", "write")),
		QuitCmd:   key.NewBinding(key.WithKeys(":"), key.WithHelp(":q", "quit")),
		WriteQuit: key.NewBinding(key.WithKeys(":"), key.WithHelp(":wq", "write and quit")),
		Force:     key.NewBinding(key.WithKeys(":"), key.WithHelp(":w! :q! :wq!", "ignore write errors")),
		GotoLine:  key.NewBinding(key.WithKeys(":"), key.WithHelp(":N", "go to line N")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Write, k.QuitCmd}
}

// FullHelp lists every binding, grouped into motions, edits and commands.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Words, k.LineEnds, k.FileEnds, k.Screen, k.HalfPage},
		{k.Insert, k.Open, k.Escape, k.DeleteLine, k.DeleteWord, k.DeleteChar, k.DeleteEOL},
		{k.Write, k.QuitCmd, k.WriteQuit, k.Force, k.GotoLine, k.Help, k.Quit},
	}
}

// translateKey converts a terminal key event into editor keys. Pasted text
// arrives as one event and yields one key per rune.
func translateKey(msg tea.KeyMsg) []editor.Key {
	if msg.Alt {
		return nil
	}
	switch msg.Type {
	case tea.KeyRunes:
		keys := make([]editor.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			switch r {
			case '\r', '\n':
				keys = append(keys, editor.Key{Code: editor.KeyEnter})
			default:
				keys = append(keys, editor.RuneKey(r))
			}
		}
		return keys
	case tea.KeySpace:
		return []editor.Key{editor.RuneKey(' ')}
	case tea.KeyTab:
		return []editor.Key{editor.RuneKey('\t')}
	case tea.KeyEsc:
		return []editor.Key{{Code: editor.KeyEsc}}
	case tea.KeyEnter:
		return []editor.Key{{Code: editor.KeyEnter}}
	case tea.KeyBackspace, tea.KeyCtrlH:
		return []editor.Key{{Code: editor.KeyBackspace}}
	case tea.KeyLeft:
		return []editor.Key{{Code: editor.KeyLeft}}
	case tea.KeyRight:
		return []editor.Key{{Code: editor.KeyRight}}
	case tea.KeyUp:
		return []editor.Key{{Code: editor.KeyUp}}
	case tea.KeyDown:
		return []editor.Key{{Code: editor.KeyDown}}
	}
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		return []editor.Key{editor.CtrlKey(rune('a' + int(msg.Type-tea.KeyCtrlA)))}
	}
	return nil
}
