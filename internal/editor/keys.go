package editor

// KeyCode identifies a key delivered to the editor.
type KeyCode int

const (
	KeyRune KeyCode = iota // a printable character in Key.Rune
	KeyEsc
	KeyEnter
	KeyBackspace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

// Key is one discrete input event.
type Key struct {
	Code KeyCode
	Rune rune
	Ctrl bool
}

// RuneKey returns the Key for typing r.
func RuneKey(r rune) Key { return Key{Code: KeyRune, Rune: r} }

// CtrlKey returns the Key for Ctrl+r.
func CtrlKey(r rune) Key { return Key{Code: KeyRune, Rune: r, Ctrl: true} }

func (k Key) is(r rune) bool {
	return k.Code == KeyRune && !k.Ctrl && k.Rune == r
}

// HandleKey processes a single key according to the current mode. The
// returned error is a write failure from :w or :wq; the editor stays usable
// and in Normal mode when it is returned.
func (e *Editor) HandleKey(k Key) error {
	switch e.mode {
	case ModeInsert:
		e.handleInsertKey(k)
	case ModeCommand:
		return e.handleCommandKey(k)
	default:
		e.handleNormalKey(k)
	}
	return nil
}

func (e *Editor) handleNormalKey(k Key) {
	switch e.prefix {
	case PrefixD:
		e.prefix = PrefixNone
		switch {
		case k.is('d'):
			e.DeleteLine()
		case k.is('w'):
			e.DeleteWord()
		}
		return
	case PrefixG:
		e.prefix = PrefixNone
		if k.is('g') {
			e.GotoTop()
		}
		return
	}

	switch k.Code {
	case KeyLeft:
		e.MoveLeft()
		return
	case KeyRight:
		e.MoveRight()
		return
	case KeyUp:
		e.MoveUp()
		return
	case KeyDown:
		e.MoveDown()
		return
	case KeyRune:
	default:
		return
	}

	if k.Ctrl {
		switch k.Rune {
		case 'd':
			e.HalfPageDown(e.height)
		case 'u':
			e.HalfPageUp(e.height)
		}
		return
	}

	switch k.Rune {
	case ':':
		e.EnterCommandMode()

	case 'i':
		e.EnterInsert()
	case 'a':
		e.EnterInsertAppend()
	case 'o':
		e.OpenBelow()
	case 'O':
		e.OpenAbove()

	case 'g':
		e.prefix = PrefixG
	case 'd':
		e.prefix = PrefixD

	case 'h':
		e.MoveLeft()
	case 'j':
		e.MoveDown()
	case 'k':
		e.MoveUp()
	case 'l':
		e.MoveRight()

	case 'G':
		e.GotoBottom()
	case 'H':
		e.ViewportTop()
	case 'M':
		e.ViewportMiddle(e.height)
	case 'L':
		e.ViewportBottom(e.height)

	case 'w':
		e.WordForward()
	case 'b':
		e.WordBackward()
	case 'e':
		e.WordEnd()
	case '0':
		e.LineStart()
	case '$':
		e.LineEnd()
	case '^':
		e.FirstNonBlank()

	case 'x':
		e.DeleteCharAtCursor()
	case 'D':
		e.DeleteToEndOfLine()
	}
}

func (e *Editor) handleInsertKey(k Key) {
	switch k.Code {
	case KeyEsc:
		e.ExitInsert()
	case KeyEnter:
		e.InsertNewline()
	case KeyBackspace:
		e.DeleteCharBack()
	case KeyLeft:
		e.MoveLeft()
	case KeyRight:
		e.MoveRight()
	case KeyUp:
		e.MoveUp()
	case KeyDown:
		e.MoveDown()
	case KeyRune:
		if !k.Ctrl {
			e.InsertChar(k.Rune)
		}
	}
}

func (e *Editor) handleCommandKey(k Key) error {
	switch k.Code {
	case KeyEsc:
		e.ExitCommandMode()
	case KeyEnter:
		return e.ExecuteCommand(e.cmdLine)
	case KeyBackspace:
		e.CommandPop()
	case KeyRune:
		if !k.Ctrl {
			e.CommandPush(k.Rune)
		}
	}
	return nil
}
