package editor

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// CommandKind identifies a parsed colon command.
type CommandKind int

const (
	CmdNone           CommandKind = iota // unrecognized; executes as a no-op
	CmdGotoLine                          // :N
	CmdWrite                             // :w
	CmdQuit                              // :q
	CmdWriteQuit                         // :wq
	CmdForceWrite                        // :w!
	CmdForceQuit                         // :q!
	CmdForceWriteQuit                    // :wq!
)

// Command is a parsed colon command.
type Command struct {
	Kind CommandKind
	Line uint64 // 1-based target for CmdGotoLine; 0 means the first line
}

var commandKinds = map[string]CommandKind{
	"w":   CmdWrite,
	"q":   CmdQuit,
	"wq":  CmdWriteQuit,
	"w!":  CmdForceWrite,
	"q!":  CmdForceQuit,
	"wq!": CmdForceWriteQuit,
}

// ParseCommand parses a command line (without the leading colon). A line
// number may carry one leading '+'.
func ParseCommand(s string) Command {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseUint(trimPlus(s), 10, 64); err == nil {
		return Command{Kind: CmdGotoLine, Line: n}
	}
	if k, ok := commandKinds[s]; ok {
		return Command{Kind: k}
	}
	return Command{Kind: CmdNone}
}

func trimPlus(s string) string {
	if len(s) > 1 && s[0] == '+' && s[1] >= '0' && s[1] <= '9' {
		return s[1:]
	}
	return s
}

// --- Command line editing -----------------------------------------------

// EnterCommandMode switches to Command mode with an empty command line (:).
func (e *Editor) EnterCommandMode() {
	e.mode = ModeCommand
	e.cmdLine = ""
}

// ExitCommandMode discards the command line and returns to Normal mode.
func (e *Editor) ExitCommandMode() {
	e.mode = ModeNormal
	e.cmdLine = ""
	e.clampCol()
}

// CommandPush appends ch to the command line.
func (e *Editor) CommandPush(ch rune) {
	e.cmdLine += string(ch)
}

// CommandPop removes the last character of the command line and leaves
// Command mode once it is empty.
func (e *Editor) CommandPop() {
	_, size := utf8.DecodeLastRuneInString(e.cmdLine)
	e.cmdLine = e.cmdLine[:len(e.cmdLine)-size]
	if e.cmdLine == "" {
		e.ExitCommandMode()
	}
}

// --- Execution ----------------------------------------------------------

// ExecuteCommand leaves Command mode and runs cmd. Only :w and :wq return
// an error, the write failure; the bang variants discard it.
func (e *Editor) ExecuteCommand(cmd string) error {
	e.ExitCommandMode()

	c := ParseCommand(cmd)
	switch c.Kind {
	case CmdGotoLine:
		e.gotoLine(c.Line)
	case CmdWrite:
		return e.doc.Write()
	case CmdQuit, CmdForceQuit:
		e.Quit()
	case CmdWriteQuit:
		if err := e.doc.Write(); err != nil {
			return err
		}
		e.Quit()
	case CmdForceWrite:
		_ = e.doc.Write()
	case CmdForceWriteQuit:
		_ = e.doc.Write()
		e.Quit()
	}
	return nil
}

func (e *Editor) gotoLine(n uint64) {
	last := e.MaxRow()
	row := 0
	if n > 0 {
		if n-1 >= uint64(last) {
			row = last
		} else {
			row = int(n - 1)
		}
	}
	e.cursor.Row = row
	e.clampCol()
}
