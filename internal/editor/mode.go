package editor

// Mode is the editor's current interpretation context for keys.
type Mode int

const (
	ModeNormal  Mode = iota
	ModeInsert       // literal typing
	ModeCommand      // : command-line entry
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeCommand:
		return "COMMAND"
	default:
		return "UNKNOWN"
	}
}

// Prefix records a pending first key of a two-key Normal mode command.
// It is consumed by exactly the next key, whether or not that key completes
// a command.
type Prefix int

const (
	PrefixNone Prefix = iota
	PrefixG           // waiting for the second g of gg
	PrefixD           // waiting for d (dd) or w (dw)
)

func (p Prefix) String() string {
	switch p {
	case PrefixG:
		return "g"
	case PrefixD:
		return "d"
	default:
		return ""
	}
}
