package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestRenderHelpNonEmpty(t *testing.T) {
	got := RenderHelp(help.New(), defaultKeyMap(), 80, 40)
	if got == "" {
		t.Error("RenderHelp returned empty string")
	}
}

func TestRenderHelpContainsBindings(t *testing.T) {
	got := RenderHelp(help.New(), defaultKeyMap(), 160, 50)
	bindings := []string{"h j k l", "gg G", "Ctrl+D Ctrl+U", "dd", "dw", ":wq", ":w! :q! :wq!", "F1", "Ctrl+C"}
	for _, b := range bindings {
		if !strings.Contains(got, b) {
			t.Errorf("help should contain %q", b)
		}
	}
}

func TestRenderHelpContainsDescriptions(t *testing.T) {
	got := RenderHelp(help.New(), defaultKeyMap(), 160, 50)
	descriptions := []string{"delete line", "write and quit", "go to line N", "back to normal mode", "Esc or F1 to close"}
	for _, d := range descriptions {
		if !strings.Contains(got, d) {
			t.Errorf("help should contain description %q", d)
		}
	}
}

func TestRenderHelpSmallDimensions(t *testing.T) {
	got := RenderHelp(help.New(), defaultKeyMap(), 20, 10)
	if got == "" {
		t.Error("RenderHelp should still return content at small dimensions")
	}
}

func TestShortHelp(t *testing.T) {
	k := defaultKeyMap()
	if got := len(k.ShortHelp()); got != 3 {
		t.Errorf("ShortHelp() has %d bindings, want 3", got)
	}
	for i, col := range k.FullHelp() {
		for _, b := range col {
			if !b.Enabled() {
				t.Errorf("column %d: binding %q is disabled", i, b.Help().Key)
			}
		}
	}
}

func TestKeyMapUsesRealKeyNames(t *testing.T) {
	named := map[string]tea.KeyMsg{
		"f1":     {Type: tea.KeyF1},
		"esc":    {Type: tea.KeyEsc},
		"ctrl+c": {Type: tea.KeyCtrlC},
		"ctrl+d": {Type: tea.KeyCtrlD},
		"ctrl+u": {Type: tea.KeyCtrlU},
	}
	for _, col := range defaultKeyMap().FullHelp() {
		for _, b := range col {
			for _, k := range b.Keys() {
				msg, ok := named[k]
				if !ok && len([]rune(k)) == 1 {
					msg, ok = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}, true
				}
				if !ok {
					t.Errorf("binding %q: key %q is not a terminal key name", b.Help().Key, k)
					continue
				}
				if !key.Matches(msg, b) {
					t.Errorf("binding %q does not match key %q", b.Help().Key, k)
				}
			}
		}
	}
}
