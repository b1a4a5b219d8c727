package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/zombie-survival/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapDirection(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   core.Key
		wantOK bool
	}{
		{"w", runeKey('w'), core.KeyUp, true},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp, true},
		{"s", runeKey('s'), core.KeyDown, true},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.KeyDown, true},
		{"a", runeKey('a'), core.KeyLeft, true},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft, true},
		{"d", runeKey('d'), core.KeyRight, true},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.KeyRight, true},
		{"pause is not a direction", runeKey('p'), 0, false},
		{"unbound", runeKey('x'), 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := km.Direction(tc.msg)
			if ok != tc.wantOK || got != tc.want {
				t.Errorf("Direction(%q) = (%v, %v), expected (%v, %v)", tc.msg.String(), got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestKeyMapControls(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{"q quits", runeKey('q'), km.Quit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, km.Quit},
		{"p pauses", runeKey('p'), km.Pause},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, km.Pause},
		{"r restarts", runeKey('r'), km.Restart},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !key.Matches(tc.msg, tc.binding) {
				t.Errorf("%q does not match %v", tc.msg.String(), tc.binding.Keys())
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) != 7 {
		t.Errorf("ShortHelp() has %d bindings, expected 7", len(km.ShortHelp()))
	}
	total := 0
	for _, col := range km.FullHelp() {
		total += len(col)
	}
	if total != 7 {
		t.Errorf("FullHelp() has %d bindings, expected 7", total)
	}
}
