package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"ai-intui/internal/console"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestRoute(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		active bool
		want   Action
	}{
		{"digit normal", runeKey('3'), false, Action{Kind: ActSetMode, Mode: console.Cloud, Runes: []rune{'3'}}},
		{"digit command", runeKey('5'), true, Action{Kind: ActSetMode, Mode: console.Sandbox, Runes: []rune{'5'}, Insert: true}},
		{"colon normal", runeKey(':'), false, Action{Kind: ActBeginCommand}},
		{"colon command", runeKey(':'), true, Action{Kind: ActInsert, Runes: []rune{':'}}},
		{"q normal", runeKey('q'), false, Action{Kind: ActQuit}},
		{"q command", runeKey('q'), true, Action{Kind: ActInsert, Runes: []rune{'q'}}},
		{"ctrl+c normal", tea.KeyMsg{Type: tea.KeyCtrlC}, false, Action{Kind: ActQuit}},
		{"ctrl+c command", tea.KeyMsg{Type: tea.KeyCtrlC}, true, Action{}},
		{"esc command", tea.KeyMsg{Type: tea.KeyEscape}, true, Action{Kind: ActCancelCommand}},
		{"esc normal", tea.KeyMsg{Type: tea.KeyEscape}, false, Action{}},
		{"enter command", tea.KeyMsg{Type: tea.KeyEnter}, true, Action{Kind: ActSubmitCommand}},
		{"enter normal", tea.KeyMsg{Type: tea.KeyEnter}, false, Action{}},
		{"backspace command", tea.KeyMsg{Type: tea.KeyBackspace}, true, Action{Kind: ActBackspace}},
		{"backspace normal", tea.KeyMsg{Type: tea.KeyBackspace}, false, Action{}},
		{"space command", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, true, Action{Kind: ActInsert, Runes: []rune{' '}}},
		{"letter normal", runeKey('x'), false, Action{}},
		{"digit 6 normal", runeKey('6'), false, Action{}},
		{"digit 6 command", runeKey('6'), true, Action{Kind: ActInsert, Runes: []rune{'6'}}},
		{"alt letter command", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, true, Action{}},
		{"arrow command", tea.KeyMsg{Type: tea.KeyUp}, true, Action{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Route(tt.msg, tt.active))
		})
	}
}

func TestKeyMap_ShortHelp(t *testing.T) {
	bindings := keys.ShortHelp()
	assert.Len(t, bindings, 3)
	for _, b := range bindings {
		assert.NotEmpty(t, b.Help().Key)
	}
}
