package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"ai-intui/internal/console"
)

// KeyMap holds every binding the dashboard reacts to.
type KeyMap struct {
	Mode      key.Binding
	Command   key.Binding
	Quit      key.Binding
	Cancel    key.Binding
	Submit    key.Binding
	Backspace key.Binding
}

var keys = KeyMap{
	Mode:      key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1–5", "switch modes")),
	Command:   key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command mode")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
	Backspace: key.NewBinding(key.WithKeys("backspace")),
}

// ShortHelp is the idle hint shown in the command bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Command, k.Mode, k.Quit}
}

// ActionKind is what a key press asks the state to do.
type ActionKind int

const (
	ActNone          ActionKind = iota // key ignored
	ActQuit                            // leave the program
	ActSetMode                         // switch to Action.Mode
	ActBeginCommand                    // open the command line
	ActCancelCommand                   // close it and drop the input
	ActSubmitCommand                   // run the typed command
	ActBackspace                       // delete the last input rune
	ActInsert                          // append Action.Runes to the input
)

// Action is the routed form of a key press. For ActSetMode, Insert is set
// when the digit must also be typed into the command buffer.
type Action struct {
	Kind   ActionKind
	Mode   console.Mode
	Runes  []rune
	Insert bool
}

// Route maps a key press to an action given whether command input is active.
// Digits 1-5 switch mode in either state; while a command is being typed
// they are also inserted as text. Every other editing key only works in
// command state, and q / ctrl+c only quit outside it.
func Route(msg tea.KeyMsg, cmdActive bool) Action {
	if key.Matches(msg, keys.Mode) {
		m, _ := console.ModeFromDigit(msg.Runes[0])
		return Action{Kind: ActSetMode, Mode: m, Runes: msg.Runes, Insert: cmdActive}
	}

	if !cmdActive {
		switch {
		case key.Matches(msg, keys.Command):
			return Action{Kind: ActBeginCommand}
		case key.Matches(msg, keys.Quit):
			return Action{Kind: ActQuit}
		}
		return Action{}
	}

	switch {
	case key.Matches(msg, keys.Cancel):
		return Action{Kind: ActCancelCommand}
	case key.Matches(msg, keys.Submit):
		return Action{Kind: ActSubmitCommand}
	case key.Matches(msg, keys.Backspace):
		return Action{Kind: ActBackspace}
	case msg.Type == tea.KeySpace:
		return Action{Kind: ActInsert, Runes: []rune{' '}}
	case msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) > 0:
		return Action{Kind: ActInsert, Runes: msg.Runes}
	}
	return Action{}
}
