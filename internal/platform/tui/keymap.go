package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-crawler/internal/core"
)

// KeyMap defines the key bindings for a running game.
type KeyMap struct {
	West      key.Binding
	East      key.Binding
	North     key.Binding
	South     key.Binding
	NorthWest key.Binding
	NorthEast key.Binding
	SouthWest key.Binding
	SouthEast key.Binding
	Restart   key.Binding
	Pause     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.West, k.South, k.North, k.East, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.West, k.East, k.North, k.South},
		{k.NorthWest, k.NorthEast, k.SouthWest, k.SouthEast},
		{k.Restart, k.Pause, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the roguelike bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		West:      key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "west")),
		East:      key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "east")),
		North:     key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "north")),
		South:     key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "south")),
		NorthWest: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "north-west")),
		NorthEast: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "north-east")),
		SouthWest: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "south-west")),
		SouthEast: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "south-east")),
		Restart:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "new dungeon")),
		Pause:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct {
	keys     KeyMap
	bindings []actionBinding
}

type actionBinding struct {
	binding key.Binding
	action  core.Action
}

// NewKeyMapper creates a mapper over keys.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{
		keys: keys,
		bindings: []actionBinding{
			{keys.West, core.ActionWest},
			{keys.East, core.ActionEast},
			{keys.North, core.ActionNorth},
			{keys.South, core.ActionSouth},
			{keys.NorthWest, core.ActionNorthWest},
			{keys.NorthEast, core.ActionNorthEast},
			{keys.SouthWest, core.ActionSouthWest},
			{keys.SouthEast, core.ActionSouthEast},
			{keys.Restart, core.ActionRestart},
			{keys.Pause, core.ActionPause},
			{keys.Quit, core.ActionQuit},
		},
	}
}

// MapKey returns the action bound to msg, or ActionNone. isQuit is set
// for the quit keys.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, b := range km.bindings {
		if key.Matches(msg, b.binding) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame builds the input frame for one key press.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	frame.Set(action)
	return isQuit
}

// IsHelp reports whether msg toggles the help view.
func (km *KeyMapper) IsHelp(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.keys.Help)
}
