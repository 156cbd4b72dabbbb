package quiz

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit      key.Binding
	Feedback    key.Binding
	Next        key.Binding
	Restart     key.Binding
	ModelAnswer key.Binding
	Focus       key.Binding
	Up          key.Binding
	Down        key.Binding
	Select      key.Binding
	Category    key.Binding
	Difficulty  key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
		Feedback:    key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "feedback")),
		Next:        key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "next")),
		Restart:     key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "restart")),
		ModelAnswer: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "model answer")),
		Focus:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "questions")),
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
		Select:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Category:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category")),
		Difficulty:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "difficulty")),
		Quit:        key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// global bindings work regardless of focus.
func (k keyMap) global() []key.Binding {
	return []key.Binding{k.Submit, k.Feedback, k.Next, k.Restart, k.ModelAnswer, k.Focus, k.Quit}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return k.global()
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.global(),
		{k.Up, k.Down, k.Select, k.Category, k.Difficulty},
	}
}

// sidebarHelp is shown while the question bank has focus.
func (k keyMap) sidebarHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Category, k.Difficulty, k.Focus, k.Quit}
}
