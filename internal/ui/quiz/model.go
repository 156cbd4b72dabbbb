package quiz

import (
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"coach/internal/session"
)

const (
	sidebarWidth   = 38
	defaultWidth   = 100
	defaultHeight  = 32
	editorHeight   = 8
	answerTip      = "Type your answer here... Tip: be specific and use technical terms"
	feedbackHeight = 12
)

// Options configures the quiz model.
type Options struct {
	NoColor bool
}

// Model is the interactive practice screen.
type Model struct {
	state    State
	editor   textarea.Model
	progress progress.Model
	feedback viewport.Model
	help     help.Model
	keys     keyMap
	width    int
	height   int
	noColor  bool
}

// NewModel builds the quiz screen for a session.
func NewModel(s *session.Session, opts Options) Model {
	editor := textarea.New()
	editor.Placeholder = answerTip
	editor.ShowLineNumbers = false
	editor.CharLimit = 0
	editor.SetHeight(editorHeight)
	editor.SetValue(s.Draft())
	editor.Focus()

	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	if opts.NoColor {
		bar = progress.New(progress.WithSolidFill("#ffffff"), progress.WithoutPercentage())
	}

	feedback := viewport.New(defaultWidth-sidebarWidth, feedbackHeight)
	feedback.KeyMap = viewport.KeyMap{
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
	}

	m := Model{
		state:    NewState(s),
		editor:   editor,
		progress: bar,
		feedback: feedback,
		help:     help.New(),
		keys:     defaultKeyMap(),
		noColor:  opts.NoColor,
	}
	m.resize(defaultWidth, defaultHeight)
	m.sync()
	return m
}

// State exposes the reducer state, mainly for tests.
func (m Model) State() State {
	return m.state
}

// Init starts the cursor blinking in the editor.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update routes key presses to reducer actions or the focused widget.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(typed.Width, typed.Height)
		m.sync()
		return m, nil
	case tea.KeyMsg:
		if key.Matches(typed, m.keys.Quit) {
			return m, tea.Quit
		}
		if action, ok := m.actionFor(typed); ok {
			return m.dispatch(action), nil
		}
		if key.Matches(typed, m.feedback.KeyMap.PageDown, m.feedback.KeyMap.PageUp) {
			var cmd tea.Cmd
			m.feedback, cmd = m.feedback.Update(msg)
			return m, cmd
		}
		if m.state.Focus == FocusSidebar {
			return m, nil
		}
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.feedback, cmd = m.feedback.Update(msg)
		return m, cmd
	}

	if m.state.Focus != FocusEditor {
		return m, nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) actionFor(msg tea.KeyMsg) (Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return ActionSubmit, true
	case slices.Contains(m.keys.Feedback.Keys(), msg.String()):
		// Reduced even while disabled so the editor never sees the key.
		return ActionFeedback, true
	case key.Matches(msg, m.keys.Next):
		return ActionNext, true
	case key.Matches(msg, m.keys.Restart):
		return ActionRestart, true
	case key.Matches(msg, m.keys.ModelAnswer):
		return ActionToggleModelAnswer, true
	case key.Matches(msg, m.keys.Focus):
		return ActionToggleFocus, true
	}
	if m.state.Focus != FocusSidebar {
		return 0, false
	}
	switch {
	case key.Matches(msg, m.keys.Up):
		return ActionCursorUp, true
	case key.Matches(msg, m.keys.Down):
		return ActionCursorDown, true
	case key.Matches(msg, m.keys.Select):
		return ActionSelect, true
	case key.Matches(msg, m.keys.Category):
		return ActionCycleCategory, true
	case key.Matches(msg, m.keys.Difficulty):
		return ActionCycleDifficulty, true
	}
	return 0, false
}

// dispatch runs the reducer and brings widgets in line with the new state.
func (m Model) dispatch(action Action) Model {
	before := m.state.Session.CurrentIndex()
	m.state = Reduce(m.state, action, m.editor.Value())
	if action == ActionRestart || m.state.Session.CurrentIndex() != before {
		m.editor.SetValue(m.state.Session.Draft())
	}
	m.sync()
	return m
}

// sync copies reducer state into the widgets.
func (m *Model) sync() {
	m.keys.Feedback.SetEnabled(m.state.Session.AnswerSubmitted())
	if m.state.Focus == FocusEditor {
		m.editor.Focus()
	} else {
		m.editor.Blur()
	}
	m.feedback.SetContent(renderFeedback(m.state, m.noColor))
	m.feedback.GotoTop()
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	mainWidth := max(width-sidebarWidth-4, 20)
	m.editor.SetWidth(mainWidth)
	m.progress.Width = mainWidth
	m.feedback.Width = mainWidth
	m.feedback.Height = max(height-editorHeight-14, 4)
	m.help.Width = mainWidth
}

// View renders the sidebar next to the practice pane.
func (m Model) View() string {
	var helpView string
	if m.state.Focus == FocusSidebar {
		helpView = m.help.ShortHelpView(m.keys.sidebarHelp())
	} else {
		helpView = m.help.View(m.keys)
	}
	pane := lipgloss.JoinVertical(lipgloss.Left,
		renderTitle(m.noColor),
		renderProgressLine(m.state, m.noColor),
		m.progress.ViewAs(m.state.Session.Progress().Fraction),
		"",
		renderQuestion(m.state, m.noColor),
		"",
		m.editor.View(),
		helpView,
		renderStatus(m.state.Status, m.noColor),
		m.feedback.View(),
	)
	sidebar := renderSidebar(m.state, sidebarWidth, m.noColor)
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", pane)
}
