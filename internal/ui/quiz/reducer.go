package quiz

import (
	"coach/internal/catalog"
	"coach/internal/ui"
)

// Action is a user intent decoded from a key press.
type Action int

const (
	ActionSubmit Action = iota
	ActionFeedback
	ActionNext
	ActionRestart
	ActionToggleModelAnswer
	ActionToggleFocus
	ActionCursorUp
	ActionCursorDown
	ActionSelect
	ActionCycleCategory
	ActionCycleDifficulty
)

// Status line texts.
var (
	MessageSubmitted = ui.SubmittedMessage("Press ctrl+f")
	MessageRestarted = "🔄 Practice restarted."
)

// Reduce applies an action to the state. answer is the current editor text
// and is saved as the draft for the current question before navigating.
func Reduce(state State, action Action, answer string) State {
	s := state.Session
	switch action {
	case ActionSubmit:
		s.SetDraft(answer)
		if err := s.Submit(answer); err != nil {
			state.Status = Status{Kind: StatusWarning, Text: ui.AnswerWarning(err, s.MinAnswerLength(), false)}
			return state
		}
		state.Result = nil
		state.Status = Status{Kind: StatusSuccess, Text: MessageSubmitted}
	case ActionFeedback:
		if !s.AnswerSubmitted() {
			return state
		}
		result, err := s.Feedback(answer)
		if err != nil {
			state.Status = Status{Kind: StatusWarning, Text: ui.AnswerWarning(err, s.MinAnswerLength(), true)}
			return state
		}
		state.Result = &result
		state.Status = Status{}
	case ActionNext:
		s.SetDraft(answer)
		s.Next()
		state = clearFeedback(state)
	case ActionRestart:
		s.Restart()
		state = clearFeedback(state)
		state.Cursor = 0
		state.Focus = FocusEditor
		state.Status = Status{Kind: StatusInfo, Text: MessageRestarted}
	case ActionToggleModelAnswer:
		state.ShowModelAnswer = !state.ShowModelAnswer
	case ActionToggleFocus:
		if state.Focus == FocusEditor {
			state.Focus = FocusSidebar
		} else {
			state.Focus = FocusEditor
		}
	case ActionCursorUp:
		if state.Cursor > 0 {
			state.Cursor--
		}
	case ActionCursorDown:
		if state.Cursor < len(state.Visible())-1 {
			state.Cursor++
		}
	case ActionSelect:
		visible := state.Visible()
		if state.Cursor < 0 || state.Cursor >= len(visible) {
			return state
		}
		s.SetDraft(answer)
		if err := s.Select(visible[state.Cursor].ID); err != nil {
			state.Status = Status{Kind: StatusWarning, Text: err.Error()}
			return state
		}
		state = clearFeedback(state)
		state.Focus = FocusEditor
	case ActionCycleCategory:
		options := []string{catalog.All}
		for _, category := range s.Catalog().Categories() {
			options = append(options, string(category))
		}
		state.Filter.Category = cycle(options, state.Filter.Category)
		state.Cursor = 0
	case ActionCycleDifficulty:
		options := []string{catalog.All}
		for _, difficulty := range s.Catalog().Difficulties() {
			options = append(options, string(difficulty))
		}
		state.Filter.Difficulty = cycle(options, state.Filter.Difficulty)
		state.Cursor = 0
	}
	return state
}

func clearFeedback(state State) State {
	state.Result = nil
	state.ShowModelAnswer = false
	state.Status = Status{}
	return state
}

// cycle returns the option after current, wrapping to the first.
func cycle(options []string, current string) string {
	for i, option := range options {
		if option == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}
