package quiz

import (
	"coach/internal/catalog"
	"coach/internal/scoring"
	"coach/internal/session"
)

// Focus identifies which pane receives navigation keys.
type Focus int

const (
	// FocusEditor routes keys to the answer editor.
	FocusEditor Focus = iota
	// FocusSidebar routes keys to the question bank.
	FocusSidebar
)

// StatusKind selects how the status line is styled.
type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusSuccess
	StatusWarning
	StatusInfo
)

// Status is the one-line message under the editor.
type Status struct {
	Kind StatusKind
	Text string
}

// State is everything the quiz view needs besides widget state.
type State struct {
	Session         *session.Session
	Filter          catalog.Filter
	Cursor          int
	Focus           Focus
	Status          Status
	Result          *scoring.Result
	ShowModelAnswer bool
}

// NewState starts at the first question with no filters applied.
func NewState(s *session.Session) State {
	return State{
		Session: s,
		Filter:  catalog.Filter{Category: catalog.All, Difficulty: catalog.All},
	}
}

// Visible returns the sidebar question list under the current filter.
func (s State) Visible() []catalog.Question {
	return s.Session.Catalog().Filter(s.Filter)
}
