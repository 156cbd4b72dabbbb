// Package ui holds the text shared by the interactive and plain front ends.
package ui

import (
	"errors"
	"fmt"

	"coach/internal/catalog"
	"coach/internal/session"
)

// ListEntryPromptLimit is how many prompt characters a list entry shows.
const ListEntryPromptLimit = 50

// ListEntry renders "Q<id>: <first 50 chars>...".
func ListEntry(q catalog.Question) string {
	runes := []rune(q.Prompt)
	if len(runes) > ListEntryPromptLimit {
		runes = runes[:ListEntryPromptLimit]
	}
	return fmt.Sprintf("Q%d: %s...", q.ID, string(runes))
}

// Caption renders "Category: X • Difficulty: Y".
func Caption(q catalog.Question) string {
	return fmt.Sprintf("Category: %s • Difficulty: %s", q.Category.DisplayName(), q.Difficulty.DisplayName())
}

// ProgressLine renders "Question N of M".
func ProgressLine(p session.Progress) string {
	return fmt.Sprintf("Question %d of %d", p.Current, p.Total)
}

// CompletedLine renders "Questions Completed N/M".
func CompletedLine(p session.Progress) string {
	return fmt.Sprintf("Questions Completed %d/%d", p.Completed, p.Total)
}

// SubmittedMessage confirms a submission; hint names how to ask for feedback.
func SubmittedMessage(hint string) string {
	return fmt.Sprintf("✅ Answer submitted! %s for evaluation.", hint)
}

// AnswerWarning turns a session error into the warning shown to the user.
func AnswerWarning(err error, minLength int, forFeedback bool) string {
	if !errors.Is(err, session.ErrAnswerTooShort) {
		return "⚠️ " + err.Error()
	}
	suffix := ""
	if forFeedback {
		suffix = " to get feedback"
	}
	return fmt.Sprintf("⚠️ Please write a more detailed answer (minimum %d characters)%s.", minLength, suffix)
}

// FilterLabel renders a filter value, showing "All" when unconstrained.
func FilterLabel(value string) string {
	if value == "" || value == catalog.All {
		return "All"
	}
	return catalog.Category(value).DisplayName()
}
