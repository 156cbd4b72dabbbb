// Package session tracks one learner's progress through the catalog.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"coach/internal/catalog"
	"coach/internal/logging"
	"coach/internal/scoring"
)

// DefaultMinAnswerLength is the shortest trimmed answer accepted.
const DefaultMinAnswerLength = 20

// ErrAnswerTooShort indicates the trimmed answer is below the minimum length.
var ErrAnswerTooShort = errors.New("answer too short")

// ErrNotSubmitted indicates feedback was requested before submitting.
var ErrNotSubmitted = errors.New("answer not submitted")

// ErrUnknownQuestion indicates a question id that is not in the catalog.
var ErrUnknownQuestion = errors.New("unknown question")

// Options configures a session.
type Options struct {
	MinAnswerLength int
	Logger          logrus.FieldLogger
}

// Session is the mutable practice state. It is not safe for concurrent use.
type Session struct {
	id              string
	catalog         *catalog.Catalog
	minAnswerLength int
	log             logrus.FieldLogger

	currentIndex    int
	answerSubmitted bool
	feedbackGiven   bool
	userScore       int
	scores          map[int]int
	drafts          map[int]string
}

// New starts a session at the first catalog question.
func New(c *catalog.Catalog, opts Options) (*Session, error) {
	if c == nil || c.Len() == 0 {
		return nil, fmt.Errorf("catalog must include at least one question")
	}
	minLength := opts.MinAnswerLength
	if minLength <= 0 {
		minLength = DefaultMinAnswerLength
	}
	id := uuid.NewString()
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	s := &Session{
		id:              id,
		catalog:         c,
		minAnswerLength: minLength,
		log:             log.WithField("session_id", id),
	}
	s.reset()
	return s, nil
}

// Context attaches the session id to ctx for downstream logging.
func (s *Session) Context(ctx context.Context) context.Context {
	return logging.ContextWithSession(ctx, s.id)
}

func (s *Session) reset() {
	s.currentIndex = 0
	s.answerSubmitted = false
	s.feedbackGiven = false
	s.userScore = 0
	s.scores = map[int]int{}
	s.drafts = map[int]string{}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Catalog returns the catalog the session walks through.
func (s *Session) Catalog() *catalog.Catalog { return s.catalog }

// MinAnswerLength returns the configured minimum answer length.
func (s *Session) MinAnswerLength() int { return s.minAnswerLength }

// CurrentIndex returns the catalog index of the current question.
func (s *Session) CurrentIndex() int { return s.currentIndex }

// Current returns the current question.
func (s *Session) Current() catalog.Question { return s.catalog.At(s.currentIndex) }

// AnswerSubmitted reports whether the current answer has been submitted.
func (s *Session) AnswerSubmitted() bool { return s.answerSubmitted }

// FeedbackGiven reports whether feedback was produced for the current answer.
func (s *Session) FeedbackGiven() bool { return s.feedbackGiven }

// UserScore returns the sum of the latest score per question.
func (s *Session) UserScore() int { return s.userScore }

// ScoreFor returns the latest score recorded for a question id.
func (s *Session) ScoreFor(id int) (int, bool) {
	score, ok := s.scores[id]
	return score, ok
}

// Draft returns the saved answer text for the current question.
func (s *Session) Draft() string { return s.drafts[s.currentIndex] }

// SetDraft stores answer text for the current question.
func (s *Session) SetDraft(text string) {
	if text == "" {
		delete(s.drafts, s.currentIndex)
		return
	}
	s.drafts[s.currentIndex] = text
}

// ValidateAnswer checks the trimmed answer against the minimum length.
func (s *Session) ValidateAnswer(answer string) error {
	if utf8.RuneCountInString(strings.TrimSpace(answer)) < s.minAnswerLength {
		return fmt.Errorf("%w: minimum %d characters", ErrAnswerTooShort, s.minAnswerLength)
	}
	return nil
}

// Submit marks the current answer as submitted.
func (s *Session) Submit(answer string) error {
	if err := s.ValidateAnswer(answer); err != nil {
		s.log.WithField("question_id", s.Current().ID).Debug("Submission rejected")
		return err
	}
	s.answerSubmitted = true
	s.feedbackGiven = false
	s.log.WithField("question_id", s.Current().ID).Info("Answer submitted")
	return nil
}

// Feedback grades a submitted answer and records its score.
func (s *Session) Feedback(answer string) (scoring.Result, error) {
	if !s.answerSubmitted {
		return scoring.Result{}, ErrNotSubmitted
	}
	if err := s.ValidateAnswer(answer); err != nil {
		return scoring.Result{}, err
	}
	q := s.Current()
	result := scoring.Evaluate(q, answer)
	if previous, ok := s.scores[q.ID]; ok {
		s.userScore -= previous
	}
	s.scores[q.ID] = result.Score
	s.userScore += result.Score
	s.feedbackGiven = true
	s.log.WithFields(logrus.Fields{
		"question_id": q.ID,
		"score":       result.Score,
		"words":       result.WordCount,
	}).Info("Feedback generated")
	return result, nil
}

// Next advances to the following question, wrapping at the end.
func (s *Session) Next() {
	s.moveTo((s.currentIndex + 1) % s.catalog.Len())
}

// Select jumps to the question with the given id.
func (s *Session) Select(id int) error {
	index, ok := s.catalog.IndexOf(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownQuestion, id)
	}
	s.moveTo(index)
	return nil
}

// Restart returns to the first question and clears all progress.
func (s *Session) Restart() {
	s.reset()
	s.log.Info("Practice restarted")
}

func (s *Session) moveTo(index int) {
	s.currentIndex = index
	s.answerSubmitted = false
	s.feedbackGiven = false
	s.log.WithField("question_id", s.Current().ID).Debug("Moved to question")
}

// Progress describes the position within the catalog.
type Progress struct {
	Current   int
	Total     int
	Completed int
	Fraction  float64
}

// Progress returns the 1-based position and completion counts.
func (s *Session) Progress() Progress {
	total := s.catalog.Len()
	current := s.currentIndex + 1
	return Progress{
		Current:   current,
		Total:     total,
		Completed: current - 1,
		Fraction:  float64(current) / float64(total),
	}
}
