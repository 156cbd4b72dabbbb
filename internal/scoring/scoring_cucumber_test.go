//go:build cucumber

package scoring_test

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"coach/internal/catalog"
	"coach/internal/scoring"
	"coach/internal/session"
)

// TestScoringScenarios runs the scoring feature scenarios.
func TestScoringScenarios(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "scoring",
		ScenarioInitializer: InitializeScoringScenario,
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{"../../features/scoring.feature"},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeScoringScenario wires steps for scoring scenarios.
func InitializeScoringScenario(ctx *godog.ScenarioContext) {
	state := &scoringScenarioState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.Step(`^the catalog question (\d+)$`, state.givenQuestion)
	ctx.Step(`^I answer with (\d+) words(?: followed by "([^"]*)")?$`, state.whenAnswerWords)
	ctx.Step(`^I answer:$`, state.whenAnswerDoc)
	ctx.Step(`^the score is (\d+)$`, state.thenScore)
	ctx.Step(`^the strengths include "([^"]+)"$`, state.thenStrength)
	ctx.Step(`^the improvements include "([^"]+)"$`, state.thenImprovement)
	ctx.Step(`^a new practice session$`, state.givenSession)
	ctx.Step(`^I submit "([^"]*)"$`, state.whenSubmit)
	ctx.Step(`^the submission is rejected$`, state.thenRejected)
	ctx.Step(`^the session is still on question 1 without a submitted answer$`, state.thenUnchanged)
}

type scoringScenarioState struct {
	question  catalog.Question
	result    scoring.Result
	session   *session.Session
	submitErr error
}

// reset clears scenario state.
func (s *scoringScenarioState) reset() {
	*s = scoringScenarioState{}
}

func (s *scoringScenarioState) givenQuestion(id int) error {
	c := catalog.Builtin()
	index, ok := c.IndexOf(id)
	if !ok {
		return fmt.Errorf("question %d not in built-in catalog", id)
	}
	s.question = c.At(index)
	return nil
}

func (s *scoringScenarioState) whenAnswerWords(count int, suffix string) error {
	answer := strings.TrimSpace(strings.Repeat("word ", count) + suffix)
	s.result = scoring.Evaluate(s.question, answer)
	return nil
}

func (s *scoringScenarioState) whenAnswerDoc(doc *godog.DocString) error {
	s.result = scoring.Evaluate(s.question, doc.Content)
	return nil
}

func (s *scoringScenarioState) thenScore(score int) error {
	if s.result.Score != score {
		return fmt.Errorf("expected score %d, got %d", score, s.result.Score)
	}
	return nil
}

func (s *scoringScenarioState) thenStrength(text string) error {
	if !slices.Contains(s.result.Strengths, text) {
		return fmt.Errorf("expected strength %q, got %v", text, s.result.Strengths)
	}
	return nil
}

func (s *scoringScenarioState) thenImprovement(text string) error {
	if !slices.Contains(s.result.Improvements, text) {
		return fmt.Errorf("expected improvement %q, got %v", text, s.result.Improvements)
	}
	return nil
}

func (s *scoringScenarioState) givenSession() error {
	sess, err := session.New(catalog.Builtin(), session.Options{})
	if err != nil {
		return err
	}
	s.session = sess
	return nil
}

func (s *scoringScenarioState) whenSubmit(answer string) error {
	s.submitErr = s.session.Submit(answer)
	return nil
}

func (s *scoringScenarioState) thenRejected() error {
	if !errors.Is(s.submitErr, session.ErrAnswerTooShort) {
		return fmt.Errorf("expected ErrAnswerTooShort, got %v", s.submitErr)
	}
	return nil
}

func (s *scoringScenarioState) thenUnchanged() error {
	if s.session.CurrentIndex() != 0 {
		return fmt.Errorf("expected index 0, got %d", s.session.CurrentIndex())
	}
	if s.session.AnswerSubmitted() {
		return fmt.Errorf("expected no submitted answer")
	}
	return nil
}
