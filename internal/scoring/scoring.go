// Package scoring grades free-text interview answers with keyword and
// length heuristics.
package scoring

import (
	"fmt"
	"strings"

	"coach/internal/catalog"
)

// Score bounds and the starting point before adjustments.
const (
	MinScore  = 1
	MaxScore  = 10
	BaseScore = 5

	// ReversedScore replaces the running score when setup and hold are swapped.
	ReversedScore = 2
)

// DisplayLimit caps how many strengths and improvements are shown.
const DisplayLimit = 3

// Result is the outcome of grading one answer.
type Result struct {
	Score        int
	Title        string
	Rating       string
	WordCount    int
	Strengths    []string
	Improvements []string
	Reversed     bool
	Analysis     *Analysis
}

// Analysis carries the extra detail shown for low-scoring answers.
type Analysis struct {
	Keywords  []string
	Relevance string
	Tip       string
}

// TopStrengths returns the strengths that fit the display limit.
func (r Result) TopStrengths() []string {
	return head(r.Strengths, DisplayLimit)
}

// TopImprovements returns the improvements that fit the display limit.
func (r Result) TopImprovements() []string {
	return head(r.Improvements, DisplayLimit)
}

func head(values []string, n int) []string {
	if len(values) <= n {
		return values
	}
	return values[:n]
}

// grader accumulates score and feedback while rules run.
type grader struct {
	answer       string
	score        int
	strengths    []string
	improvements []string
	reversed     bool
}

func (g *grader) strength(text string) {
	g.strengths = append(g.strengths, text)
}

func (g *grader) improvement(text string) {
	g.improvements = append(g.improvements, text)
}

func (g *grader) has(term string) bool {
	return strings.Contains(g.answer, term)
}

func (g *grader) hasAny(terms ...string) bool {
	for _, term := range terms {
		if g.has(term) {
			return true
		}
	}
	return false
}

// Evaluate grades an answer against a question.
func Evaluate(q catalog.Question, answer string) Result {
	g := &grader{
		answer: strings.ToLower(answer),
		score:  BaseScore,
	}
	words := WordCount(answer)
	scoreLength(g, words)

	prompt := strings.ToLower(q.Prompt)
	switch {
	case strings.Contains(prompt, "setup") && strings.Contains(prompt, "hold"):
		scoreSetupHold(g)
	case strings.Contains(prompt, "bjt") && strings.Contains(prompt, "mosfet"):
		scoreBJTMOSFET(g)
	}

	score := Clamp(g.score)
	title := applyTier(g, score)

	result := Result{
		Score:        score,
		Title:        title,
		Rating:       Rating(score),
		WordCount:    words,
		Strengths:    g.strengths,
		Improvements: g.improvements,
		Reversed:     g.reversed,
	}
	if score < 6 {
		result.Analysis = analyze(g, words)
	}
	return result
}

// WordCount counts whitespace-separated words.
func WordCount(answer string) int {
	return len(strings.Fields(answer))
}

// Clamp bounds a raw score to [MinScore, MaxScore].
func Clamp(score int) int {
	return max(MinScore, min(MaxScore, score))
}

// LengthBonus returns the score delta awarded for an answer's word count.
func LengthBonus(words int) int {
	switch {
	case words > 100:
		return 3
	case words > 60:
		return 2
	case words > 30:
		return 1
	default:
		return -2
	}
}

func scoreLength(g *grader, words int) {
	g.score += LengthBonus(words)
	switch {
	case words > 100:
		g.strength("Comprehensive answer with good detail")
	case words > 60:
		g.strength("Good answer length")
	case words > 30:
		g.strength("Adequate answer length")
	default:
		g.improvement("Answer is too brief - aim for at least 50 words")
	}
}

func scoreSetupHold(g *grader) {
	hasSetup := g.has("setup")
	hasHold := g.has("hold")

	if hasSetup && g.has("after") && hasHold && g.has("before") {
		g.reversed = true
		g.score = ReversedScore
		g.improvement("❌ **MAJOR CONCEPT ERROR:** You reversed setup and hold time!")
		g.improvement("✓ Setup time is BEFORE clock edge")
		g.improvement("✓ Hold time is AFTER clock edge")
		return
	}

	switch {
	case hasSetup && hasHold:
		g.score += 3
		g.strength("Correctly identified both setup and hold time")
	case hasSetup:
		g.score++
		g.strength("Mentioned setup time")
		g.improvement("Missing hold time definition")
	case hasHold:
		g.score++
		g.strength("Mentioned hold time")
		g.improvement("Missing setup time definition")
	default:
		g.score -= 2
		g.improvement("Missing both setup and hold time concepts")
	}

	if g.has("clock") {
		g.score++
		g.strength("Related timing to clock edges")
	} else {
		g.improvement("Should mention clock signal relationship")
	}

	if g.hasAny("stable", "constant") {
		g.score++
		g.strength("Correctly mentioned data stability requirement")
	}

	if g.hasAny("diagram", "timing", "waveform") {
		g.score++
		g.strength("Considered timing diagrams as requested")
	} else {
		g.improvement("Include description of timing diagrams")
	}

	if g.hasAny("violat", "metastab", "error", "fail", "problem") {
		g.score++
		g.strength("Discussed consequences of timing violations")
	} else {
		g.improvement("Mention what happens during setup/hold violations")
	}
}

func scoreBJTMOSFET(g *grader) {
	hasCurrent := g.has("current")
	hasVoltage := g.has("voltage")

	switch {
	case hasCurrent && hasVoltage:
		g.score += 3
		g.strength("Correctly identified control mechanism difference")
	case hasCurrent:
		g.score++
		g.improvement("Missing voltage control aspect")
	case hasVoltage:
		g.score++
		g.improvement("Missing current control aspect")
	}

	if g.hasAny("impedance", "resistance") {
		g.score++
		g.strength("Mentioned input impedance difference")
	}

	if g.hasAny("digital", "switch") {
		g.score++
		g.strength("Correctly identified MOSFET preference in digital circuits")
	}
}

// Tier titles, highest first.
const (
	TitleExcellent        = "🎉 Excellent Answer!"
	TitleGood             = "✅ Good Answer"
	TitleAverage          = "📚 Average Answer"
	TitleNeedsImprovement = "⚠️ Needs Improvement"
)

// applyTier picks the headline for a clamped score and tops up empty lists.
func applyTier(g *grader, score int) string {
	switch {
	case score >= 9:
		g.strength("Comprehensive and technically accurate")
		return TitleExcellent
	case score >= 7:
		if len(g.improvements) == 0 {
			g.improvement("Add more examples for even better answer")
		}
		return TitleGood
	case score >= 5:
		if len(g.improvements) == 0 {
			g.improvement("Review key concepts and add more detail")
		}
		return TitleAverage
	default:
		if len(g.strengths) == 0 {
			g.strength("You attempted the question - good starting point")
		}
		return TitleNeedsImprovement
	}
}

// Rating is the short label shown next to the score.
func Rating(score int) string {
	switch {
	case score >= 8:
		return "Good"
	case score >= 6:
		return "Average"
	default:
		return "Needs Work"
	}
}

var analysisKeywords = []string{"setup", "hold", "clock", "stable"}

const structureTip = "Try to structure your answer with: 1) Definition 2) Explanation 3) Example 4) Importance"

func analyze(g *grader, words int) *Analysis {
	found := []string{}
	for _, keyword := range analysisKeywords {
		if g.has(keyword) {
			found = append(found, keyword)
		}
	}
	relevance := "Low"
	switch {
	case words > 50:
		relevance = "High"
	case words > 25:
		relevance = "Medium"
	}
	return &Analysis{Keywords: found, Relevance: relevance, Tip: structureTip}
}

// ScoreLabel renders a score as "n/10".
func ScoreLabel(score int) string {
	return fmt.Sprintf("%d/%d", score, MaxScore)
}
