package scoring

import (
	"fmt"
	"io"
	"strings"

	"coach/internal/catalog"
)

// WriteReport renders a result as plain text.
func WriteReport(w io.Writer, q catalog.Question, r Result, showModelAnswer bool) {
	fmt.Fprintf(w, "📊 %s\n", r.Title)
	fmt.Fprintf(w, "🎯 Score: %s (%s)   📝 Words: %d\n", ScoreLabel(r.Score), r.Rating, r.WordCount)

	fmt.Fprintln(w, "\n✅ Strengths:")
	for _, strength := range r.TopStrengths() {
		fmt.Fprintf(w, "  • %s\n", strength)
	}
	fmt.Fprintln(w, "\n📈 Areas for Improvement:")
	for _, improvement := range r.TopImprovements() {
		fmt.Fprintf(w, "  • %s\n", improvement)
	}

	if r.Analysis != nil {
		fmt.Fprintln(w, "\n🔍 Detailed Analysis:")
		fmt.Fprintf(w, "  - Keywords found: [%s]\n", strings.Join(r.Analysis.Keywords, ", "))
		fmt.Fprintf(w, "  - Answer relevance: %s\n", r.Analysis.Relevance)
		fmt.Fprintf(w, "  Tip: %s\n", r.Analysis.Tip)
	}

	if showModelAnswer {
		fmt.Fprintln(w, "\n📘 Model Answer:")
		fmt.Fprintln(w, q.ModelAnswer)
	}

	fmt.Fprintln(w, "\n💭 Follow-up Question (for deeper understanding):")
	fmt.Fprintln(w, q.FollowUp)
}
