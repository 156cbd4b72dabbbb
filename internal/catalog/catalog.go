package catalog

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed questions.yml
var builtinYAML []byte

// Catalog is an immutable, ordered list of questions.
type Catalog struct {
	questions []Question
}

// New builds a catalog from already-validated questions.
func New(questions []Question) *Catalog {
	copied := make([]Question, len(questions))
	copy(copied, questions)
	return &Catalog{questions: copied}
}

// Builtin returns the embedded electronics question bank.
func Builtin() *Catalog {
	c, err := Parse(builtinYAML, ".yml")
	if err != nil {
		panic(fmt.Sprintf("builtin catalog: %v", err))
	}
	return c
}

// BuiltinSource returns the raw YAML of the embedded catalog.
func BuiltinSource() []byte {
	out := make([]byte, len(builtinYAML))
	copy(out, builtinYAML)
	return out
}

// Len returns the number of questions.
func (c *Catalog) Len() int {
	return len(c.questions)
}

// At returns the question at a catalog index.
func (c *Catalog) At(index int) Question {
	return c.questions[index]
}

// Questions returns a copy of all questions in catalog order.
func (c *Catalog) Questions() []Question {
	out := make([]Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// IndexOf returns the catalog index of the question with id.
func (c *Catalog) IndexOf(id int) (int, bool) {
	for i, q := range c.questions {
		if q.ID == id {
			return i, true
		}
	}
	return -1, false
}

// Categories returns the distinct categories, sorted.
func (c *Catalog) Categories() []Category {
	seen := map[Category]struct{}{}
	out := []Category{}
	for _, q := range c.questions {
		if _, ok := seen[q.Category]; ok {
			continue
		}
		seen[q.Category] = struct{}{}
		out = append(out, q.Category)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Difficulties returns the distinct difficulties ordered easy to hard.
func (c *Catalog) Difficulties() []Difficulty {
	present := map[Difficulty]bool{}
	for _, q := range c.questions {
		present[q.Difficulty] = true
	}
	out := []Difficulty{}
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		if present[d] {
			out = append(out, d)
		}
	}
	return out
}

// All is the filter value that disables a constraint.
const All = "all"

// Filter narrows the catalog by category and difficulty.
type Filter struct {
	Category   string
	Difficulty string
}

func (f Filter) matches(q Question) bool {
	if !unconstrained(f.Category) && !strings.EqualFold(strings.TrimSpace(f.Category), string(q.Category)) {
		return false
	}
	if !unconstrained(f.Difficulty) && !strings.EqualFold(strings.TrimSpace(f.Difficulty), string(q.Difficulty)) {
		return false
	}
	return true
}

func unconstrained(value string) bool {
	value = strings.TrimSpace(value)
	return value == "" || strings.EqualFold(value, All)
}

// Filter returns the questions matching f in catalog order.
func (c *Catalog) Filter(f Filter) []Question {
	out := []Question{}
	for _, q := range c.questions {
		if f.matches(q) {
			out = append(out, q)
		}
	}
	return out
}
