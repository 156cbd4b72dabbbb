package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category groups questions by subject area.
type Category string

// Built-in categories.
const (
	DigitalDesign  Category = "digital_design"
	AnalogCircuits Category = "analog_circuits"
)

// Difficulty ranks how hard a question is.
type Difficulty string

// Supported difficulties.
const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Valid reports whether the difficulty is one of the supported levels.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	default:
		return false
	}
}

// DisplayName returns the title-cased category label.
func (c Category) DisplayName() string {
	return displayName(string(c))
}

// DisplayName returns the title-cased difficulty label.
func (d Difficulty) DisplayName() string {
	return displayName(string(d))
}

// displayName builds a fresh Caser per call; Casers are not safe to share.
func displayName(slug string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(slug, "_", " "))
}

// Spec defines the catalog file schema loaded from JSON or YAML.
type Spec struct {
	Version   int        `json:"version" yaml:"version"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Question is a single interview question with its reference material.
type Question struct {
	ID          int        `json:"id" yaml:"id"`
	Category    Category   `json:"category" yaml:"category"`
	Difficulty  Difficulty `json:"difficulty" yaml:"difficulty"`
	Prompt      string     `json:"question" yaml:"question"`
	ModelAnswer string     `json:"model_answer" yaml:"model_answer"`
	KeyPoints   []string   `json:"key_points" yaml:"key_points"`
	FollowUp    string     `json:"follow_up" yaml:"follow_up"`
}
