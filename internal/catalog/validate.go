package catalog

import (
	"fmt"
	"regexp"
	"strings"
)

// Issue captures a validation problem in a catalog file.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("catalog validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

var categoryPattern = regexp.MustCompile(`^[a-z][a-z0-9]*(_[a-z0-9]+)*$`)

// NormalizeSpec trims whitespace and validates a catalog spec.
func NormalizeSpec(spec Spec) (Spec, error) {
	collector := &issueCollector{}
	if spec.Version == 0 {
		collector.add("version", "is required")
	} else if spec.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", spec.Version))
	}
	if len(spec.Questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}

	seenIDs := map[int]struct{}{}
	for i, question := range spec.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		if question.ID <= 0 {
			collector.add(prefix+".id", "must be a positive integer")
		} else if _, exists := seenIDs[question.ID]; exists {
			collector.add(prefix+".id", fmt.Sprintf("duplicate id %d", question.ID))
		} else {
			seenIDs[question.ID] = struct{}{}
		}

		question.Category = Category(strings.ToLower(strings.TrimSpace(string(question.Category))))
		if question.Category == "" {
			collector.add(prefix+".category", "is required")
		} else if !categoryPattern.MatchString(string(question.Category)) {
			collector.add(prefix+".category", fmt.Sprintf("invalid category %q (expected lower_snake_case)", question.Category))
		}

		question.Difficulty = Difficulty(strings.ToLower(strings.TrimSpace(string(question.Difficulty))))
		if question.Difficulty == "" {
			collector.add(prefix+".difficulty", "is required")
		} else if !question.Difficulty.Valid() {
			collector.add(prefix+".difficulty", fmt.Sprintf("unknown difficulty %q (expected easy|medium|hard)", question.Difficulty))
		}

		question.Prompt = strings.TrimSpace(question.Prompt)
		if question.Prompt == "" {
			collector.add(prefix+".question", "is required")
		}
		question.ModelAnswer = strings.TrimSpace(question.ModelAnswer)
		if question.ModelAnswer == "" {
			collector.add(prefix+".model_answer", "is required")
		}
		question.FollowUp = strings.TrimSpace(question.FollowUp)
		if question.FollowUp == "" {
			collector.add(prefix+".follow_up", "is required")
		}

		question.KeyPoints = normalizeStringSlice(question.KeyPoints)
		for pointIndex, point := range question.KeyPoints {
			if point == "" {
				collector.add(fmt.Sprintf("%s.key_points[%d]", prefix, pointIndex), "is required")
			}
		}
		spec.Questions[i] = question
	}

	if err := collector.result(); err != nil {
		return Spec{}, err
	}
	return spec, nil
}

func normalizeStringSlice(values []string) []string {
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		normalized = append(normalized, strings.TrimSpace(value))
	}
	return normalized
}
