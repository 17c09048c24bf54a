package quizgen

import (
	"encoding/json"
	"fmt"
	"strings"

	"intelliquiz/internal/domain"
)

const defaultExplanation = "No explanation provided."

type completionEnvelope struct {
	Questions []completionQuestion `json:"questions"`
}

type completionQuestion struct {
	Question    string              `json:"question"`
	Options     []string            `json:"options"`
	Correct     domain.AnswerMarker `json:"correct"`
	Explanation string              `json:"explanation"`
}

// Normalize extracts a well-formed question list from the raw completion
// response. The model frequently wraps its JSON in prose, so only the slice
// between the first '{' and the last '}' is decoded. Any decode failure, or
// a payload without a questions array, yields an empty list: zero questions
// is a valid degraded outcome, not an error.
func Normalize(raw string) []domain.Question {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return nil
	}

	var envelope completionEnvelope
	if err := json.Unmarshal([]byte(raw[start:end+1]), &envelope); err != nil {
		return nil
	}

	questions := make([]domain.Question, 0, len(envelope.Questions))
	for _, item := range envelope.Questions {
		text := strings.TrimSpace(item.Question)
		if text == "" {
			continue
		}
		questions = append(questions, domain.Question{
			Text:        text,
			Options:     normalizeOptions(item.Options),
			Correct:     item.Correct,
			Explanation: normalizeExplanation(item.Explanation),
		})
	}
	return questions
}

// normalizeOptions pads short option lists with placeholders and truncates
// long ones so every question carries exactly 4 options.
func normalizeOptions(options []string) []string {
	normalized := make([]string, 0, 4)
	for _, opt := range options {
		if len(normalized) == 4 {
			break
		}
		normalized = append(normalized, opt)
	}
	for len(normalized) < 4 {
		normalized = append(normalized, fmt.Sprintf("Option %c", 'A'+len(normalized)))
	}
	return normalized
}

func normalizeExplanation(explanation string) string {
	if strings.TrimSpace(explanation) == "" {
		return defaultExplanation
	}
	return explanation
}
