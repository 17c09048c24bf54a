package app

import (
	"math"

	"intelliquiz/internal/domain"
)

// GradeResult is the outcome of grading one attempt.
type GradeResult struct {
	Correct        int               `json:"correct"`
	Total          int               `json:"total"`
	Percentage     int               `json:"percentage"`
	NextDifficulty domain.Difficulty `json:"nextDifficulty"`
}

// AnswerKey resolves each question's marker to a canonical option index.
// Unresolved markers default to index 0 so grading stays well-defined; the
// resolver's Unresolved sentinel never leaks into the key.
func AnswerKey(questions []domain.Question) []int {
	key := make([]int, len(questions))
	for i, q := range questions {
		if idx, ok := q.Correct.Resolve(q.Options); ok {
			key[i] = idx
		}
	}
	return key
}

// Grade compares the user's selections against the answer key. Unset slots
// (any value that never equals a valid index, conventionally -1) count as
// wrong. Extra selections beyond the key are ignored.
func Grade(key, answers []int) GradeResult {
	correct := 0
	for i, want := range key {
		if i < len(answers) && answers[i] == want {
			correct++
		}
	}
	percentage := Percentage(correct, len(key))
	return GradeResult{
		Correct:        correct,
		Total:          len(key),
		Percentage:     percentage,
		NextDifficulty: domain.NextDifficulty(percentage),
	}
}

// Percentage computes round(100*score/total); an empty quiz scores 0.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(score) / float64(total)))
}
