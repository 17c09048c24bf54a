package app_test

import (
	"testing"

	"intelliquiz/internal/app"
	"intelliquiz/internal/domain"
)

func TestGradeEndToEndScenario(t *testing.T) {
	key := []int{0, 1, 2, 2, 3}
	answers := []int{0, 1, -1, 2, 0} // -1 is an unset slot

	result := app.Grade(key, answers)
	if result.Correct != 3 || result.Total != 5 {
		t.Fatalf("expected 3/5, got %d/%d", result.Correct, result.Total)
	}
	if result.Percentage != 60 {
		t.Fatalf("expected 60%%, got %d", result.Percentage)
	}
	if result.NextDifficulty != domain.DifficultyMedium {
		t.Fatalf("expected medium, got %s", result.NextDifficulty)
	}
}

func TestGradeEmptyQuiz(t *testing.T) {
	result := app.Grade(nil, nil)
	if result.Correct != 0 || result.Total != 0 || result.Percentage != 0 {
		t.Fatalf("empty quiz must grade to zero, got %+v", result)
	}
}

func TestGradeShortAnswerSlice(t *testing.T) {
	result := app.Grade([]int{0, 1, 2}, []int{0})
	if result.Correct != 1 || result.Total != 3 {
		t.Fatalf("missing answers count as wrong, got %+v", result)
	}
}

func TestPercentageRounding(t *testing.T) {
	cases := []struct {
		score, total, want int
	}{
		{0, 0, 0},
		{0, 5, 0},
		{1, 3, 33},
		{2, 3, 67},
		{5, 5, 100},
		{1, 6, 17},
	}
	for _, tc := range cases {
		if got := app.Percentage(tc.score, tc.total); got != tc.want {
			t.Fatalf("Percentage(%d, %d) = %d, want %d", tc.score, tc.total, got, tc.want)
		}
	}
}

func TestAnswerKeyResolvesMarkers(t *testing.T) {
	questions := []domain.Question{
		{Options: []string{"Paris", "London", "Rome", "Berlin"}, Correct: domain.MarkerFromString("B")},
		{Options: []string{"Paris", "London", "Rome", "Berlin"}, Correct: domain.MarkerFromIndex(2)},
		{Options: []string{"Paris", "London", "Rome", "Berlin"}, Correct: domain.MarkerFromString("blue")},
	}

	key := app.AnswerKey(questions)
	if len(key) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(key))
	}
	if key[0] != 1 || key[1] != 2 {
		t.Fatalf("unexpected resolutions %v", key)
	}
	// Unresolved markers default to index 0 so grading stays well-defined.
	if key[2] != 0 {
		t.Fatalf("expected unresolved marker to default to 0, got %d", key[2])
	}
}
