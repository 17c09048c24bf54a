package app_test

import (
	"testing"
	"time"

	"intelliquiz/internal/app"
	"intelliquiz/internal/domain"
)

func record(user string, percentage int, createdAt time.Time) domain.ScoreRecord {
	return domain.ScoreRecord{
		ID:         user + "-" + createdAt.String(),
		UserID:     user,
		UserName:   "name-" + user,
		Score:      percentage / 10,
		Total:      10,
		Percentage: percentage,
		CreatedAt:  createdAt,
	}
}

func TestAggregateKeepsBestPerUser(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	records := []domain.ScoreRecord{
		record("u1", 40, base),
		record("u1", 90, base.Add(time.Hour)),
		record("u1", 70, base.Add(2*time.Hour)),
	}

	entries := app.AggregateLeaderboard(records)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Percentage != 90 {
		t.Fatalf("expected best percentage 90, got %d", entries[0].Percentage)
	}
}

func TestAggregateSortsDescending(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	records := []domain.ScoreRecord{
		record("u1", 55, base),
		record("u2", 85, base),
		record("u3", 70, base),
	}

	entries := app.AggregateLeaderboard(records)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	want := []string{"u2", "u3", "u1"}
	for i, userID := range want {
		if entries[i].UserID != userID {
			t.Fatalf("position %d: expected %s, got %s", i, userID, entries[i].UserID)
		}
	}
}

func TestAggregateTieBreaksByEarliestRecord(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	// Within one user: same percentage keeps the earliest record.
	records := []domain.ScoreRecord{
		record("u1", 80, base.Add(time.Hour)),
		record("u1", 80, base),
	}
	entries := app.AggregateLeaderboard(records)
	if !entries[0].CreatedAt.Equal(base) {
		t.Fatalf("expected earliest record kept, got %v", entries[0].CreatedAt)
	}

	// Across users: equal percentages order by earliest createdAt.
	records = []domain.ScoreRecord{
		record("u2", 80, base.Add(time.Hour)),
		record("u1", 80, base),
	}
	entries = app.AggregateLeaderboard(records)
	if entries[0].UserID != "u1" || entries[1].UserID != "u2" {
		t.Fatalf("expected earlier record first, got %+v", entries)
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	if entries := app.AggregateLeaderboard(nil); len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}
