package app_test

import (
	"context"
	"errors"
	"testing"

	"intelliquiz/internal/app"
	"intelliquiz/internal/domain"
	"intelliquiz/internal/infra/memory"
)

var alice = app.Identity{UserID: "u1", Name: "Alice", Email: "alice@example.com"}

func newScoreService() *app.ScoreService {
	return app.NewScoreService(memory.NewScoreRepository(), app.NewLeaderboardHub())
}

func TestSaveScoreRecomputesPercentage(t *testing.T) {
	ctx := context.Background()
	service := newScoreService()

	record, err := service.SaveScore(ctx, alice, app.SaveScoreInput{Score: 3, Total: 5, Topic: "rivers"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if record.Percentage != 60 {
		t.Fatalf("expected recomputed percentage 60, got %d", record.Percentage)
	}
	if record.UserID != "u1" || record.UserName != "Alice" {
		t.Fatalf("expected identity attached, got %+v", record)
	}
	if record.Difficulty != domain.DifficultyMedium {
		t.Fatalf("expected default medium difficulty, got %s", record.Difficulty)
	}
	if record.ID == "" || record.CreatedAt.IsZero() {
		t.Fatalf("expected id and timestamp to be assigned")
	}
}

func TestSaveScoreRejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	service := newScoreService()

	cases := []app.SaveScoreInput{
		{Score: 6, Total: 5},
		{Score: -1, Total: 5},
		{Score: 0, Total: -2},
	}
	for _, input := range cases {
		if _, err := service.SaveScore(ctx, alice, input); !errors.Is(err, domain.ErrInvalidScore) {
			t.Fatalf("input %+v: expected ErrInvalidScore, got %v", input, err)
		}
	}
}

func TestSaveScoreZeroTotal(t *testing.T) {
	ctx := context.Background()
	service := newScoreService()

	record, err := service.SaveScore(ctx, alice, app.SaveScoreInput{Score: 0, Total: 0})
	if err != nil {
		t.Fatalf("zero total must not fail: %v", err)
	}
	if record.Percentage != 0 {
		t.Fatalf("expected 0%%, got %d", record.Percentage)
	}
}

func TestLeaderboardAggregatesSavedScores(t *testing.T) {
	ctx := context.Background()
	service := newScoreService()
	bob := app.Identity{UserID: "u2", Name: "Bob"}

	for _, save := range []struct {
		who   app.Identity
		score int
	}{
		{alice, 2}, {alice, 9}, {alice, 7}, {bob, 5},
	} {
		if _, err := service.SaveScore(ctx, save.who, app.SaveScoreInput{Score: save.score, Total: 10}); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	entries, err := service.Leaderboard(ctx)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected one entry per user, got %d", len(entries))
	}
	if entries[0].UserID != "u1" || entries[0].Percentage != 90 {
		t.Fatalf("expected Alice leading with 90, got %+v", entries[0])
	}
	if entries[1].UserID != "u2" || entries[1].Percentage != 50 {
		t.Fatalf("expected Bob at 50, got %+v", entries[1])
	}
}

func TestSaveScoreBroadcastsLeaderboard(t *testing.T) {
	ctx := context.Background()
	service := newScoreService()

	updates, cancel := service.Subscribe()
	defer cancel()

	if _, err := service.SaveScore(ctx, alice, app.SaveScoreInput{Score: 4, Total: 5}); err != nil {
		t.Fatalf("save: %v", err)
	}

	entries := <-updates
	if len(entries) != 1 || entries[0].Percentage != 80 {
		t.Fatalf("expected broadcast with saved score, got %+v", entries)
	}
}
