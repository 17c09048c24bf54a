package memory

import (
	"context"
	"testing"
	"time"

	"intelliquiz/internal/domain"
)

func sampleQuestions() []domain.Question {
	return []domain.Question{
		{Text: "Q1", Options: []string{"a", "b", "c", "d"}, Correct: domain.MarkerFromIndex(0)},
	}
}

func TestQuizCacheReturnsCachedValue(t *testing.T) {
	cache := NewQuizCache(5 * time.Minute)
	calls := 0
	create := func(context.Context) ([]domain.Question, error) {
		calls++
		return sampleQuestions(), nil
	}

	for i := 0; i < 3; i++ {
		questions, err := cache.GetOrCreate(context.Background(), "k", create)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if len(questions) != 1 {
			t.Fatalf("expected 1 question, got %d", len(questions))
		}
	}
	if calls != 1 {
		t.Fatalf("expected a single create call, got %d", calls)
	}
}

func TestQuizCacheExpires(t *testing.T) {
	cache := NewQuizCache(time.Minute)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	cache.clock = func() time.Time { return now }

	calls := 0
	create := func(context.Context) ([]domain.Question, error) {
		calls++
		return sampleQuestions(), nil
	}

	if _, err := cache.GetOrCreate(context.Background(), "k", create); err != nil {
		t.Fatalf("get: %v", err)
	}

	// jitter adds at most 10%, so 2x TTL is safely past expiry
	now = now.Add(2 * time.Minute)
	if _, err := cache.GetOrCreate(context.Background(), "k", create); err != nil {
		t.Fatalf("get: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected regeneration after expiry, got %d calls", calls)
	}
}

func TestQuizCacheDoesNotCacheEmpty(t *testing.T) {
	cache := NewQuizCache(5 * time.Minute)
	calls := 0
	create := func(context.Context) ([]domain.Question, error) {
		calls++
		return nil, nil
	}

	for i := 0; i < 2; i++ {
		if _, err := cache.GetOrCreate(context.Background(), "k", create); err != nil {
			t.Fatalf("get: %v", err)
		}
	}
	if calls != 2 {
		t.Fatalf("expected empty results to bypass the cache, got %d calls", calls)
	}
}
