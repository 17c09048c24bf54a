package memory

import (
	"context"
	"sort"
	"sync"

	"intelliquiz/internal/domain"
)

// ScoreRepository is an in-memory implementation of app.ScoreRepository.
type ScoreRepository struct {
	mu      sync.RWMutex
	records []domain.ScoreRecord
}

func NewScoreRepository() *ScoreRepository {
	return &ScoreRepository{}
}

func (r *ScoreRepository) CreateScore(_ context.Context, record domain.ScoreRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
	return nil
}

// ListScores returns a copy ordered by percentage descending, then earliest
// createdAt, matching the Postgres query ordering.
func (r *ScoreRepository) ListScores(_ context.Context) ([]domain.ScoreRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.ScoreRecord, len(r.records))
	copy(out, r.records)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Percentage != out[j].Percentage {
			return out[i].Percentage > out[j].Percentage
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
