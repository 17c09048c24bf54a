package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"intelliquiz/internal/domain"

	"github.com/google/uuid"
)

// ScoreRepository abstracts how score records are stored.
type ScoreRepository interface {
	CreateScore(ctx context.Context, record domain.ScoreRecord) error
	ListScores(ctx context.Context) ([]domain.ScoreRecord, error)
}

// SaveScoreInput is the client-supplied part of a score submission. The
// percentage is never taken from the client.
type SaveScoreInput struct {
	Score      int
	Total      int
	Topic      string
	Difficulty domain.Difficulty
}

// ScoreService persists completed attempts and serves the leaderboard.
type ScoreService struct {
	scores ScoreRepository
	hub    *LeaderboardHub
	now    func() time.Time
}

func NewScoreService(scores ScoreRepository, hub *LeaderboardHub) *ScoreService {
	return &ScoreService{scores: scores, hub: hub, now: time.Now}
}

// SaveScore creates one immutable score record for the verified identity,
// recomputing the percentage server-side.
func (s *ScoreService) SaveScore(ctx context.Context, identity Identity, input SaveScoreInput) (domain.ScoreRecord, error) {
	if input.Score < 0 || input.Total < 0 || input.Score > input.Total {
		return domain.ScoreRecord{}, domain.ErrInvalidScore
	}

	record := domain.ScoreRecord{
		ID:         uuid.NewString(),
		UserID:     identity.UserID,
		UserName:   identity.Name,
		Score:      input.Score,
		Total:      input.Total,
		Percentage: Percentage(input.Score, input.Total),
		Topic:      input.Topic,
		Difficulty: input.Difficulty,
		CreatedAt:  s.now(),
	}
	if record.Difficulty == "" {
		record.Difficulty = domain.DifficultyMedium
	}

	if err := s.scores.CreateScore(ctx, record); err != nil {
		return domain.ScoreRecord{}, fmt.Errorf("create score: %w", err)
	}

	s.broadcastLeaderboard(ctx)
	return record, nil
}

// Leaderboard returns the best record per user, ranked by percentage.
func (s *ScoreService) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	records, err := s.scores.ListScores(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}
	return AggregateLeaderboard(records), nil
}

// Subscribe exposes the hub for transports that stream leaderboard updates.
func (s *ScoreService) Subscribe() (<-chan []domain.LeaderboardEntry, func()) {
	return s.hub.Subscribe()
}

// broadcastLeaderboard is best-effort: a failed re-read only costs streaming
// clients one update.
func (s *ScoreService) broadcastLeaderboard(ctx context.Context) {
	if s.hub == nil {
		return
	}
	entries, err := s.Leaderboard(ctx)
	if err != nil {
		log.Printf("leaderboard broadcast skipped: %v", err)
		return
	}
	s.hub.Broadcast(entries)
}
