package app

import (
	"sort"

	"intelliquiz/internal/domain"

	"github.com/samber/lo"
)

// AggregateLeaderboard reduces all persisted score records to the best entry
// per user, ordered by percentage descending. Within one user, ties on
// percentage keep the earliest record; across users, equal percentages are
// ordered by earliest CreatedAt, then user id, so the ranking is
// deterministic. Pure reduction over the input.
func AggregateLeaderboard(records []domain.ScoreRecord) []domain.LeaderboardEntry {
	byUser := lo.GroupBy(records, func(r domain.ScoreRecord) string { return r.UserID })

	entries := lo.MapToSlice(byUser, func(_ string, userRecords []domain.ScoreRecord) domain.LeaderboardEntry {
		best := userRecords[0]
		for _, r := range userRecords[1:] {
			if r.Percentage > best.Percentage ||
				(r.Percentage == best.Percentage && r.CreatedAt.Before(best.CreatedAt)) {
				best = r
			}
		}
		return domain.LeaderboardEntry{
			UserID:     best.UserID,
			UserName:   best.UserName,
			Score:      best.Score,
			Total:      best.Total,
			Percentage: best.Percentage,
			CreatedAt:  best.CreatedAt,
		}
	})

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Percentage != entries[j].Percentage {
			return entries[i].Percentage > entries[j].Percentage
		}
		if !entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].CreatedAt.Before(entries[j].CreatedAt)
		}
		return entries[i].UserID < entries[j].UserID
	})
	return entries
}
