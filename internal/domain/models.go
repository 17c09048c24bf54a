package domain

import "time"

// Difficulty is the requested (or derived) difficulty tier of a quiz.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty maps free-form client input onto a known tier, falling back to medium.
func ParseDifficulty(raw string) Difficulty {
	switch Difficulty(raw) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(raw)
	default:
		return DifficultyMedium
	}
}

// NextDifficulty derives the advisory tier for the following quiz
// from the percentage scored on the current one.
func NextDifficulty(percentage int) Difficulty {
	switch {
	case percentage >= 80:
		return DifficultyHard
	case percentage >= 50:
		return DifficultyMedium
	default:
		return DifficultyEasy
	}
}

// Question is one generated multiple-choice item. Correct carries the raw
// correctness signal from the completion service; it is resolved to an option
// index lazily via AnswerMarker.Resolve.
type Question struct {
	Text        string       `json:"question"`
	Options     []string     `json:"options"`
	Correct     AnswerMarker `json:"correct"`
	Explanation string       `json:"explanation"`
}

// User is a registered account. PasswordHash is a bcrypt digest and never
// leaves the server.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ScoreRecord is one persisted quiz result. Percentage is always recomputed
// server-side from Score and Total. UserName is denormalized at save time so
// the leaderboard needs no join.
type ScoreRecord struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	UserName   string     `json:"userName"`
	Score      int        `json:"score"`
	Total      int        `json:"total"`
	Percentage int        `json:"percentage"`
	Topic      string     `json:"topic,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// LeaderboardEntry is the best persisted result for one user.
type LeaderboardEntry struct {
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName"`
	Score      int       `json:"score"`
	Total      int       `json:"total"`
	Percentage int       `json:"percentage"`
	CreatedAt  time.Time `json:"createdAt"`
}
