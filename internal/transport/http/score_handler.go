package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"intelliquiz/internal/app"
	"intelliquiz/internal/domain"
)

type saveScoreRequest struct {
	Score      flexInt `json:"score"`
	Total      flexInt `json:"total"`
	Topic      string  `json:"topic"`
	Difficulty string  `json:"difficulty"`
}

type saveScoreResponse struct {
	Message string `json:"message"`
	Saved   bool   `json:"saved"`
}

// handleSaveScore persists a score for an authenticated caller. Requests
// without a valid token still succeed without persisting, so a missing login
// never blocks the quiz flow.
func (s *Server) handleSaveScore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	defer r.Body.Close()

	var req saveScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	identity, ok := s.identity(r)
	if !ok {
		writeJSON(w, http.StatusOK, saveScoreResponse{Message: "Score not saved", Saved: false})
		return
	}

	_, err := s.scores.SaveScore(r.Context(), identity, app.SaveScoreInput{
		Score:      int(req.Score),
		Total:      int(req.Total),
		Topic:      req.Topic,
		Difficulty: domain.ParseDifficulty(req.Difficulty),
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidScore) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "score and total must satisfy 0 <= score <= total"})
			return
		}
		log.Printf("save score failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to save score"})
		return
	}
	writeJSON(w, http.StatusOK, saveScoreResponse{Message: "Score saved", Saved: true})
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	entries, err := s.scores.Leaderboard(r.Context())
	if err != nil {
		log.Printf("leaderboard failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to load leaderboard"})
		return
	}
	if entries == nil {
		entries = []domain.LeaderboardEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}
