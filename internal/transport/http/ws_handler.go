package http

import (
	"log"
	"net/http"

	"intelliquiz/internal/app"
	"intelliquiz/internal/domain"

	"github.com/gorilla/websocket"
)

// WSHandler streams leaderboard snapshots to connected scoreboard pages.
type WSHandler struct {
	scores   *app.ScoreService
	upgrader websocket.Upgrader
}

func NewWSHandler(scores *app.ScoreService) *WSHandler {
	return &WSHandler{
		scores: scores,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

// ServeWS upgrades the connection, sends the current leaderboard, and then
// pushes a fresh snapshot every time a score is persisted.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	updates, cancel := h.scores.Subscribe()
	defer cancel()

	initial, err := h.scores.Leaderboard(r.Context())
	if err != nil {
		log.Printf("ws initial leaderboard failed: %v", err)
		return
	}
	if err := conn.WriteJSON(outboundMessage[[]domain.LeaderboardEntry]{Type: "leaderboard", Payload: initial}); err != nil {
		return
	}

	// Reader goroutine only detects the client going away.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case entries, ok := <-updates:
			if !ok {
				return
			}
			if err := conn.WriteJSON(outboundMessage[[]domain.LeaderboardEntry]{Type: "leaderboard", Payload: entries}); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		case <-done:
			return
		}
	}
}
