package http

import (
	"io/fs"
	"net/http"

	"intelliquiz/internal/app"

	"github.com/go-playground/validator/v10"
)

const defaultMaxUploadBytes = 10 << 20 // 10 MB

// Server bundles the HTTP handlers around the application services.
type Server struct {
	auth           *app.AuthService
	quizzes        *app.QuizService
	scores         *app.ScoreService
	validate       *validator.Validate
	maxUploadBytes int64
}

func NewServer(auth *app.AuthService, quizzes *app.QuizService, scores *app.ScoreService, maxUploadBytes int64) *Server {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}
	return &Server{
		auth:           auth,
		quizzes:        quizzes,
		scores:         scores,
		validate:       validator.New(),
		maxUploadBytes: maxUploadBytes,
	}
}

// Routes wires all endpoints onto a mux. staticAssets may be nil to skip
// serving the frontend.
func (s *Server) Routes(staticAssets fs.FS) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	mux.HandleFunc("/auth/signup", s.handleSignup)
	mux.HandleFunc("/auth/login", s.handleLogin)

	mux.HandleFunc("/api/generate-from-text", s.handleGenerateFromText)
	mux.HandleFunc("/api/generate-from-pdf", s.handleGenerateFromPDF)
	mux.HandleFunc("/api/grade", s.handleGrade)

	mux.HandleFunc("/scoreboard/save", s.handleSaveScore)
	mux.HandleFunc("/scoreboard/all", s.handleLeaderboard)

	mux.HandleFunc("/ws", NewWSHandler(s.scores).ServeWS)

	if staticAssets != nil {
		mux.Handle("/", http.FileServer(http.FS(staticAssets)))
	}
	return mux
}

// identity extracts and verifies the bearer token, if any.
func (s *Server) identity(r *http.Request) (app.Identity, bool) {
	token := bearerToken(r)
	if token == "" {
		return app.Identity{}, false
	}
	identity, err := s.auth.VerifyToken(token)
	if err != nil {
		return app.Identity{}, false
	}
	return identity, true
}
