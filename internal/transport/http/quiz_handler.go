package http

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"intelliquiz/internal/app"
	"intelliquiz/internal/domain"
	"intelliquiz/internal/quizgen"
)

type generateFromTextRequest struct {
	Topic        string  `json:"topic"`
	NumQuestions flexInt `json:"num_questions"`
	Difficulty   string  `json:"difficulty"`
}

type questionsResponse struct {
	Questions []domain.Question `json:"questions"`
}

func (s *Server) handleGenerateFromText(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	defer r.Body.Close()

	var req generateFromTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "topic is required"})
		return
	}

	questions, err := s.quizzes.GenerateFromText(r.Context(), quizgen.Request{
		SourceText:    req.Topic,
		QuestionCount: int(req.NumQuestions),
		Difficulty:    domain.ParseDifficulty(req.Difficulty),
	})
	if err != nil {
		writeGenerationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, questionsResponse{Questions: emptyIfNil(questions)})
}

func (s *Server) handleGenerateFromPDF(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "file is missing or exceeds the upload limit"})
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "file is required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "could not read uploaded file"})
		return
	}

	count := 0
	if raw := r.FormValue("num_questions"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			count = n
		}
	}

	questions, err := s.quizzes.GenerateFromDocument(r.Context(), data, quizgen.Request{
		QuestionCount: count,
		Difficulty:    domain.ParseDifficulty(r.FormValue("difficulty")),
	})
	if err != nil {
		writeGenerationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, questionsResponse{Questions: emptyIfNil(questions)})
}

type gradeRequest struct {
	Questions []domain.Question `json:"questions"`
	Answers   []int             `json:"answers"`
}

type gradeResponse struct {
	app.GradeResult
	AnswerKey []int `json:"answerKey"`
}

// handleGrade resolves the answer markers server-side and grades the attempt.
func (s *Server) handleGrade(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	defer r.Body.Close()

	var req gradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if len(req.Questions) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "questions are required"})
		return
	}

	key := app.AnswerKey(req.Questions)
	writeJSON(w, http.StatusOK, gradeResponse{
		GradeResult: app.Grade(key, req.Answers),
		AnswerKey:   key,
	})
}

// writeGenerationError maps orchestrator failures onto the one generic
// client-facing message; detail stays in the logs.
func writeGenerationError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrGenerationFailed) {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Error generating quiz"})
		return
	}
	log.Printf("unexpected generation error: %v", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Error generating quiz"})
}

func emptyIfNil(questions []domain.Question) []domain.Question {
	if questions == nil {
		return []domain.Question{}
	}
	return questions
}
