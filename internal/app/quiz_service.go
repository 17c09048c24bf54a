package app

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"intelliquiz/internal/domain"
	"intelliquiz/internal/quizgen"
)

// QuizCache caches generated question lists (in-memory, Redis). Implementations
// collapse concurrent misses for the same key into one generation call.
type QuizCache interface {
	GetOrCreate(ctx context.Context, key string, create func(context.Context) ([]domain.Question, error)) ([]domain.Question, error)
}

// QuizService fronts the generator with a short-lived cache so repeated
// requests for the same source do not burn completion calls.
type QuizService struct {
	generator *quizgen.Generator
	cache     QuizCache
}

func NewQuizService(generator *quizgen.Generator, cache QuizCache) *QuizService {
	return &QuizService{generator: generator, cache: cache}
}

// GenerateFromText produces questions from pasted text.
func (s *QuizService) GenerateFromText(ctx context.Context, req quizgen.Request) ([]domain.Question, error) {
	key := cacheKey("text", []byte(req.SourceText), req)
	return s.cache.GetOrCreate(ctx, key, func(ctx context.Context) ([]domain.Question, error) {
		return s.generator.FromText(ctx, req)
	})
}

// GenerateFromDocument produces questions from an uploaded document.
func (s *QuizService) GenerateFromDocument(ctx context.Context, data []byte, req quizgen.Request) ([]domain.Question, error) {
	key := cacheKey("doc", data, req)
	return s.cache.GetOrCreate(ctx, key, func(ctx context.Context) ([]domain.Question, error) {
		return s.generator.FromDocument(ctx, data, req)
	})
}

func cacheKey(kind string, source []byte, req quizgen.Request) string {
	digest := sha256.Sum256(source)
	return fmt.Sprintf("quiz:%s:%s:%d:%s", kind, hex.EncodeToString(digest[:8]), req.QuestionCount, req.Difficulty)
}
