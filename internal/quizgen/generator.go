package quizgen

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"intelliquiz/internal/domain"
)

// fallbackSource replaces extracted document text that turned out empty or
// unreadable, so a bad upload still produces some quiz.
const fallbackSource = "The document has little readable content. Generate conceptual questions about studying and reading comprehension."

// Completer is the external completion-service call. One call per request,
// no fan-out.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// TextExtractor pulls plain text out of an uploaded document.
type TextExtractor interface {
	ExtractText(data []byte) (string, error)
}

// Request carries the generation parameters shared by both entry points.
type Request struct {
	SourceText    string
	QuestionCount int
	Difficulty    domain.Difficulty
}

// Generator composes prompt construction, the completion call, and response
// normalization into the two generation operations.
type Generator struct {
	completer Completer
	extractor TextExtractor
	timeout   time.Duration
}

func NewGenerator(completer Completer, extractor TextExtractor, timeout time.Duration) *Generator {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Generator{completer: completer, extractor: extractor, timeout: timeout}
}

// FromText generates questions from pasted text. An empty question list is a
// valid degraded outcome; only a failed completion call is an error.
func (g *Generator) FromText(ctx context.Context, req Request) ([]domain.Question, error) {
	prompt := BuildPrompt(req.SourceText, req.QuestionCount, req.Difficulty)

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	raw, err := g.completer.Complete(ctx, prompt)
	if err != nil {
		log.Printf("completion call failed: %v", err)
		return nil, fmt.Errorf("%w: completion call: %v", domain.ErrGenerationFailed, err)
	}

	questions := Normalize(raw)
	if len(questions) == 0 {
		log.Printf("completion response yielded no questions, raw: %q", raw)
	}
	return questions, nil
}

// FromDocument extracts text from the uploaded document and generates
// questions from it. Extraction failures and empty extractions both degrade
// to a fixed fallback source text instead of rejecting the request.
func (g *Generator) FromDocument(ctx context.Context, data []byte, req Request) ([]domain.Question, error) {
	req.SourceText = g.extractSource(data)
	return g.FromText(ctx, req)
}

func (g *Generator) extractSource(data []byte) string {
	text, err := g.extractor.ExtractText(data)
	if err != nil {
		log.Printf("document text extraction failed, using fallback: %v", err)
		return fallbackSource
	}
	if strings.TrimSpace(text) == "" {
		log.Printf("document yielded no readable text, using fallback")
		return fallbackSource
	}
	return text
}
