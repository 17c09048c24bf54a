package openai

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Completer sends a single user-role prompt to the OpenAI chat completions
// API and returns the raw text. One call per incoming request.
type Completer struct {
	model       llms.Model
	temperature float64
}

func NewCompleter(apiKey, model string, temperature float64) (*Completer, error) {
	llm, err := openai.New(openai.WithToken(apiKey), openai.WithModel(model))
	if err != nil {
		return nil, fmt.Errorf("init openai client: %w", err)
	}
	return &Completer{model: llm, temperature: temperature}, nil
}

func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, c.model, prompt, llms.WithTemperature(c.temperature))
}
