package enricher

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// ExampleGenerator produces example sentences for a vocabulary word when
// the lesson itself has none. Examples are optional decoration; a nil
// generator or a failed call simply yields no examples.
type ExampleGenerator struct {
	llm    LLMClient
	logger *zap.Logger
}

func NewExampleGenerator(llm LLMClient, logger *zap.Logger) *ExampleGenerator {
	return &ExampleGenerator{llm: llm, logger: logger}
}

const exampleSystemPrompt = `You are a Mandarin Chinese teacher writing short example sentences for beginner and intermediate learners. Use simple grammar. Respond with JSON only.`

type exampleResponse struct {
	Sentences []string `json:"sentences"`
}

// Sentences asks the LLM for up to n short sentences using the word.
func (g *ExampleGenerator) Sentences(ctx context.Context, word string, n int) ([]string, error) {
	if g == nil || g.llm == nil {
		return nil, nil
	}

	userPrompt := fmt.Sprintf(`Write %d short example sentences in Chinese using the word "%s".

Respond with JSON only:
{"sentences": ["...", "..."]}`, n, word)

	resp, err := g.llm.Generate(ctx, exampleSystemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("example generation for %q: %w", word, err)
	}

	var parsed exampleResponse
	if err := json.Unmarshal([]byte(stripCodeFences(resp.Content)), &parsed); err != nil {
		return nil, fmt.Errorf("parse example response for %q: %w", word, err)
	}

	if len(parsed.Sentences) > n {
		parsed.Sentences = parsed.Sentences[:n]
	}
	return parsed.Sentences, nil
}
