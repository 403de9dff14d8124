package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"bioquiz/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// Generate produces the full question batch for one quiz request.
func (g *LLMGenerator) Generate(ctx context.Context, req Request) ([]Question, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid quiz request: %w", err)
	}

	ctx = llm.WithPurpose(ctx, "quiz-gen")

	comp := Compose(req.Count, g.config.ExtendedKinds)
	userMsg := buildUserMessage(req, comp)

	llmReq := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      BatchSchema(req.Count, g.config.ExtendedKinds),
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, llmReq)
	if err != nil {
		return nil, fmt.Errorf("quiz generation failed: %w", err)
	}

	var questions []Question
	if err := json.Unmarshal(resp.Content, &questions); err != nil {
		return nil, fmt.Errorf("quiz generation failed: parsing response: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("quiz generation failed: provider returned no questions")
	}

	for i := range questions {
		repairExplanation(&questions[i])
	}

	return questions, nil
}
