package quizgen

import "context"

// Generator produces quiz question batches using an LLM provider.
type Generator interface {
	// Generate produces the full question batch for one quiz request.
	// Returns questions with repaired explanation mappings, or an error.
	// No partial batches are returned and no retry is performed here.
	Generate(ctx context.Context, req Request) ([]Question, error)
}
