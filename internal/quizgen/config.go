package quizgen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for the LLM response. Quiz batches
	// are large, so this scales with the expected question count.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// ExtendedKinds enables the chart-interpretation and
	// output-interpretation question kinds in addition to the
	// calculation/conceptual baseline.
	ExtendedKinds bool
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   16384,
		Temperature: 0.7,
	}
}
