package questions

// Config controls question generation and grading.
type Config struct {
	// MaxQuestions is the upper bound on questions generated per node.
	MaxQuestions int

	// PassingGrade is the minimum grade (0-100) that counts as a pass.
	PassingGrade int

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxQuestions: 3,
		PassingGrade: 80,
		MaxTokens:    1024,
		Temperature:  0.7,
	}
}
