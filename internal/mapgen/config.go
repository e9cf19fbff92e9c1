package mapgen

// Config controls map generation.
type Config struct {
	// MaxDepth is how many levels the generated map has, root included.
	// Valid range: 1-5.
	MaxDepth int

	// MaxChildren is how many children each expanded node gets.
	// Valid range: 2-6.
	MaxChildren int

	// MaxRetries is how many extra generation attempts a node gets
	// when the LLM returns nothing usable.
	MaxRetries int

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxDepth:    3,
		MaxChildren: 4,
		MaxRetries:  2,
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}

// Clamp forces depth and children back into their valid ranges,
// substituting defaults for unset values.
func (c Config) Clamp() Config {
	if c.MaxDepth == 0 {
		c.MaxDepth = 3
	}
	if c.MaxDepth < 1 {
		c.MaxDepth = 1
	}
	if c.MaxDepth > 5 {
		c.MaxDepth = 5
	}

	if c.MaxChildren == 0 {
		c.MaxChildren = 4
	}
	if c.MaxChildren < 2 {
		c.MaxChildren = 2
	}
	if c.MaxChildren > 6 {
		c.MaxChildren = 6
	}

	return c
}
