package questions

import "github.com/abhisek/mindweave/internal/llm"

// QuestionsSchema defines the JSON schema for question generation responses.
var QuestionsSchema = &llm.Schema{
	Name:        "node-questions",
	Description: "A set of open-ended questions testing understanding of a topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":        "array",
				"minItems":    1,
				"maxItems":    3,
				"description": "1-3 open-ended questions, ordered roughly by difficulty",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{
							"type":        "string",
							"description": "The question shown to the learner",
						},
					},
					"required":             []any{"text"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// GradingSchema defines the JSON schema for answer evaluation responses.
var GradingSchema = &llm.Schema{
	Name:        "answer-grading",
	Description: "An evaluation of a learner's free-text answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"feedback": map[string]any{
				"type":        "string",
				"description": "Detailed feedback on strengths, weaknesses, and how to improve",
			},
			"grade": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "Numeric grade from 0 (no understanding) to 100 (excellent)",
			},
			"passed": map[string]any{
				"type":        "boolean",
				"description": "True when the grade is 80 or above",
			},
		},
		"required":             []any{"feedback", "grade", "passed"},
		"additionalProperties": false,
	},
}
