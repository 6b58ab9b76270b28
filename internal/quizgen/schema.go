package quizgen

import "github.com/ysato/dokkai/internal/llm"

// questionProperties is the per-question object schema shared by both
// prompt styles.
var questionProperties = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"category": map[string]any{
			"type":        "string",
			"enum":        []any{"事実", "メインポイント", "暗示されたメッセージ", "文法や表現"},
			"description": "The question's category label",
		},
		"question": map[string]any{
			"type":        "string",
			"description": "The question text, in Japanese",
		},
		"options": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "string",
			},
			"description": "Exactly 4 plausible options, labeled implicitly A-D by position",
		},
		"answer": map[string]any{
			"type":        "string",
			"enum":        []any{"A", "B", "C", "D"},
			"description": "The letter of the correct option",
		},
	},
	"required":             []any{"category", "question", "options", "answer"},
	"additionalProperties": false,
}

// QuestionSetSchema is the structured-output schema for the direct style.
var QuestionSetSchema = &llm.Schema{
	Name:        "question-set",
	Description: "Reading comprehension questions for a Japanese passage",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":        "array",
				"items":       questionProperties,
				"description": "At least 3 questions, covering all three categories",
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// ReasonedQuestionSetSchema adds a reasoning field the model fills in
// before the questions. The reasoning is discarded after generation;
// it exists to force the model to analyze the passage first.
var ReasonedQuestionSetSchema = &llm.Schema{
	Name:        "reasoned-question-set",
	Description: "Reading comprehension questions with step-by-step analysis",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"reasoning": map[string]any{
				"type":        "string",
				"description": "Step-by-step analysis of the passage: key facts, implied messages, notable grammar",
			},
			"questions": map[string]any{
				"type":        "array",
				"items":       questionProperties,
				"description": "At least 3 questions, covering all three categories",
			},
		},
		"required":             []any{"reasoning", "questions"},
		"additionalProperties": false,
	},
}
