package quizgen

import (
	"fmt"
	"strings"
)

const directSystemPrompt = `You are a Japanese language teacher creating reading comprehension questions for JLPT test preparation.

Create questions that test:
1. 事実 (Facts): Explicit information from the text
2. メインポイント (Main points) or 暗示されたメッセージ (Implied messages): Inference and understanding
3. 文法や表現 (Grammar and expressions): Language usage

Use exactly one of these labels in each question's "category" field: 事実, メインポイント, 暗示されたメッセージ, 文法や表現.

Rules:
- Generate at least 3 questions, with all three categories represented.
- Each question must have exactly 4 plausible options. The "answer" field is the letter (A, B, C, or D) of the correct option by position.
- Exactly one option is correct. Distractors should be plausible misreadings of the passage, not random statements.
- Write questions and options in Japanese, appropriate for Japanese language learners.
- Every question must be answerable from the passage alone.`

const reasonedSystemPrompt = directSystemPrompt + `

Before writing the questions, analyze the passage step by step in the "reasoning" field: list the key facts, the main point or implied message, and any notable grammar or expressions. Base every question on that analysis.`

// buildUserMessage constructs the user message carrying the passage.
func buildUserMessage(input Input) string {
	var b strings.Builder
	b.WriteString("Passage:\n")
	b.WriteString(strings.TrimSpace(input.Passage))
	fmt.Fprintf(&b, "\n\nGenerate the reading comprehension questions for this passage.")
	return b.String()
}
