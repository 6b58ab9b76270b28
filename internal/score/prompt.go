package score

import (
	"fmt"
	"strings"

	"github.com/ysato/dokkai/internal/quiz"
)

const judgeSystemPrompt = `You are reviewing machine-generated Japanese reading comprehension questions for quality. You will be given a question set and, when relevant, the source passage the questions were generated from. Judge strictly: when in doubt, fail the check and explain why.`

func buildRelevancePrompt(set *quiz.QuestionSet, sourceText string) string {
	var b strings.Builder
	b.WriteString("Source passage:\n")
	b.WriteString(sourceText)
	b.WriteString("\n\n")
	writeQuestions(&b, set)
	b.WriteString(`
Check: is every question answerable from, and clearly about, the source passage? A question that relies on outside knowledge or refers to content not in the passage fails this check.`)
	return b.String()
}

func buildOptionQualityPrompt(set *quiz.QuestionSet, sourceText string) string {
	var b strings.Builder
	if sourceText != "" {
		b.WriteString("Source passage:\n")
		b.WriteString(sourceText)
		b.WriteString("\n\n")
	}
	writeQuestions(&b, set)
	b.WriteString(`
Check: for every question, are all options plausible answers for a learner, and is each option clearly distinct in meaning from the others? Options that are trivially wrong, nonsensical, or near-paraphrases of each other fail this check.`)
	return b.String()
}

func buildCorrectnessPrompt(set *quiz.QuestionSet, sourceText string) string {
	var b strings.Builder
	b.WriteString("Source passage:\n")
	b.WriteString(sourceText)
	b.WriteString("\n\n")
	writeQuestions(&b, set)
	b.WriteString(`
Check: for every question, is the marked answer the one option that is actually correct according to the source passage? If any other option is equally or more correct, this check fails.`)
	return b.String()
}

func writeQuestions(b *strings.Builder, set *quiz.QuestionSet) {
	b.WriteString("Question set:\n")
	for i, q := range set.Questions {
		fmt.Fprintf(b, "%d. [%s] %s\n", i+1, q.Category, q.Text)
		for j, o := range q.Options {
			fmt.Fprintf(b, "   %c. %s\n", 'A'+j, o)
		}
		fmt.Fprintf(b, "   Answer: %s\n", q.Answer)
	}
}
