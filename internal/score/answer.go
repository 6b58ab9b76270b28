package score

import (
	"fmt"
	"strings"

	"github.com/ysato/dokkai/internal/quiz"
)

// AnswerValid checks that every question's answer is one of the letters
// A-D and that the letter's zero-based index points at an existing
// option. Every offending question is reported, not just the first.
type AnswerValid struct{}

func (AnswerValid) Name() string { return "answer_valid" }

func (AnswerValid) Score(input Input) Result {
	set, err := quiz.Normalize(input.Candidate)
	if err != nil {
		return fail("%v", err)
	}

	var issues []string
	for i, q := range set.Questions {
		idx, ok := quiz.AnswerIndex(q.Answer)
		if !ok {
			issues = append(issues, fmt.Sprintf("question %d: answer %q is not A, B, C or D", i, q.Answer))
			continue
		}
		if idx >= len(q.Options) {
			issues = append(issues, fmt.Sprintf(
				"question %d: answer %q points at option %d but only %d options exist",
				i, q.Answer, idx+1, len(q.Options)))
		}
	}

	if len(issues) > 0 {
		return fail("%s", strings.Join(issues, "; "))
	}
	return pass("all %d questions have valid answers", set.Len())
}
