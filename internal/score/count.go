package score

import "github.com/ysato/dokkai/internal/quiz"

// SufficientCount checks that the set contains at least Min questions.
// A complete quiz needs one question per bucket, hence the default of 3.
type SufficientCount struct {
	Min int
}

func (SufficientCount) Name() string { return "sufficient_count" }

func (s SufficientCount) Score(input Input) Result {
	threshold := s.Min
	if threshold <= 0 {
		threshold = DefaultMinQuestions
	}

	set, err := quiz.Normalize(input.Candidate)
	if err != nil {
		return fail("%v", err)
	}

	if set.Len() < threshold {
		return fail("only %d questions generated, need at least %d", set.Len(), threshold)
	}
	return pass("%d questions generated (minimum %d)", set.Len(), threshold)
}
