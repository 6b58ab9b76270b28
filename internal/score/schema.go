package score

import "github.com/ysato/dokkai/internal/quiz"

// SchemaValid checks that the candidate output is well-formed: valid
// JSON (when textual) in one of the accepted shapes, with every question
// carrying category, question, options and answer fields of the right
// types.
type SchemaValid struct{}

func (SchemaValid) Name() string { return "schema_valid" }

func (SchemaValid) Score(input Input) Result {
	set, err := quiz.Normalize(input.Candidate)
	if err != nil {
		return fail("%v", err)
	}
	return pass("candidate is well-formed with %d questions", set.Len())
}
