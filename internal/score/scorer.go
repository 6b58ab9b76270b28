package score

import "fmt"

// Input carries one candidate output into a scorer. Candidate is the
// raw, untrusted value returned by a generator: a typed QuestionSet, a
// decoded JSON value, or JSON text. SourceText is the passage the
// questions were generated from; only the judge scorers use it.
type Input struct {
	Candidate  any
	SourceText string
}

// Result is one scorer's verdict on one candidate.
type Result struct {
	Pass      bool
	Rationale string
}

// Scorer computes a single independent pass/fail judgment with a
// human-readable rationale. Implementations must be total: any input,
// however malformed, produces a Result — a scorer never panics and
// never returns an error. They must also be stateless and safe for
// concurrent use, so callers can run them in any order or in parallel
// across samples.
type Scorer interface {
	// Name returns the stable identifier for this scorer, used as the
	// metric name in run summaries, e.g. "schema_valid".
	Name() string

	Score(input Input) Result
}

func pass(format string, args ...any) Result {
	return Result{Pass: true, Rationale: fmt.Sprintf(format, args...)}
}

func fail(format string, args ...any) Result {
	return Result{Pass: false, Rationale: fmt.Sprintf(format, args...)}
}
