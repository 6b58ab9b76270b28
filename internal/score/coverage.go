package score

import (
	"strings"

	"github.com/ysato/dokkai/internal/quiz"
)

// CategoryCoverage checks that the question set covers all three
// category buckets: facts, main point / implied message, and grammar /
// expression. Raw labels are resolved through the synonym table, so
// alternate spellings of the same bucket all count.
type CategoryCoverage struct{}

func (CategoryCoverage) Name() string { return "category_coverage" }

func (CategoryCoverage) Score(input Input) Result {
	set, err := quiz.Normalize(input.Candidate)
	if err != nil {
		return fail("%v", err)
	}

	covered, categories := set.Coverage()

	var missing []string
	for _, b := range quiz.AllBuckets() {
		if !covered[b] {
			missing = append(missing, string(b))
		}
	}

	// The missing and observed lists are part of the rationale on pass
	// as well, so run summaries stay auditable.
	observed := "[" + strings.Join(categories, " ") + "]"
	if len(missing) == 0 {
		return pass("missing buckets: []; observed categories: %s", observed)
	}
	return fail("missing buckets: [%s]; observed categories: %s",
		strings.Join(missing, " "), observed)
}
