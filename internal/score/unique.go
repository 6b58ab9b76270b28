package score

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ysato/dokkai/internal/quiz"
)

// OptionsUnique checks that no question repeats an option. Comparison
// is exact, case-sensitive string equality. Every offending question is
// reported, not just the first.
type OptionsUnique struct{}

func (OptionsUnique) Name() string { return "options_unique" }

func (OptionsUnique) Score(input Input) Result {
	set, err := quiz.Normalize(input.Candidate)
	if err != nil {
		return fail("%v", err)
	}

	var issues []string
	for i, q := range set.Questions {
		if dups := duplicateOptions(q.Options); len(dups) > 0 {
			issues = append(issues, fmt.Sprintf("question %d has duplicate options: [%s]",
				i, strings.Join(dups, " ")))
		}
	}

	if len(issues) > 0 {
		return fail("%s", strings.Join(issues, "; "))
	}
	return pass("all %d questions have unique options", set.Len())
}

// duplicateOptions returns the sorted set of option values that appear
// more than once.
func duplicateOptions(options []string) []string {
	counts := make(map[string]int, len(options))
	for _, o := range options {
		counts[o]++
	}

	var dups []string
	for o, n := range counts {
		if n > 1 {
			dups = append(dups, o)
		}
	}
	sort.Strings(dups)
	return dups
}
