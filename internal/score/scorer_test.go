package score

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ysato/dokkai/internal/quiz"
)

func questionJSON(category, text, answer string, options []string) string {
	var opts []string
	for _, o := range options {
		opts = append(opts, fmt.Sprintf("%q", o))
	}
	return fmt.Sprintf(`{"category": %q, "question": %q, "options": [%s], "answer": %q}`,
		category, text, strings.Join(opts, ", "), answer)
}

func fullSetJSON() string {
	qs := []string{
		questionJSON("事実", "話者は何をしましたか？", "A", []string{"散歩した", "寝た", "働いた", "食べた"}),
		questionJSON("メインポイント", "この文の主旨は？", "B", []string{"天気", "散歩の楽しさ", "桜", "公園"}),
		questionJSON("文法や表現", "「ので」の働きは？", "C", []string{"逆接", "並列", "理由", "仮定"}),
	}
	return `{"questions": [` + strings.Join(qs, ", ") + `]}`
}

func TestRuleScorersPassOnFullSet(t *testing.T) {
	in := Input{Candidate: fullSetJSON()}
	for _, s := range Suite(DefaultConfig(), nil) {
		res := s.Score(in)
		if !res.Pass {
			t.Errorf("%s failed on a valid set: %s", s.Name(), res.Rationale)
		}
		if res.Rationale == "" {
			t.Errorf("%s returned an empty rationale", s.Name())
		}
	}
}

func TestScorersAreIdempotent(t *testing.T) {
	inputs := []Input{
		{Candidate: fullSetJSON()},
		{Candidate: "not json"},
		{Candidate: nil},
	}
	for _, s := range Suite(DefaultConfig(), nil) {
		for _, in := range inputs {
			first := s.Score(in)
			second := s.Score(in)
			if first != second {
				t.Errorf("%s is not idempotent: %+v then %+v", s.Name(), first, second)
			}
		}
	}
}

func TestScorersAreTotal(t *testing.T) {
	// Every scorer must produce a Result for any input, however broken.
	inputs := []any{
		nil,
		42,
		"not json",
		"",
		`{"questions": "oops"}`,
		`[1, 2, 3]`,
		map[string]any{"something": "else"},
		(*quiz.QuestionSet)(nil),
	}
	for _, s := range Suite(DefaultConfig(), nil) {
		for _, candidate := range inputs {
			res := s.Score(Input{Candidate: candidate})
			if res.Pass {
				t.Errorf("%s passed malformed input %#v", s.Name(), candidate)
			}
			if res.Rationale == "" {
				t.Errorf("%s returned empty rationale for %#v", s.Name(), candidate)
			}
		}
	}
}

func TestSchemaValidShapeTolerance(t *testing.T) {
	q := questionJSON("事実", "質問", "A", []string{"a", "b", "c", "d"})
	wrapped := `{"questions": [` + q + `]}`
	bare := `[` + q + `]`

	s := SchemaValid{}
	for name, candidate := range map[string]string{"wrapped": wrapped, "bare": bare} {
		res := s.Score(Input{Candidate: candidate})
		if !res.Pass {
			t.Errorf("%s shape rejected: %s", name, res.Rationale)
		}
	}
}

func TestSchemaValidNotJSON(t *testing.T) {
	res := SchemaValid{}.Score(Input{Candidate: "not json"})
	if res.Pass {
		t.Fatal("non-JSON text should fail")
	}
	if !strings.Contains(res.Rationale, "not valid JSON") {
		t.Errorf("rationale should mention the parse failure: %s", res.Rationale)
	}
}

func TestCategoryCoverageSynonyms(t *testing.T) {
	full := [][]string{
		{"事実", "暗示されたメッセージ", "文法や表現"},
		{"事実", "メインポイント", "文法"},
	}
	for _, categories := range full {
		var qs []string
		for _, c := range categories {
			qs = append(qs, questionJSON(c, "質問", "A", []string{"a", "b", "c", "d"}))
		}
		res := CategoryCoverage{}.Score(Input{Candidate: `[` + strings.Join(qs, ",") + `]`})
		if !res.Pass {
			t.Errorf("%v should cover all buckets: %s", categories, res.Rationale)
		}
	}
}

func TestCategoryCoverageRejectsCompoundMessageLabel(t *testing.T) {
	// The bucket's display name joins the two accepted spellings, but only
	// メインポイント and 暗示されたメッセージ count as the message category.
	qs := []string{
		questionJSON("事実", "質問1", "A", []string{"a", "b", "c", "d"}),
		questionJSON("メインポイント/暗示されたメッセージ", "質問2", "A", []string{"a", "b", "c", "d"}),
		questionJSON("文法や表現", "質問3", "A", []string{"a", "b", "c", "d"}),
	}
	res := CategoryCoverage{}.Score(Input{Candidate: `[` + strings.Join(qs, ",") + `]`})
	if res.Pass {
		t.Fatal("compound category label should not satisfy the message bucket")
	}
	if !strings.Contains(res.Rationale, string(quiz.BucketMessage)) {
		t.Errorf("rationale should name the missing message bucket: %s", res.Rationale)
	}
}

func TestCategoryCoverageMissingBuckets(t *testing.T) {
	qs := []string{
		questionJSON("事実", "質問1", "A", []string{"a", "b", "c", "d"}),
		questionJSON("事実", "質問2", "B", []string{"a", "b", "c", "d"}),
	}
	res := CategoryCoverage{}.Score(Input{Candidate: `[` + strings.Join(qs, ",") + `]`})
	if res.Pass {
		t.Fatal("facts-only set should fail coverage")
	}
	if !strings.Contains(res.Rationale, string(quiz.BucketMessage)) ||
		!strings.Contains(res.Rationale, string(quiz.BucketGrammar)) {
		t.Errorf("rationale should name both missing buckets: %s", res.Rationale)
	}
	if !strings.Contains(res.Rationale, "事実") {
		t.Errorf("rationale should list observed categories: %s", res.Rationale)
	}
}

func TestOptionsUniqueReportsEveryOffender(t *testing.T) {
	qs := []string{
		questionJSON("事実", "質問1", "A", []string{"x", "x", "c", "d"}),
		questionJSON("文法", "質問2", "A", []string{"a", "b", "c", "d"}),
		questionJSON("表現", "質問3", "A", []string{"y", "b", "y", "y"}),
	}
	res := OptionsUnique{}.Score(Input{Candidate: `[` + strings.Join(qs, ",") + `]`})
	if res.Pass {
		t.Fatal("duplicate options should fail")
	}
	if !strings.Contains(res.Rationale, "question 0") || !strings.Contains(res.Rationale, "question 2") {
		t.Errorf("both offending questions should be reported: %s", res.Rationale)
	}
	if strings.Contains(res.Rationale, "question 1") {
		t.Errorf("clean question should not be reported: %s", res.Rationale)
	}
}

func TestAnswerValidLetterAndRange(t *testing.T) {
	cases := []struct {
		name    string
		answer  string
		options []string
		pass    bool
	}{
		{"C with two options", "C", []string{"a", "b"}, false},
		{"B with two options", "B", []string{"a", "b"}, true},
		{"D with four options", "D", []string{"a", "b", "c", "d"}, true},
		{"E is out of the alphabet", "E", []string{"a", "b", "c", "d"}, false},
		{"lowercase rejected", "a", []string{"a", "b", "c", "d"}, false},
	}
	for _, c := range cases {
		candidate := `[` + questionJSON("事実", "質問", c.answer, c.options) + `]`
		res := AnswerValid{}.Score(Input{Candidate: candidate})
		if res.Pass != c.pass {
			t.Errorf("%s: pass = %t, want %t (%s)", c.name, res.Pass, c.pass, res.Rationale)
		}
	}
}

func TestAnswerValidReportsEveryOffender(t *testing.T) {
	qs := []string{
		questionJSON("事実", "質問1", "Z", []string{"a", "b", "c", "d"}),
		questionJSON("文法", "質問2", "D", []string{"a", "b"}),
	}
	res := AnswerValid{}.Score(Input{Candidate: `[` + strings.Join(qs, ",") + `]`})
	if res.Pass {
		t.Fatal("invalid answers should fail")
	}
	if !strings.Contains(res.Rationale, "question 0") || !strings.Contains(res.Rationale, "question 1") {
		t.Errorf("both offending questions should be reported: %s", res.Rationale)
	}
}

func TestSufficientCountBoundary(t *testing.T) {
	makeSet := func(n int) string {
		var qs []string
		for i := 0; i < n; i++ {
			qs = append(qs, questionJSON("事実", fmt.Sprintf("質問%d", i), "A", []string{"a", "b", "c", "d"}))
		}
		return `{"questions": [` + strings.Join(qs, ",") + `]}`
	}

	s := SufficientCount{Min: 3}
	for n, want := range map[int]bool{0: false, 2: false, 3: true, 5: true} {
		res := s.Score(Input{Candidate: makeSet(n)})
		if res.Pass != want {
			t.Errorf("%d questions: pass = %t, want %t (%s)", n, res.Pass, want, res.Rationale)
		}
	}
}

func TestSufficientCountZeroMinUsesDefault(t *testing.T) {
	res := SufficientCount{}.Score(Input{Candidate: `{"questions": []}`})
	if res.Pass {
		t.Fatal("empty set should fail against the default minimum")
	}
	if !strings.Contains(res.Rationale, fmt.Sprintf("%d", DefaultMinQuestions)) {
		t.Errorf("rationale should name the threshold: %s", res.Rationale)
	}
}

func TestSuiteComposition(t *testing.T) {
	cfg := DefaultConfig()
	if got := len(Suite(cfg, nil)); got != 5 {
		t.Errorf("rule suite has %d scorers, want 5", got)
	}

	cfg.EnableJudges = true
	if got := len(Suite(cfg, nil)); got != 5 {
		t.Errorf("judges enabled without a provider should still give 5 scorers, got %d", got)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("DOKKAI_ENABLE_JUDGES", "true")
	t.Setenv("DOKKAI_MIN_QUESTIONS", "7")

	cfg := ConfigFromEnv()
	if !cfg.EnableJudges {
		t.Error("judges should be enabled")
	}
	if cfg.MinQuestions != 7 {
		t.Errorf("MinQuestions = %d, want 7", cfg.MinQuestions)
	}

	t.Setenv("DOKKAI_MIN_QUESTIONS", "garbage")
	cfg = ConfigFromEnv()
	if cfg.MinQuestions != DefaultMinQuestions {
		t.Errorf("invalid value should fall back to default, got %d", cfg.MinQuestions)
	}
}
