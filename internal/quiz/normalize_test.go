package quiz

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

const wrappedJSON = `{
	"questions": [
		{
			"category": "事実",
			"question": "話者は今日何をしましたか？",
			"options": ["公園で散歩をした", "桜を植えた", "家で休んだ", "買い物に行った"],
			"answer": "A"
		}
	]
}`

const bareListJSON = `[
	{
		"category": "事実",
		"question": "話者は今日何をしましたか？",
		"options": ["公園で散歩をした", "桜を植えた", "家で休んだ", "買い物に行った"],
		"answer": "A"
	}
]`

func TestNormalizeWrappedAndBareAgree(t *testing.T) {
	wrapped, err := Normalize(wrappedJSON)
	if err != nil {
		t.Fatalf("wrapped: %v", err)
	}
	bare, err := Normalize(bareListJSON)
	if err != nil {
		t.Fatalf("bare: %v", err)
	}

	if wrapped.Len() != 1 || bare.Len() != 1 {
		t.Fatalf("got %d and %d questions, want 1 and 1", wrapped.Len(), bare.Len())
	}
	if !reflect.DeepEqual(wrapped.Questions[0], bare.Questions[0]) {
		t.Errorf("wrapped and bare shapes decoded differently:\n%+v\n%+v",
			wrapped.Questions[0], bare.Questions[0])
	}
}

func TestNormalizeTextShapes(t *testing.T) {
	for name, candidate := range map[string]any{
		"string":     wrappedJSON,
		"bytes":      []byte(wrappedJSON),
		"rawmessage": json.RawMessage(wrappedJSON),
	} {
		set, err := Normalize(candidate)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if set.Len() != 1 {
			t.Errorf("%s: got %d questions, want 1", name, set.Len())
		}
	}
}

func TestNormalizeTyped(t *testing.T) {
	set := &QuestionSet{Questions: []Question{
		{Category: "事実", Text: "q", Options: []string{"a", "b"}, Answer: "A"},
	}}

	got, err := Normalize(set)
	if err != nil {
		t.Fatalf("pointer: %v", err)
	}
	if got != set {
		t.Error("pointer input should be returned as-is")
	}

	if _, err := Normalize(*set); err != nil {
		t.Fatalf("value: %v", err)
	}
}

func TestNormalizeDecodedMaps(t *testing.T) {
	var parsed any
	if err := json.Unmarshal([]byte(wrappedJSON), &parsed); err != nil {
		t.Fatal(err)
	}
	set, err := Normalize(parsed)
	if err != nil {
		t.Fatalf("decoded map: %v", err)
	}
	if set.Len() != 1 {
		t.Errorf("got %d questions, want 1", set.Len())
	}
}

func TestNormalizeNotJSON(t *testing.T) {
	_, err := Normalize("not json")
	if err == nil {
		t.Fatal("expected error")
	}
	var malformed *MalformedJSONError
	if !errors.As(err, &malformed) {
		t.Fatalf("got %T, want *MalformedJSONError", err)
	}
}

func TestNormalizeNil(t *testing.T) {
	for name, candidate := range map[string]any{
		"nil":     nil,
		"nil set": (*QuestionSet)(nil),
	} {
		set, err := Normalize(candidate)
		if err == nil {
			t.Errorf("%s: expected error", name)
		}
		if set != nil {
			t.Errorf("%s: set should be nil on error", name)
		}
	}
}

func TestNormalizeCollectsAllViolations(t *testing.T) {
	// Two questions with distinct problems: both must be reported.
	const input = `{"questions": [
		{"category": "事実", "question": "", "options": ["a", "b"], "answer": "A"},
		{"category": "事実", "question": "q2", "options": [], "answer": "B"}
	]}`

	_, err := Normalize(input)
	if err == nil {
		t.Fatal("expected error")
	}

	var sv *SchemaViolationError
	if !errors.As(err, &sv) {
		t.Fatalf("got %T, want *SchemaViolationError", err)
	}
	if len(sv.Violations) != 2 {
		t.Fatalf("got %d violations, want 2: %v", len(sv.Violations), sv.Violations)
	}
	if !strings.Contains(sv.Violations[0], "question 0") {
		t.Errorf("first violation should name question 0: %s", sv.Violations[0])
	}
	if !strings.Contains(sv.Violations[1], "question 1") {
		t.Errorf("second violation should name question 1: %s", sv.Violations[1])
	}
}

func TestNormalizeAcceptsUnknownCategoryAndAnswer(t *testing.T) {
	// Category and answer content is scored downstream, not rejected
	// at the decoding layer.
	const input = `{"questions": [
		{"category": "странный", "question": "q", "options": ["a"], "answer": "Z"}
	]}`

	set, err := Normalize(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.Questions[0].Answer != "Z" {
		t.Errorf("answer should pass through unchanged, got %q", set.Questions[0].Answer)
	}
}

func TestNormalizeMissingQuestionsKey(t *testing.T) {
	_, err := Normalize(`{"items": []}`)
	var sv *SchemaViolationError
	if !errors.As(err, &sv) {
		t.Fatalf("got %T, want *SchemaViolationError", err)
	}
}

func TestNormalizeScalarTopLevel(t *testing.T) {
	for _, input := range []string{`42`, `"hello"`, `true`} {
		_, err := Normalize(input)
		var sv *SchemaViolationError
		if !errors.As(err, &sv) {
			t.Errorf("%s: got %T, want *SchemaViolationError", input, err)
		}
	}
}

func TestAnswerIndex(t *testing.T) {
	cases := []struct {
		answer string
		idx    int
		ok     bool
	}{
		{"A", 0, true},
		{"B", 1, true},
		{"C", 2, true},
		{"D", 3, true},
		{"E", 0, false},
		{"a", 0, false},
		{"AB", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		idx, ok := AnswerIndex(c.answer)
		if idx != c.idx || ok != c.ok {
			t.Errorf("AnswerIndex(%q) = (%d, %t), want (%d, %t)", c.answer, idx, ok, c.idx, c.ok)
		}
	}
}
