package score

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/ysato/dokkai/internal/llm"
)

func verdictJSON(t *testing.T, passed bool, reason string) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(verdictOutput{Passed: passed, Reason: reason})
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func judgeInput() Input {
	return Input{Candidate: fullSetJSON(), SourceText: "今日は天気が良いので、公園で散歩をしました。"}
}

func TestJudgePassesVerdictThrough(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: verdictJSON(t, true, "all questions trace back to the passage")},
		llm.MockResponse{Content: verdictJSON(t, false, "question 2 relies on outside knowledge")},
	)
	s := NewQuestionRelevance(mock, DefaultConfig())

	res := s.Score(judgeInput())
	if !res.Pass || !strings.Contains(res.Rationale, "trace back") {
		t.Errorf("passing verdict not passed through: %+v", res)
	}

	res = s.Score(judgeInput())
	if res.Pass || !strings.Contains(res.Rationale, "outside knowledge") {
		t.Errorf("failing verdict not passed through: %+v", res)
	}
}

func TestJudgeFailsClosedOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("rate limited")})
	s := NewOptionQuality(mock, DefaultConfig())

	res := s.Score(judgeInput())
	if res.Pass {
		t.Fatal("provider error must fail the check")
	}
	if !strings.Contains(res.Rationale, "rate limited") {
		t.Errorf("rationale should carry the provider error: %s", res.Rationale)
	}
}

func TestJudgeFailsClosedOnUnparseableVerdict(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"passed": "maybe"}`)})
	s := NewAnswerCorrectness(mock, DefaultConfig())

	res := s.Score(judgeInput())
	if res.Pass {
		t.Fatal("unparseable verdict must fail the check")
	}
}

func TestJudgeRequiresSourceText(t *testing.T) {
	mock := llm.NewMockProvider()
	for _, s := range []Scorer{
		NewQuestionRelevance(mock, DefaultConfig()),
		NewAnswerCorrectness(mock, DefaultConfig()),
	} {
		res := s.Score(Input{Candidate: fullSetJSON()})
		if res.Pass {
			t.Errorf("%s without source text should fail", s.Name())
		}
	}
	if mock.CallCount() != 0 {
		t.Error("missing source text should not reach the provider")
	}
}

func TestJudgeFailsOnMalformedCandidate(t *testing.T) {
	mock := llm.NewMockProvider()
	s := NewQuestionRelevance(mock, DefaultConfig())

	res := s.Score(Input{Candidate: "not json", SourceText: "本文"})
	if res.Pass {
		t.Fatal("malformed candidate must fail before any judge call")
	}
	if mock.CallCount() != 0 {
		t.Error("malformed candidate should not reach the provider")
	}
}

func TestJudgeSendsSchemaAndPurposeLabel(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: verdictJSON(t, true, "ok")})
	s := NewQuestionRelevance(mock, DefaultConfig())

	s.Score(judgeInput())

	req := mock.Calls[0]
	if req.Schema != VerdictSchema {
		t.Error("judge request should carry the verdict schema")
	}
	if !strings.Contains(req.Messages[0].Content, "Source passage") {
		t.Error("relevance prompt should include the source passage")
	}
}

func TestSuiteWithJudges(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnableJudges = true
	mock := llm.NewMockProvider()

	scorers := Suite(cfg, mock)
	if len(scorers) != 8 {
		t.Fatalf("got %d scorers, want 8", len(scorers))
	}

	names := make([]string, len(scorers))
	for i, s := range scorers {
		names[i] = s.Name()
	}
	want := []string{
		"schema_valid", "category_coverage", "options_unique",
		"answer_valid", "sufficient_count",
		"question_relevance", "option_quality", "answer_correctness",
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("scorer %d = %q, want %q", i, names[i], want[i])
		}
	}
}
