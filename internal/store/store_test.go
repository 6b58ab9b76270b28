package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounterMonotonic(t *testing.T) {
	s := openTestStore(t)
	seq, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new counter: %v", err)
	}

	ctx := context.Background()
	prev := int64(0)
	for i := 0; i < 5; i++ {
		n, err := seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if n <= prev && i > 0 {
			t.Fatalf("sequence not increasing: %d after %d", n, prev)
		}
		prev = n
	}
}

func TestEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	ctx := context.Background()

	for _, purpose := range []string{"question-gen", "judge", "question-gen"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock-model",
			Purpose:      purpose,
			InputTokens:  100,
			OutputTokens: 50,
			LatencyMs:    120,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	if events[0].Sequence <= events[1].Sequence {
		t.Error("events should be ordered most recent first")
	}

	judged, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "judge"})
	if err != nil {
		t.Fatalf("query filtered: %v", err)
	}
	if len(judged) != 1 {
		t.Fatalf("got %d judge events, want 1", len(judged))
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("got %d usage rows, want 2", len(usage))
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown event ID")
	}
}

func TestRunSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.RunRepo()
	ctx := context.Background()

	started := time.Now().UTC().Truncate(time.Second)
	run := &EvalRunRecord{
		ID:          "run-1",
		Dataset:     "builtin",
		Provider:    "mock",
		Model:       "mock-model",
		PromptStyle: "reasoned",
		SampleCount: 2,
		StartedAt:   started,
		FinishedAt:  started.Add(3 * time.Second),
	}
	results := []ScoreRecord{
		{RunID: "run-1", SampleID: "s1", Scorer: "schema_valid", Pass: true, Rationale: "ok"},
		{RunID: "run-1", SampleID: "s1", Scorer: "answer_valid", Pass: false, Rationale: "bad answer"},
	}

	if err := repo.SaveRun(ctx, run, results); err != nil {
		t.Fatalf("save run: %v", err)
	}

	got, gotResults, err := repo.GetRun(ctx, "run-1")
	if err != nil {
		t.Fatalf("get run: %v", err)
	}
	if got == nil {
		t.Fatal("run not found after save")
	}
	if got.Dataset != "builtin" || got.PromptStyle != "reasoned" {
		t.Errorf("run fields not round-tripped: %+v", got)
	}
	if len(gotResults) != 2 {
		t.Fatalf("got %d results, want 2", len(gotResults))
	}

	runs, err := repo.ListRuns(ctx, 10)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}

	missing, _, err := repo.GetRun(ctx, "nope")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown run ID")
	}
}
