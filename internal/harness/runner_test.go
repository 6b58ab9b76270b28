package harness

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ysato/dokkai/internal/quiz"
	"github.com/ysato/dokkai/internal/quizgen"
	"github.com/ysato/dokkai/internal/score"
)

// stubGenerator returns a fixed set, or an error for passages listed
// in failFor. The raw payload is the set's wrapped JSON encoding unless
// raw overrides it.
type stubGenerator struct {
	set     *quiz.QuestionSet
	raw     json.RawMessage
	failFor map[string]bool
}

func (g *stubGenerator) Generate(_ context.Context, input quizgen.Input) (*quizgen.Candidate, error) {
	if g.failFor[input.Passage] {
		return nil, errors.New("model overloaded")
	}
	raw := g.raw
	if raw == nil {
		var err error
		raw, err = json.Marshal(g.set)
		if err != nil {
			return nil, err
		}
	}
	return &quizgen.Candidate{Raw: raw, Set: g.set}, nil
}

func fullSet() *quiz.QuestionSet {
	return &quiz.QuestionSet{Questions: []quiz.Question{
		{Category: "事実", Text: "q1", Options: []string{"a", "b", "c", "d"}, Answer: "A"},
		{Category: "メインポイント", Text: "q2", Options: []string{"a", "b", "c", "d"}, Answer: "B"},
		{Category: "文法", Text: "q3", Options: []string{"a", "b", "c", "d"}, Answer: "C"},
	}}
}

func TestRunScoresEverySampleWithEveryScorer(t *testing.T) {
	gen := &stubGenerator{set: fullSet()}
	scorers := score.Suite(score.DefaultConfig(), nil)
	r := &Runner{Generator: gen, Scorers: scorers, Workers: 2}

	ds := BuiltinDataset()
	run, err := r.Run(context.Background(), ds)
	require.NoError(t, err)

	assert.NotEmpty(t, run.RunID)
	assert.Equal(t, "builtin", run.Dataset)
	assert.Len(t, run.Results, len(ds.Samples)*len(scorers))

	for _, res := range run.Results {
		assert.True(t, res.Pass, "%s/%s: %s", res.SampleID, res.Scorer, res.Rationale)
	}
}

func TestRunFailsClosedOnGenerationError(t *testing.T) {
	ds := BuiltinDataset()
	gen := &stubGenerator{
		set:     fullSet(),
		failFor: map[string]bool{ds.Samples[0].Text: true},
	}
	scorers := score.Suite(score.DefaultConfig(), nil)
	r := &Runner{Generator: gen, Scorers: scorers}

	run, err := r.Run(context.Background(), ds)
	require.NoError(t, err)

	byID := make(map[string][]SampleResult)
	for _, res := range run.Results {
		byID[res.SampleID] = append(byID[res.SampleID], res)
	}

	failed := byID[ds.Samples[0].ID]
	require.Len(t, failed, len(scorers))
	for _, res := range failed {
		assert.False(t, res.Pass)
		assert.Contains(t, res.Rationale, "model overloaded")
	}

	for _, res := range byID[ds.Samples[1].ID] {
		assert.True(t, res.Pass)
	}
}

func TestRunScoresRawPayloadNotDecodedSet(t *testing.T) {
	// Decoding fills missing fields with zero values, so only the raw
	// payload lets schema_valid see what the provider actually returned.
	gen := &stubGenerator{
		raw: json.RawMessage(`{"questions": [{"question": "Q", "options": ["a", "b"]}]}`),
		set: &quiz.QuestionSet{Questions: []quiz.Question{
			{Text: "Q", Options: []string{"a", "b"}},
		}},
	}
	r := &Runner{Generator: gen, Scorers: []score.Scorer{score.SchemaValid{}}}

	ds := &Dataset{Name: "raw", Samples: []Sample{{ID: "s1", Text: "本文"}}}
	run, err := r.Run(context.Background(), ds)
	require.NoError(t, err)
	require.Len(t, run.Results, 1)

	assert.False(t, run.Results[0].Pass)
	assert.Contains(t, run.Results[0].Rationale, "category")
	assert.Contains(t, run.Results[0].Rationale, "answer")
}

func TestRunRespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &Runner{Generator: &stubGenerator{set: fullSet()}, Scorers: score.Suite(score.DefaultConfig(), nil)}

	ds := &Dataset{Name: "big", Samples: make([]Sample, 100)}
	for i := range ds.Samples {
		ds.Samples[i] = Sample{ID: string(rune('a' + i%26)), Text: "text"}
	}

	_, err := r.Run(ctx, ds)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSummarize(t *testing.T) {
	results := []SampleResult{
		{SampleID: "s1", Scorer: "schema_valid", Pass: true},
		{SampleID: "s1", Scorer: "answer_valid", Pass: false},
		{SampleID: "s2", Scorer: "schema_valid", Pass: true},
		{SampleID: "s2", Scorer: "answer_valid", Pass: true},
	}

	summary := Summarize(results)
	require.Len(t, summary, 2)

	assert.Equal(t, "schema_valid", summary[0].Scorer)
	assert.Equal(t, 2, summary[0].Passed)
	assert.InDelta(t, 1.0, summary[0].PassRate(), 1e-9)

	assert.Equal(t, "answer_valid", summary[1].Scorer)
	assert.Equal(t, 1, summary[1].Passed)
	assert.InDelta(t, 0.5, summary[1].PassRate(), 1e-9)
}

func TestLoadDataset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "eval.yaml")
	content := `name: smoke
samples:
  - id: one
    text: 今日は天気が良いです。
  - text: 彼女は毎朝走ります。
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	ds, err := LoadDataset(path)
	require.NoError(t, err)
	assert.Equal(t, "smoke", ds.Name)
	require.Len(t, ds.Samples, 2)
	assert.Equal(t, "one", ds.Samples[0].ID)
	assert.Equal(t, "sample-2", ds.Samples[1].ID)
}

func TestLoadDatasetRejectsDuplicatesAndEmpties(t *testing.T) {
	dir := t.TempDir()

	dup := filepath.Join(dir, "dup.yaml")
	require.NoError(t, os.WriteFile(dup, []byte("samples:\n  - {id: x, text: a}\n  - {id: x, text: b}\n"), 0o644))
	_, err := LoadDataset(dup)
	assert.ErrorContains(t, err, "duplicate sample id")

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("samples: []\n"), 0o644))
	_, err = LoadDataset(empty)
	assert.ErrorContains(t, err, "no samples")
}
