package harness

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ysato/dokkai/internal/quizgen"
	"github.com/ysato/dokkai/internal/score"
)

// DefaultWorkers is how many samples are evaluated concurrently when
// the Runner's Workers field is zero.
const DefaultWorkers = 4

// SampleResult is one scorer verdict on one sample.
type SampleResult struct {
	SampleID  string
	Scorer    string
	Pass      bool
	Rationale string
}

// RunResult holds everything one evaluation run produced.
type RunResult struct {
	RunID      string
	Dataset    string
	StartedAt  time.Time
	FinishedAt time.Time
	Results    []SampleResult
}

// Runner evaluates a generator against a dataset with a scorer suite.
type Runner struct {
	Generator quizgen.Generator
	Scorers   []score.Scorer

	// Workers bounds sample-level concurrency. Scorers within one
	// sample always run sequentially.
	Workers int
}

// Run generates a candidate for every sample and scores it with every
// scorer. A generation failure never aborts the run: each scorer
// records a fail carrying the generation error instead.
func (r *Runner) Run(ctx context.Context, ds *Dataset) (*RunResult, error) {
	workers := r.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if workers > len(ds.Samples) {
		workers = len(ds.Samples)
	}

	started := time.Now()
	perSample := make([][]SampleResult, len(ds.Samples))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				perSample[i] = r.evalSample(ctx, ds.Samples[i])
			}
		}()
	}

	for i := range ds.Samples {
		if err := ctx.Err(); err != nil {
			close(jobs)
			wg.Wait()
			return nil, err
		}
		select {
		case jobs <- i:
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return nil, ctx.Err()
		}
	}
	close(jobs)
	wg.Wait()

	run := &RunResult{
		RunID:      uuid.NewString(),
		Dataset:    ds.Name,
		StartedAt:  started,
		FinishedAt: time.Now(),
	}
	for _, results := range perSample {
		run.Results = append(run.Results, results...)
	}
	return run, nil
}

func (r *Runner) evalSample(ctx context.Context, sample Sample) []SampleResult {
	cand, err := r.Generator.Generate(ctx, quizgen.Input{Passage: sample.Text})
	if err != nil {
		results := make([]SampleResult, len(r.Scorers))
		for i, s := range r.Scorers {
			results[i] = SampleResult{
				SampleID:  sample.ID,
				Scorer:    s.Name(),
				Pass:      false,
				Rationale: "generation failed: " + err.Error(),
			}
		}
		return results
	}

	// Score the raw provider payload, not the decoded set: decoding is
	// lenient about missing fields and would mask schema problems.
	var candidate any = cand.Raw
	if len(cand.Raw) == 0 {
		candidate = cand.Set
	}

	in := score.Input{Candidate: candidate, SourceText: sample.Text}
	results := make([]SampleResult, len(r.Scorers))
	for i, s := range r.Scorers {
		verdict := s.Score(in)
		results[i] = SampleResult{
			SampleID:  sample.ID,
			Scorer:    s.Name(),
			Pass:      verdict.Pass,
			Rationale: verdict.Rationale,
		}
	}
	return results
}
