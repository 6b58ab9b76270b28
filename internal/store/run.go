package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ysato/dokkai/ent"
	"github.com/ysato/dokkai/ent/evalrun"
	"github.com/ysato/dokkai/ent/scoreresult"
)

// runRepo implements RunRepo backed by ent.
type runRepo struct {
	client *ent.Client
	db     *sql.DB
}

func (r *runRepo) SaveRun(ctx context.Context, run *EvalRunRecord, results []ScoreRecord) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	_, err = tx.EvalRun.Create().
		SetRunID(run.ID).
		SetDataset(run.Dataset).
		SetProvider(run.Provider).
		SetModel(run.Model).
		SetPromptStyle(run.PromptStyle).
		SetJudgesEnabled(run.JudgesEnabled).
		SetSampleCount(run.SampleCount).
		SetStartedAt(run.StartedAt).
		SetFinishedAt(run.FinishedAt).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("save run: %w", err)
	}

	builders := make([]*ent.ScoreResultCreate, len(results))
	for i, res := range results {
		builders[i] = tx.ScoreResult.Create().
			SetRunID(run.ID).
			SetSampleID(res.SampleID).
			SetScorer(res.Scorer).
			SetPass(res.Pass).
			SetRationale(res.Rationale)
	}
	if _, err := tx.ScoreResult.CreateBulk(builders...).Save(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("save results: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *runRepo) ListRuns(ctx context.Context, limit int) ([]EvalRunRecord, error) {
	q := r.client.EvalRun.Query().
		Order(ent.Desc(evalrun.FieldStartedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	runs := make([]EvalRunRecord, len(rows))
	for i, row := range rows {
		runs[i] = runFromRow(row)
	}
	return runs, nil
}

func (r *runRepo) GetRun(ctx context.Context, runID string) (*EvalRunRecord, []ScoreRecord, error) {
	row, err := r.client.EvalRun.Query().
		Where(evalrun.RunIDEQ(runID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("get run %s: %w", runID, err)
	}

	resultRows, err := r.client.ScoreResult.Query().
		Where(scoreresult.RunIDEQ(runID)).
		Order(ent.Asc(scoreresult.FieldID)).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("get results for run %s: %w", runID, err)
	}

	results := make([]ScoreRecord, len(resultRows))
	for i, rr := range resultRows {
		results[i] = ScoreRecord{
			RunID:     rr.RunID,
			SampleID:  rr.SampleID,
			Scorer:    rr.Scorer,
			Pass:      rr.Pass,
			Rationale: rr.Rationale,
		}
	}

	run := runFromRow(row)
	return &run, results, nil
}

func runFromRow(row *ent.EvalRun) EvalRunRecord {
	return EvalRunRecord{
		ID:            row.RunID,
		Dataset:       row.Dataset,
		Provider:      row.Provider,
		Model:         row.Model,
		PromptStyle:   row.PromptStyle,
		JudgesEnabled: row.JudgesEnabled,
		SampleCount:   row.SampleCount,
		StartedAt:     row.StartedAt,
		FinishedAt:    row.FinishedAt,
	}
}
