package harness

// ScorerSummary is the aggregated pass rate for one scorer across a run.
type ScorerSummary struct {
	Scorer string
	Total  int
	Passed int
}

// PassRate returns the fraction of samples this scorer passed, in [0, 1].
func (s ScorerSummary) PassRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Passed) / float64(s.Total)
}

// Summarize aggregates per-sample results into per-scorer pass rates,
// preserving the order scorers first appear in.
func Summarize(results []SampleResult) []ScorerSummary {
	index := make(map[string]int)
	var out []ScorerSummary

	for _, r := range results {
		i, ok := index[r.Scorer]
		if !ok {
			i = len(out)
			index[r.Scorer] = i
			out = append(out, ScorerSummary{Scorer: r.Scorer})
		}
		out[i].Total++
		if r.Pass {
			out[i].Passed++
		}
	}
	return out
}
