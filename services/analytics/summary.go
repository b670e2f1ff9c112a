package analytics

import (
	"time"

	"trackcare/models"
)

// TypeSummary aggregates one activity type over the selected sample window.
type TypeSummary struct {
	Type           string    `json:"type"`
	Count          int       `json:"count"`
	BestScore      float64   `json:"bestScore"`
	AverageScore   float64   `json:"averageScore"`
	LatestScore    float64   `json:"latestScore"`
	LatestPerf     int       `json:"latestPerformance"`
	LatestPerfOK   bool      `json:"-"`
	LatestRecorded time.Time `json:"latestRecordedAt"`
}

// Row is one result with its performance percentage attached. Performance
// is relative to the rows of the same type in the same window, so it is
// derived fresh on every call.
type Row struct {
	models.ActivityResult
	Performance   int  `json:"performance"`
	PerformanceOK bool `json:"performanceOk"`
}

// WithPerformance annotates results with their normalized percentage
// against the population of their own type within the given set.
func WithPerformance(results []models.ActivityResult) []Row {
	byType := make(map[string][]float64)
	for _, r := range results {
		byType[r.Type] = append(byType[r.Type], r.Score)
	}

	rows := make([]Row, 0, len(results))
	for _, r := range results {
		perf, ok := Normalize(r.Type, r.Score, byType[r.Type])
		rows = append(rows, Row{ActivityResult: r, Performance: perf, PerformanceOK: ok})
	}
	return rows
}

// Summaries groups results by type and reduces each group. Results are
// expected most-recent-first, as the history queries return them.
func Summaries(results []models.ActivityResult) []TypeSummary {
	byType := make(map[string][]models.ActivityResult)
	var order []string
	for _, r := range results {
		if _, seen := byType[r.Type]; !seen {
			order = append(order, r.Type)
		}
		byType[r.Type] = append(byType[r.Type], r)
	}

	summaries := make([]TypeSummary, 0, len(order))
	for _, typ := range order {
		group := byType[typ]

		scores := make([]float64, 0, len(group))
		for _, r := range group {
			scores = append(scores, r.Score)
		}

		s := TypeSummary{
			Type:           typ,
			Count:          len(group),
			BestScore:      bestOf(typ, scores),
			AverageScore:   average(scores),
			LatestScore:    group[0].Score,
			LatestRecorded: group[0].CreatedAt,
		}
		s.LatestPerf, s.LatestPerfOK = Normalize(typ, group[0].Score, scores)
		summaries = append(summaries, s)
	}
	return summaries
}

// FilterSince keeps results recorded at or after the cutoff. A zero cutoff
// keeps everything.
func FilterSince(results []models.ActivityResult, cutoff time.Time) []models.ActivityResult {
	if cutoff.IsZero() {
		return results
	}
	kept := make([]models.ActivityResult, 0, len(results))
	for _, r := range results {
		if !r.CreatedAt.Before(cutoff) {
			kept = append(kept, r)
		}
	}
	return kept
}

func bestOf(activityType string, scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	best := scores[0]
	lower := Direction(activityType) == LowerBetter
	for _, s := range scores[1:] {
		if lower && s < best || !lower && s > best {
			best = s
		}
	}
	return best
}

func average(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}
