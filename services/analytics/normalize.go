// Package analytics turns raw activity scores into comparable performance
// percentages and per-type summaries for the dashboard.
package analytics

import (
	"math"

	"trackcare/models"
)

// Score direction per activity type. Reaction time is measured in
// milliseconds, so lower is better; every other activity counts levels.
const (
	LowerBetter  = "LOWER_BETTER"
	HigherBetter = "HIGHER_BETTER"
)

var direction = map[string]string{
	models.ActivityReactionTime:   LowerBetter,
	models.ActivitySequenceMemory: HigherBetter,
	models.ActivityNumberMemory:   HigherBetter,
	models.ActivityVisualMemory:   HigherBetter,
	models.ActivitySoundTherapy:   HigherBetter,
}

// Practical bounds used when the population is too small for min/max
// scaling: reaction times are assumed to span 0..1000ms, level-based
// scores 0..10.
const (
	fallbackWorstMillis = 1000.0
	fallbackBestLevels  = 10.0
	minSamplesForRange  = 3
)

// Direction returns the score direction for a type, defaulting to
// higher-is-better for unknown types.
func Direction(activityType string) string {
	if d, ok := direction[activityType]; ok {
		return d
	}
	return HigherBetter
}

// Normalize maps a raw score onto a 0–100 performance scale relative to the
// population of scores observed for the same activity type. ok is false
// when the score is not a finite number.
//
// With fewer than three finite samples, min/max scaling would be degenerate,
// so fixed practical bounds are used instead. With enough samples the score
// is scaled within the population's min/max; a population without variance
// pins every score to 50. Results are clamped so a score outside the
// historical range still lands inside 0–100.
//
// Pure function: the sample slice is never mutated, and the same inputs
// always produce the same output. Callers recompute per population change
// rather than caching, since one new sample can shift every percentage.
func Normalize(activityType string, score float64, population []float64) (int, bool) {
	if !isFinite(score) {
		return 0, false
	}

	dir := Direction(activityType)

	finite := make([]float64, 0, len(population))
	for _, s := range population {
		if isFinite(s) {
			finite = append(finite, s)
		}
	}

	if len(finite) < minSamplesForRange {
		if dir == LowerBetter {
			return round100(1 - clamp01(score/fallbackWorstMillis)), true
		}
		return round100(clamp01(score / fallbackBestLevels)), true
	}

	min, max := finite[0], finite[0]
	for _, s := range finite[1:] {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	if min == max {
		return 50, true
	}

	if dir == HigherBetter {
		return round100(clamp01((score - min) / (max - min))), true
	}
	return round100(clamp01((max - score) / (max - min))), true
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

func round100(p float64) int {
	return int(math.Round(p * 100))
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
