package analytics

import (
	"math"
	"testing"
	"time"

	"trackcare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHigherBetterScaling(t *testing.T) {
	pop := []float64{10, 20, 30}

	perf, ok := Normalize(models.ActivitySequenceMemory, 10, pop)
	require.True(t, ok)
	assert.Equal(t, 0, perf)

	perf, _ = Normalize(models.ActivitySequenceMemory, 20, pop)
	assert.Equal(t, 50, perf)

	perf, _ = Normalize(models.ActivitySequenceMemory, 30, pop)
	assert.Equal(t, 100, perf)
}

func TestNormalizeLowerBetterInverts(t *testing.T) {
	pop := []float64{200, 300, 400}

	perf, ok := Normalize(models.ActivityReactionTime, 200, pop)
	require.True(t, ok)
	assert.Equal(t, 100, perf)

	perf, _ = Normalize(models.ActivityReactionTime, 400, pop)
	assert.Equal(t, 0, perf)
}

func TestNormalizeNoVariancePinsToFifty(t *testing.T) {
	pop := []float64{15, 15, 15}
	perf, ok := Normalize(models.ActivityNumberMemory, 15, pop)
	require.True(t, ok)
	assert.Equal(t, 50, perf)
}

func TestNormalizeSmallPopulationFallback(t *testing.T) {
	// Two samples is not enough for min/max scaling, so the fixed
	// practical bounds kick in.
	perf, ok := Normalize(models.ActivityReactionTime, 500, []float64{500, 600})
	require.True(t, ok)
	assert.Equal(t, 50, perf)

	perf, _ = Normalize(models.ActivityVisualMemory, 5, nil)
	assert.Equal(t, 50, perf)

	perf, _ = Normalize(models.ActivityVisualMemory, 10, nil)
	assert.Equal(t, 100, perf)
}

func TestNormalizeClampsOutOfRange(t *testing.T) {
	pop := []float64{10, 20, 30}

	perf, _ := Normalize(models.ActivitySequenceMemory, 99, pop)
	assert.Equal(t, 100, perf)

	perf, _ = Normalize(models.ActivitySequenceMemory, -5, pop)
	assert.Equal(t, 0, perf)

	// Fallback path clamps too.
	perf, _ = Normalize(models.ActivityReactionTime, 5000, nil)
	assert.Equal(t, 0, perf)
}

func TestNormalizeRejectsNonFinite(t *testing.T) {
	_, ok := Normalize(models.ActivitySequenceMemory, math.NaN(), []float64{1, 2, 3})
	assert.False(t, ok)

	_, ok = Normalize(models.ActivitySequenceMemory, math.Inf(1), nil)
	assert.False(t, ok)
}

func TestNormalizeIgnoresNonFiniteSamples(t *testing.T) {
	pop := []float64{10, math.NaN(), 20, math.Inf(-1), 30}
	perf, ok := Normalize(models.ActivitySequenceMemory, 20, pop)
	require.True(t, ok)
	assert.Equal(t, 50, perf)
}

func TestDirectionDefaultsHigher(t *testing.T) {
	assert.Equal(t, LowerBetter, Direction(models.ActivityReactionTime))
	assert.Equal(t, HigherBetter, Direction("SOMETHING_NEW"))
}

func resultAt(typ string, score float64, ago time.Duration) models.ActivityResult {
	return models.ActivityResult{
		Username:  "amina",
		Type:      typ,
		Score:     score,
		CreatedAt: time.Now().Add(-ago),
	}
}

func TestSummariesGroupsByType(t *testing.T) {
	results := []models.ActivityResult{
		resultAt(models.ActivitySequenceMemory, 8, time.Hour),
		resultAt(models.ActivityReactionTime, 250, 2*time.Hour),
		resultAt(models.ActivitySequenceMemory, 4, 3*time.Hour),
		resultAt(models.ActivityReactionTime, 300, 4*time.Hour),
		resultAt(models.ActivitySequenceMemory, 6, 5*time.Hour),
	}

	summaries := Summaries(results)
	require.Len(t, summaries, 2)

	seq := summaries[0]
	assert.Equal(t, models.ActivitySequenceMemory, seq.Type)
	assert.Equal(t, 3, seq.Count)
	assert.Equal(t, 8.0, seq.BestScore)
	assert.Equal(t, 6.0, seq.AverageScore)
	assert.Equal(t, 8.0, seq.LatestScore)
	assert.Equal(t, 100, seq.LatestPerf)

	rt := summaries[1]
	assert.Equal(t, models.ActivityReactionTime, rt.Type)
	// Lower is better for reaction time.
	assert.Equal(t, 250.0, rt.BestScore)
}

func TestWithPerformanceUsesOwnTypePopulation(t *testing.T) {
	results := []models.ActivityResult{
		resultAt(models.ActivitySequenceMemory, 10, time.Hour),
		resultAt(models.ActivitySequenceMemory, 20, 2*time.Hour),
		resultAt(models.ActivitySequenceMemory, 30, 3*time.Hour),
		resultAt(models.ActivityReactionTime, 500, time.Hour),
	}

	rows := WithPerformance(results)
	require.Len(t, rows, 4)
	assert.Equal(t, 0, rows[0].Performance)
	assert.Equal(t, 50, rows[1].Performance)
	assert.Equal(t, 100, rows[2].Performance)
	// Reaction time has a single sample, so the fallback bounds apply.
	assert.Equal(t, 50, rows[3].Performance)
	assert.True(t, rows[3].PerformanceOK)
}

func TestFilterSince(t *testing.T) {
	old := resultAt(models.ActivityNumberMemory, 3, 48*time.Hour)
	recent := resultAt(models.ActivityNumberMemory, 5, time.Hour)

	kept := FilterSince([]models.ActivityResult{recent, old}, time.Now().Add(-24*time.Hour))
	require.Len(t, kept, 1)
	assert.Equal(t, 5.0, kept[0].Score)

	assert.Len(t, FilterSince([]models.ActivityResult{recent, old}, time.Time{}), 2)
}
