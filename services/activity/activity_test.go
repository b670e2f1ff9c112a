package activity

import (
	"math"
	"sync"
	"testing"

	"trackcare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeActivityRepo struct {
	mu      sync.Mutex
	results []models.ActivityResult
}

func (r *fakeActivityRepo) Insert(result *models.ActivityResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Prepend: the real store returns most-recent-first.
	r.results = append([]models.ActivityResult{*result}, r.results...)
	return nil
}

func (r *fakeActivityRepo) History(username, activityType string, limit int) ([]models.ActivityResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.ActivityResult
	for _, res := range r.results {
		if res.Username != username {
			continue
		}
		if activityType != "" && res.Type != activityType {
			continue
		}
		out = append(out, res)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func scorePtr(f float64) *float64 { return &f }

func TestSaveResult(t *testing.T) {
	repo := &fakeActivityRepo{}
	svc := NewService(repo)

	saved, err := svc.SaveResult("amina", models.ActivityResultCreateRequest{
		Type:    "reaction_time",
		Score:   scorePtr(312),
		Details: map[string]interface{}{"rounds": 3},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, models.ActivityReactionTime, saved.Type)
	assert.Equal(t, 312.0, saved.Score)
	assert.JSONEq(t, `{"rounds":3}`, saved.DetailsJSON)
}

func TestSaveResultRejectsBadInput(t *testing.T) {
	svc := NewService(&fakeActivityRepo{})

	_, err := svc.SaveResult("amina", models.ActivityResultCreateRequest{Type: "JUGGLING", Score: scorePtr(1)})
	assert.ErrorIs(t, err, ErrInvalidType)

	_, err = svc.SaveResult("amina", models.ActivityResultCreateRequest{Type: "VISUAL_MEMORY"})
	assert.ErrorIs(t, err, ErrInvalidScore)

	_, err = svc.SaveResult("amina", models.ActivityResultCreateRequest{Type: "VISUAL_MEMORY", Score: scorePtr(math.NaN())})
	assert.ErrorIs(t, err, ErrInvalidScore)
}

func TestHistoryFiltersAndClamps(t *testing.T) {
	repo := &fakeActivityRepo{}
	svc := NewService(repo)

	for i := 0; i < 150; i++ {
		_, err := svc.SaveResult("amina", models.ActivityResultCreateRequest{
			Type: "NUMBER_MEMORY", Score: scorePtr(float64(i)),
		})
		require.NoError(t, err)
	}
	_, err := svc.SaveResult("amina", models.ActivityResultCreateRequest{Type: "VISUAL_MEMORY", Score: scorePtr(5)})
	require.NoError(t, err)

	// Most recent first.
	history, err := svc.History("amina", "NUMBER_MEMORY", 10)
	require.NoError(t, err)
	require.Len(t, history, 10)
	assert.Equal(t, 149.0, history[0].Score)

	// Over-large limits clamp to the maximum.
	history, err = svc.History("amina", "NUMBER_MEMORY", 10000)
	require.NoError(t, err)
	assert.Len(t, history, MaxHistoryLimit)

	// Zero falls back to the default.
	history, err = svc.History("amina", "NUMBER_MEMORY", 0)
	require.NoError(t, err)
	assert.Len(t, history, DefaultHistoryLimit)

	// Empty type spans all activities.
	history, err = svc.History("amina", "", MaxHistoryLimit)
	require.NoError(t, err)
	assert.Equal(t, models.ActivityVisualMemory, history[0].Type)

	_, err = svc.History("amina", "JUGGLING", 10)
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestHistoryEmptyIsNotNil(t *testing.T) {
	svc := NewService(&fakeActivityRepo{})
	history, err := svc.History("nobody", "", 10)
	require.NoError(t, err)
	require.NotNil(t, history)
	assert.Empty(t, history)
}

func TestSaveAndHistoryIncludesNewResult(t *testing.T) {
	repo := &fakeActivityRepo{}
	svc := NewService(repo)

	_, err := svc.SaveResult("amina", models.ActivityResultCreateRequest{Type: "SEQUENCE_MEMORY", Score: scorePtr(4)})
	require.NoError(t, err)

	saved, history, err := svc.SaveAndHistory("amina", models.ActivityResultCreateRequest{
		Type: "SEQUENCE_MEMORY", Score: scorePtr(7),
	}, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, saved.ID, history[0].ID)
	assert.Equal(t, 7.0, history[0].Score)
}
