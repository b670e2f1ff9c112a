package models

import (
	"strings"
	"time"
)

// Activity types. REACTION_TIME scores are milliseconds (lower is better);
// all other types score "levels reached" (higher is better).
const (
	ActivityReactionTime   = "REACTION_TIME"
	ActivitySequenceMemory = "SEQUENCE_MEMORY"
	ActivityNumberMemory   = "NUMBER_MEMORY"
	ActivityVisualMemory   = "VISUAL_MEMORY"
	ActivitySoundTherapy   = "SOUND_THERAPY"
)

var activityTypes = []string{
	ActivityReactionTime,
	ActivitySequenceMemory,
	ActivityNumberMemory,
	ActivityVisualMemory,
	ActivitySoundTherapy,
}

// ParseActivityType maps a raw type string to its canonical constant, or ""
// when unknown.
func ParseActivityType(s string) string {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for _, t := range activityTypes {
		if upper == t {
			return t
		}
	}
	return ""
}

// ActivityResult is one finished activity attempt. Immutable once created.
type ActivityResult struct {
	ID          string    `bson:"id" json:"id"`
	Username    string    `bson:"username" json:"username"`
	Type        string    `bson:"type" json:"type"`
	Score       float64   `bson:"score" json:"score"`
	DetailsJSON string    `bson:"detailsJson,omitempty" json:"detailsJson,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// ActivityResultCreateRequest is the save payload from an activity module.
type ActivityResultCreateRequest struct {
	Type    string                 `json:"type" binding:"required"`
	Score   *float64               `json:"score"`
	Details map[string]interface{} `json:"details,omitempty"`
}
