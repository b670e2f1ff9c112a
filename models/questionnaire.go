package models

import "time"

// QuestionnaireRecord stores one screening submission together with the
// model service's verdict.
type QuestionnaireRecord struct {
	ID          string                 `bson:"id" json:"id"`
	Username    string                 `bson:"username" json:"username"`
	ChildName   string                 `bson:"childName,omitempty" json:"childName,omitempty"`
	Features    map[string]interface{} `bson:"features" json:"features"`
	RiskLabel   string                 `bson:"riskLabel" json:"riskLabel"`
	Probability float64                `bson:"probability" json:"probability"`
	CreatedAt   time.Time              `bson:"createdAt" json:"createdAt"`
}

// ScreeningRequest is the questionnaire submission payload.
type ScreeningRequest struct {
	ChildName string                 `json:"childName,omitempty"`
	Features  map[string]interface{} `json:"features" binding:"required"`
}

// Prediction is the model service's answer for one feature set.
type Prediction struct {
	Label       string  `json:"label"`
	Probability float64 `json:"probability"`
}
