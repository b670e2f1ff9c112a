package models

import "time"

// DepositIntent is the client-facing handle for an optional session deposit.
type DepositIntent struct {
	IntentID     string    `json:"intentId"`
	ClientSecret string    `json:"clientSecret"`
	Amount       int64     `json:"amount"`   // minor units
	Currency     string    `json:"currency"`
	CreatedAt    time.Time `json:"createdAt"`
}

// DepositRequest asks for a deposit intent before confirming a booking.
type DepositRequest struct {
	TherapistID string `json:"therapistId" binding:"required"`
	Amount      int64  `json:"amount" binding:"required"`
	Currency    string `json:"currency"`
}
