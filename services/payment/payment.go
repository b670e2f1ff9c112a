// Package payment creates Stripe deposit intents for booking payments.
package payment

import (
	"errors"
	"fmt"
	"time"

	"trackcare/config"
	"trackcare/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// Deposit bounds, in the smallest currency unit.
const (
	MinDepositAmount = 500
	MaxDepositAmount = 500000
)

// ErrInvalidAmount rejects deposits outside the allowed range.
var ErrInvalidAmount = errors.New("deposit amount out of range")

// IntentCreator creates a payment intent. The Stripe binding satisfies it;
// tests substitute a stub.
type IntentCreator func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)

// Service creates deposit intents.
type Service struct {
	create IntentCreator
}

// NewService creates a Service using the configured Stripe key.
func NewService() *Service {
	stripe.Key = config.AppConfig.StripeKey
	return &Service{create: paymentintent.New}
}

// NewServiceWithCreator creates a Service with a custom intent creator.
func NewServiceWithCreator(create IntentCreator) *Service {
	return &Service{create: create}
}

// CreateDeposit opens a payment intent for the session deposit and returns
// the client secret the frontend completes the payment with.
func (s *Service) CreateDeposit(userID string, req models.DepositRequest) (*models.DepositIntent, error) {
	if req.Amount < MinDepositAmount || req.Amount > MaxDepositAmount {
		return nil, ErrInvalidAmount
	}
	currency := req.Currency
	if currency == "" {
		currency = "usd"
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("userId", userID)
	if req.TherapistID != "" {
		params.AddMetadata("therapistId", req.TherapistID)
	}

	intent, err := s.create(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return &models.DepositIntent{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
		Currency:     string(intent.Currency),
		CreatedAt:    time.Now(),
	}, nil
}
