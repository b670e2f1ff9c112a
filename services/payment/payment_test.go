package payment

import (
	"testing"

	"trackcare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

func stubCreator(captured **stripe.PaymentIntentParams) IntentCreator {
	return func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
		*captured = params
		return &stripe.PaymentIntent{
			ID:           "pi_test_123",
			ClientSecret: "pi_test_123_secret",
			Amount:       *params.Amount,
			Currency:     stripe.Currency(*params.Currency),
		}, nil
	}
}

func TestCreateDeposit(t *testing.T) {
	var captured *stripe.PaymentIntentParams
	svc := NewServiceWithCreator(stubCreator(&captured))

	intent, err := svc.CreateDeposit("u1", models.DepositRequest{
		TherapistID: "t1", Amount: 4000, Currency: "eur",
	})
	require.NoError(t, err)
	assert.Equal(t, "pi_test_123", intent.IntentID)
	assert.Equal(t, "pi_test_123_secret", intent.ClientSecret)
	assert.Equal(t, int64(4000), intent.Amount)
	assert.Equal(t, "eur", intent.Currency)

	require.NotNil(t, captured)
	assert.Equal(t, "u1", captured.Metadata["userId"])
	assert.Equal(t, "t1", captured.Metadata["therapistId"])
}

func TestCreateDepositDefaultsCurrency(t *testing.T) {
	var captured *stripe.PaymentIntentParams
	svc := NewServiceWithCreator(stubCreator(&captured))

	_, err := svc.CreateDeposit("u1", models.DepositRequest{TherapistID: "t1", Amount: 4000})
	require.NoError(t, err)
	assert.Equal(t, "usd", *captured.Currency)
}

func TestCreateDepositAmountBounds(t *testing.T) {
	svc := NewServiceWithCreator(nil)

	_, err := svc.CreateDeposit("u1", models.DepositRequest{TherapistID: "t1", Amount: 100})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.CreateDeposit("u1", models.DepositRequest{TherapistID: "t1", Amount: 10000000})
	assert.ErrorIs(t, err, ErrInvalidAmount)
}
