package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// Currency is the only currency the clinic charges in.
const Currency = string(stripe.CurrencyUSD)

// PaymentService creates payment intents for bookings.
type PaymentService interface {
	// CreateIntent creates a card payment intent for the given price in
	// dollars and returns its client secret.
	CreateIntent(ctx context.Context, price float64) (string, error)
}

// StripePaymentService implements PaymentService against the Stripe API. The
// global stripe.Key must be set before use.
type StripePaymentService struct {
	Logger *zap.Logger
}

func (s *StripePaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	if price <= 0 {
		return "", errors.New("invalid payment amount")
	}

	amount := int64(price * 100) // dollars to cents

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(Currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	s.Logger.Info("Payment intent created",
		zap.String("intent", pi.ID), zap.Int64("amount", amount))
	return pi.ClientSecret, nil
}
