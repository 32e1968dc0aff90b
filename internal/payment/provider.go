// Package payment simulates the subscription payment gateways. Providers are
// selected by name through an explicit factory; charges succeed or fail based
// on the shape of the client-supplied payment token.
package payment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cinestream/backend/internal/config"
)

// Statuses recorded on Payment rows.
const (
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

var ErrUnknownProvider = errors.New("unsupported payment provider")

// Provider charges the given amount and reports (status, provider reference).
// A failed charge is an expected outcome, not an error.
type Provider interface {
	Charge(amountCents int, currency, token string) (status string, providerRef string)
}

type StripeProvider struct {
	APIKey string
}

// Charge simulates a Stripe payment intent; tokens starting with "tok_" succeed.
func (p StripeProvider) Charge(amountCents int, currency, token string) (string, string) {
	if !strings.HasPrefix(token, "tok_") {
		return StatusFailed, ""
	}
	return StatusSucceeded, "pi_" + tail(token)
}

type PayPalProvider struct {
	ClientID     string
	ClientSecret string
}

// Charge simulates a PayPal capture; tokens starting with "pp_" succeed.
func (p PayPalProvider) Charge(amountCents int, currency, token string) (string, string) {
	if !strings.HasPrefix(token, "pp_") {
		return StatusFailed, ""
	}
	return StatusSucceeded, "pp_txn_" + tail(token)
}

type MockUPIProvider struct{}

// Charge simulates a UPI collect request; tokens starting with "upi_" succeed.
func (p MockUPIProvider) Charge(amountCents int, currency, token string) (string, string) {
	if !strings.HasPrefix(token, "upi_") {
		return StatusFailed, ""
	}
	return StatusSucceeded, "upi_txn_" + tail(token)
}

// New returns the provider registered under name.
func New(name string, cfg *config.Config) (Provider, error) {
	switch strings.ToLower(name) {
	case "stripe":
		return StripeProvider{APIKey: cfg.StripeAPIKey}, nil
	case "paypal":
		return PayPalProvider{ClientID: cfg.PayPalClientID, ClientSecret: cfg.PayPalClientSecret}, nil
	case "upi":
		return MockUPIProvider{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, name)
	}
}

// tail mirrors the gateway convention of echoing the last characters of the
// payment token in the transaction reference.
func tail(token string) string {
	if len(token) <= 10 {
		return token
	}
	return token[len(token)-10:]
}
