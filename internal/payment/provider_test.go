package payment_test

import (
	"testing"

	"github.com/cinestream/backend/internal/config"
	"github.com/cinestream/backend/internal/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	cfg := &config.Config{StripeAPIKey: "sk_test"}

	tests := []struct {
		name     string
		provider string
		wantErr  bool
	}{
		{name: "stripe", provider: "stripe"},
		{name: "paypal", provider: "paypal"},
		{name: "upi", provider: "upi"},
		{name: "case insensitive", provider: "Stripe"},
		{name: "unknown", provider: "bitcoin", wantErr: true},
		{name: "empty", provider: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := payment.New(tt.provider, cfg)
			if tt.wantErr {
				assert.ErrorIs(t, err, payment.ErrUnknownProvider)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, p)
		})
	}
}

func TestCharge(t *testing.T) {
	cfg := &config.Config{}

	tests := []struct {
		name       string
		provider   string
		token      string
		wantStatus string
		wantRef    string
	}{
		{name: "stripe success", provider: "stripe", token: "tok_abcdef123456", wantStatus: payment.StatusSucceeded, wantRef: "pi_cdef123456"},
		{name: "stripe wrong prefix", provider: "stripe", token: "pp_abcdef123456", wantStatus: payment.StatusFailed, wantRef: ""},
		{name: "paypal success", provider: "paypal", token: "pp_abcdef123456", wantStatus: payment.StatusSucceeded, wantRef: "pp_txn_cdef123456"},
		{name: "paypal failure", provider: "paypal", token: "tok_abcdef123456", wantStatus: payment.StatusFailed, wantRef: ""},
		{name: "upi success", provider: "upi", token: "upi_abcdef123456", wantStatus: payment.StatusSucceeded, wantRef: "upi_txn_cdef123456"},
		{name: "upi failure", provider: "upi", token: "cash", wantStatus: payment.StatusFailed, wantRef: ""},
		{name: "short token keeps full tail", provider: "stripe", token: "tok_1", wantStatus: payment.StatusSucceeded, wantRef: "pi_tok_1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := payment.New(tt.provider, cfg)
			require.NoError(t, err)

			status, ref := p.Charge(999, "USD", tt.token)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantRef, ref)
		})
	}
}
