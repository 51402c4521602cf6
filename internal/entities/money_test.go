package entities_test

import (
	"testing"

	"github.com/SergeyBogomolovv/marketplace-connector/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	testCases := []struct {
		name         string
		amount       string
		currency     string
		wantAmount   string
		wantCurrency string
		wantErr      bool
	}{
		{name: "integer amount", amount: "10", currency: "usd", wantAmount: "10.00", wantCurrency: "USD"},
		{name: "half up", amount: "2.345", currency: "EUR", wantAmount: "2.35", wantCurrency: "EUR"},
		{name: "round down", amount: "2.344", currency: " gbp ", wantAmount: "2.34", wantCurrency: "GBP"},
		{name: "zero", amount: "0", currency: "CAD", wantAmount: "0.00", wantCurrency: "CAD"},
		{name: "blank currency", amount: "1", currency: "  ", wantErr: true},
		{name: "unknown currency", amount: "1", currency: "XYZ1", wantErr: true},
		{name: "negative amount", amount: "-1", currency: "USD", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := entities.NewMoney(decimal.RequireFromString(tc.amount), tc.currency)
			if tc.wantErr {
				assert.ErrorIs(t, err, entities.ErrInvalidCommand)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantAmount, m.FormatAmount())
			assert.Equal(t, tc.wantCurrency, m.Currency)
			assert.Equal(t, int32(-2), m.Amount.Exponent())
		})
	}
}

func TestMoney_RoundTrip(t *testing.T) {
	m, err := entities.NewMoney(decimal.NewFromInt(10), "usd")
	require.NoError(t, err)
	assert.Equal(t, "10.00", m.FormatAmount())
	assert.Equal(t, "USD", m.Currency)
	assert.Equal(t, "10.00 USD", m.String())

	parsed, err := entities.ParseMoney(m.FormatAmount(), m.Currency)
	require.NoError(t, err)
	assert.True(t, m.Equal(parsed))
	assert.Equal(t, m.FormatAmount(), parsed.FormatAmount())
}

func TestParseMoney_InvalidAmount(t *testing.T) {
	_, err := entities.ParseMoney("ten", "USD")
	assert.ErrorIs(t, err, entities.ErrInvalidCommand)
}
