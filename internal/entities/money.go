package entities

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const moneyScale = 2

// Money всегда хранит сумму ровно с двумя знаками после запятой.
type Money struct {
	Amount   decimal.Decimal
	Currency string `validate:"required,iso4217"`
}

// NewMoney rounds amount half-up to two places and upper-cases the currency code.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	m := Money{
		Amount:   amount.Round(moneyScale),
		Currency: strings.ToUpper(strings.TrimSpace(currency)),
	}
	if err := validateStruct(m); err != nil {
		return Money{}, err
	}
	return m, nil
}

func ParseMoney(amount, currency string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return Money{}, fmt.Errorf("%w: invalid amount %q: %w", ErrInvalidCommand, amount, err)
	}
	return NewMoney(d, currency)
}

func (m Money) FormatAmount() string {
	return m.Amount.StringFixed(moneyScale)
}

func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

func (m Money) String() string {
	return m.FormatAmount() + " " + m.Currency
}
