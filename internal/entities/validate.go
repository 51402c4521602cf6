package entities

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic("register notblank validation: " + err.Error())
	}
	v.RegisterStructValidation(moneyStructLevel, Money{})
	v.RegisterStructValidation(orderCommandStructLevel, OrderCommand{})
	return v
}

func moneyStructLevel(sl validator.StructLevel) {
	m := sl.Current().Interface().(Money)
	if m.Amount.IsNegative() {
		sl.ReportError(m.Amount, "Amount", "Amount", "gte", "0")
	}
}

// Заказ должен ссылаться на листинг хотя бы одним способом.
func orderCommandStructLevel(sl validator.StructLevel) {
	c := sl.Current().Interface().(OrderCommand)
	if strings.TrimSpace(c.ListingID) == "" && strings.TrimSpace(c.SKU) == "" {
		sl.ReportError(c.ListingID, "ListingID", "ListingID", "required_without", "SKU")
	}
}

func validateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCommand, err)
	}
	return nil
}
