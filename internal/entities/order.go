package entities

import (
	"fmt"
	"slices"
	"strings"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusFailed    OrderStatus = "FAILED"
)

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch status := OrderStatus(strings.ToUpper(strings.TrimSpace(s))); status {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusFailed:
		return status, nil
	default:
		return "", fmt.Errorf("unknown order status %q", s)
	}
}

// Terminal reports whether no further transitions are possible.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusConfirmed || s == OrderStatusFailed
}

type OrderItem struct {
	SKU      string `validate:"notblank"`
	Quantity int    `validate:"gte=1"`
	Price    Money
}

func NewOrderItem(sku string, quantity int, price Money) (OrderItem, error) {
	item := OrderItem{SKU: strings.TrimSpace(sku), Quantity: quantity, Price: price}
	if err := validateStruct(item); err != nil {
		return OrderItem{}, err
	}
	return item, nil
}

type OrderCommand struct {
	Platform        string `validate:"notblank"`
	SellerAccountID string `validate:"notblank"`
	ListingID       string
	SKU             string
	Buyer           *Buyer      `validate:"omitempty"`
	Items           []OrderItem `validate:"required,min=1,dive"`
	IdempotencyKey  string      `validate:"notblank"`
}

// NewOrderCommand нормализует поля команды и проверяет её.
func NewOrderCommand(platform, sellerAccountID, listingID, sku string, buyer *Buyer, items []OrderItem, idempotencyKey string) (OrderCommand, error) {
	c := OrderCommand{
		Platform:        strings.ToUpper(strings.TrimSpace(platform)),
		SellerAccountID: strings.TrimSpace(sellerAccountID),
		ListingID:       strings.TrimSpace(listingID),
		SKU:             strings.TrimSpace(sku),
		Buyer:           buyer,
		Items:           slices.Clone(items),
		IdempotencyKey:  strings.TrimSpace(idempotencyKey),
	}
	if err := c.Validate(); err != nil {
		return OrderCommand{}, err
	}
	return c, nil
}

func (c OrderCommand) Validate() error {
	return validateStruct(c)
}

func (c OrderCommand) ReferencesListingID() bool {
	return c.ListingID != ""
}

type OrderResult struct {
	OrderID    string
	ExternalID string
	Status     OrderStatus
	Errors     []MarketplaceError
}

// FailedOrder builds a result for a business failure that created no order.
func FailedOrder(err MarketplaceError) OrderResult {
	return OrderResult{Status: OrderStatusFailed, Errors: []MarketplaceError{err}}
}

func (r OrderResult) HasErrors() bool {
	return len(r.Errors) > 0
}

func (r OrderResult) Clone() OrderResult {
	r.Errors = slices.Clone(r.Errors)
	return r
}
