// Package wire holds the JSON payloads of the connector HTTP API, shared by
// the server handlers and the remote client.
package wire

import (
	"time"
)

const IdempotencyHeader = "Idempotency-Key"

// Price денежная сумма в виде строки с двумя знаками после запятой
type Price struct {
	Amount   string `json:"amount" validate:"required,numeric"`
	Currency string `json:"currency" validate:"required,len=3"`
}

type Media struct {
	URL string `json:"url"`
}

// ListingRequest запрос на публикацию листинга
type ListingRequest struct {
	Platform        string  `json:"platform" validate:"required"`
	SellerAccountID string  `json:"sellerAccountId" validate:"required"`
	SKU             string  `json:"sku" validate:"required"`
	Title           string  `json:"title" validate:"required"`
	Description     string  `json:"description" validate:"required"`
	Price           Price   `json:"price" validate:"required"`
	Quantity        int     `json:"quantity" validate:"gte=1"`
	Media           []Media `json:"media,omitempty"`
}

// ErrorDetail бизнес-ошибка маркетплейса
type ErrorDetail struct {
	Code              string `json:"code"`
	Message           string `json:"message"`
	Details           string `json:"details,omitempty"`
	RetryAfterSeconds int    `json:"retryAfterSeconds,omitempty"`
}

// ListingResponse состояние листинга
type ListingResponse struct {
	ListingID  string        `json:"listingId"`
	ExternalID string        `json:"externalId,omitempty"`
	Status     string        `json:"status" enums:"PENDING,ACTIVE,REJECTED,REMOVED"`
	Errors     []ErrorDetail `json:"errors,omitempty"`
}

// Address адрес покупателя
type Address struct {
	Line1   string `json:"line1" validate:"required"`
	City    string `json:"city" validate:"required"`
	Region  string `json:"region" validate:"required"`
	Postal  string `json:"postal" validate:"required"`
	Country string `json:"country" validate:"required"`
}

// Buyer покупатель
type Buyer struct {
	Name    string  `json:"name" validate:"required"`
	Address Address `json:"address" validate:"required"`
}

// OrderItem позиция заказа
type OrderItem struct {
	SKU      string `json:"sku" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=1"`
	Price    Price  `json:"price" validate:"required"`
}

// OrderRequest запрос на создание заказа
type OrderRequest struct {
	Platform        string      `json:"platform" validate:"required"`
	SellerAccountID string      `json:"sellerAccountId" validate:"required"`
	ListingID       string      `json:"listingId,omitempty" validate:"required_without=SKU"`
	SKU             string      `json:"sku,omitempty" validate:"required_without=ListingID"`
	Buyer           *Buyer      `json:"buyer,omitempty" validate:"omitempty"`
	Items           []OrderItem `json:"items" validate:"required,min=1,dive"`
	IdempotencyKey  string      `json:"idempotencyKey,omitempty"`
}

// OrderResponse состояние заказа
type OrderResponse struct {
	OrderID    string        `json:"orderId"`
	ExternalID string        `json:"externalId,omitempty"`
	Status     string        `json:"status" enums:"PENDING,CONFIRMED,FAILED"`
	Errors     []ErrorDetail `json:"errors,omitempty"`
}

// HealthResponse состояние сервиса
type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Version   string    `json:"version,omitempty"`
	Mode      string    `json:"mode,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
