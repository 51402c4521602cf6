package service

import "github.com/shopspring/decimal"

// ListingPublicationRequest is what upstream catalog code hands over to publish a listing.
type ListingPublicationRequest struct {
	Platform        string
	SellerAccountID string
	SKU             string
	Title           string
	Description     string
	Price           decimal.Decimal
	Currency        string
	Quantity        int
	MediaURLs       []string
}

type AddressDetails struct {
	Line1   string
	City    string
	Region  string
	Postal  string
	Country string
}

type BuyerDetails struct {
	Name    string
	Address AddressDetails
}

type OrderSubmissionItem struct {
	SKU      string
	Quantity int
	Price    decimal.Decimal
	Currency string
}

// OrderSubmissionRequest заказ от внутренней системы; ключ идемпотентности обязателен.
type OrderSubmissionRequest struct {
	Platform        string
	SellerAccountID string
	ListingID       string
	SKU             string
	Buyer           *BuyerDetails
	Items           []OrderSubmissionItem
	IdempotencyKey  string
}
