package entities

import (
	"fmt"
	"slices"
	"strings"
)

type ListingStatus string

const (
	ListingStatusPending  ListingStatus = "PENDING"
	ListingStatusActive   ListingStatus = "ACTIVE"
	ListingStatusRejected ListingStatus = "REJECTED"
	ListingStatusRemoved  ListingStatus = "REMOVED"
)

func ParseListingStatus(s string) (ListingStatus, error) {
	switch status := ListingStatus(strings.ToUpper(strings.TrimSpace(s))); status {
	case ListingStatusPending, ListingStatusActive, ListingStatusRejected, ListingStatusRemoved:
		return status, nil
	default:
		return "", fmt.Errorf("unknown listing status %q", s)
	}
}

type ListingCommand struct {
	Platform        string `validate:"notblank"`
	SellerAccountID string `validate:"notblank"`
	SKU             string `validate:"notblank"`
	Title           string `validate:"notblank"`
	Description     string `validate:"notblank"`
	Price           Money
	Quantity        int      `validate:"gte=1"`
	Media           []string `validate:"dive,notblank"`
}

// NewListingCommand нормализует поля команды и проверяет её.
func NewListingCommand(platform, sellerAccountID, sku, title, description string, price Money, quantity int, media []string) (ListingCommand, error) {
	c := ListingCommand{
		Platform:        strings.ToUpper(strings.TrimSpace(platform)),
		SellerAccountID: strings.TrimSpace(sellerAccountID),
		SKU:             strings.TrimSpace(sku),
		Title:           strings.TrimSpace(title),
		Description:     strings.TrimSpace(description),
		Price:           price,
		Quantity:        quantity,
		Media:           CleanMedia(media),
	}
	if err := c.Validate(); err != nil {
		return ListingCommand{}, err
	}
	return c, nil
}

func (c ListingCommand) Validate() error {
	return validateStruct(c)
}

func (c ListingCommand) HasMedia() bool {
	return len(c.Media) > 0
}

// CleanMedia trims media URLs and drops blank entries.
func CleanMedia(urls []string) []string {
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if u = strings.TrimSpace(u); u != "" {
			out = append(out, u)
		}
	}
	return out
}

type ListingResult struct {
	ListingID  string
	ExternalID string
	Status     ListingStatus
	Errors     []MarketplaceError
}

func (r ListingResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// Clone отдаёт копию, не разделяющую слайс ошибок с оригиналом.
func (r ListingResult) Clone() ListingResult {
	r.Errors = slices.Clone(r.Errors)
	return r
}
