package handler

import (
	"fmt"

	"github.com/SergeyBogomolovv/marketplace-connector/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-connector/internal/service"
	"github.com/SergeyBogomolovv/marketplace-connector/internal/wire"
	"github.com/shopspring/decimal"
)

func parseAmount(p wire.Price) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(p.Amount)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: invalid amount %q", entities.ErrInvalidCommand, p.Amount)
	}
	return d, nil
}

func ListingJSONToRequest(l wire.ListingRequest) (service.ListingPublicationRequest, error) {
	amount, err := parseAmount(l.Price)
	if err != nil {
		return service.ListingPublicationRequest{}, err
	}

	media := make([]string, 0, len(l.Media))
	for _, m := range l.Media {
		media = append(media, m.URL)
	}

	return service.ListingPublicationRequest{
		Platform:        l.Platform,
		SellerAccountID: l.SellerAccountID,
		SKU:             l.SKU,
		Title:           l.Title,
		Description:     l.Description,
		Price:           amount,
		Currency:        l.Price.Currency,
		Quantity:        l.Quantity,
		MediaURLs:       media,
	}, nil
}

func BuyerJSONToDetails(b *wire.Buyer) *service.BuyerDetails {
	if b == nil {
		return nil
	}
	return &service.BuyerDetails{
		Name: b.Name,
		Address: service.AddressDetails{
			Line1:   b.Address.Line1,
			City:    b.Address.City,
			Region:  b.Address.Region,
			Postal:  b.Address.Postal,
			Country: b.Address.Country,
		},
	}
}

func OrderJSONToRequest(o wire.OrderRequest) (service.OrderSubmissionRequest, error) {
	items := make([]service.OrderSubmissionItem, 0, len(o.Items))
	for _, it := range o.Items {
		amount, err := parseAmount(it.Price)
		if err != nil {
			return service.OrderSubmissionRequest{}, err
		}
		items = append(items, service.OrderSubmissionItem{
			SKU:      it.SKU,
			Quantity: it.Quantity,
			Price:    amount,
			Currency: it.Price.Currency,
		})
	}

	return service.OrderSubmissionRequest{
		Platform:        o.Platform,
		SellerAccountID: o.SellerAccountID,
		ListingID:       o.ListingID,
		SKU:             o.SKU,
		Buyer:           BuyerJSONToDetails(o.Buyer),
		Items:           items,
		IdempotencyKey:  o.IdempotencyKey,
	}, nil
}
