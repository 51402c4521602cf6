package service

import (
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/marketplace-connector/internal/entities"
)

func toListingCommand(req ListingPublicationRequest) (entities.ListingCommand, error) {
	price, err := entities.NewMoney(req.Price, req.Currency)
	if err != nil {
		return entities.ListingCommand{}, fmt.Errorf("price: %w", err)
	}
	return entities.NewListingCommand(
		req.Platform,
		req.SellerAccountID,
		req.SKU,
		req.Title,
		req.Description,
		price,
		req.Quantity,
		req.MediaURLs,
	)
}

// toOrderCommand отсекает заведомо невалидные заказы до обращения к маркетплейсу.
func toOrderCommand(req OrderSubmissionRequest) (entities.OrderCommand, error) {
	if strings.TrimSpace(req.ListingID) == "" && strings.TrimSpace(req.SKU) == "" {
		return entities.OrderCommand{}, fmt.Errorf("%w: listing id or sku is required", entities.ErrInvalidCommand)
	}
	if len(req.Items) == 0 {
		return entities.OrderCommand{}, fmt.Errorf("%w: order has no items", entities.ErrInvalidCommand)
	}
	if strings.TrimSpace(req.IdempotencyKey) == "" {
		return entities.OrderCommand{}, fmt.Errorf("%w: idempotency key is required", entities.ErrInvalidCommand)
	}

	items := make([]entities.OrderItem, 0, len(req.Items))
	for i, it := range req.Items {
		price, err := entities.NewMoney(it.Price, it.Currency)
		if err != nil {
			return entities.OrderCommand{}, fmt.Errorf("item %d price: %w", i, err)
		}
		item, err := entities.NewOrderItem(it.SKU, it.Quantity, price)
		if err != nil {
			return entities.OrderCommand{}, fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, item)
	}

	var buyer *entities.Buyer
	if req.Buyer != nil {
		a := req.Buyer.Address
		address, err := entities.NewAddress(a.Line1, a.City, a.Region, a.Postal, a.Country)
		if err != nil {
			return entities.OrderCommand{}, fmt.Errorf("buyer address: %w", err)
		}
		b, err := entities.NewBuyer(req.Buyer.Name, address)
		if err != nil {
			return entities.OrderCommand{}, fmt.Errorf("buyer: %w", err)
		}
		buyer = &b
	}

	return entities.NewOrderCommand(req.Platform, req.SellerAccountID, req.ListingID, req.SKU, buyer, items, req.IdempotencyKey)
}
