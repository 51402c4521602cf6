// Package stub implements a deterministic in-memory marketplace used for
// local demos and integration tests.
package stub

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SergeyBogomolovv/marketplace-connector/internal/entities"
	"github.com/google/uuid"
)

type Client struct {
	logger *slog.Logger
	store  *store
	newID  func() string
}

func New(logger *slog.Logger) *Client {
	return &Client{
		logger: logger.With(slog.String("client", "stub")),
		store:  &store{},
		newID:  uuid.NewString,
	}
}

func (c *Client) CreateListing(_ context.Context, cmd entities.ListingCommand) (entities.ListingResult, error) {
	if err := cmd.Validate(); err != nil {
		return entities.ListingResult{}, err
	}

	l := &listing{base: entities.ListingResult{
		ListingID:  c.newID(),
		ExternalID: fmt.Sprintf("%s-%s", cmd.Platform, cmd.SKU),
	}}
	c.store.putListing(l)

	res := l.observe()
	stubListingObservations.WithLabelValues(string(res.Status)).Inc()
	c.logger.Debug("listing created", slog.String("listing_id", res.ListingID), slog.String("sku", cmd.SKU))
	return res, nil
}

func (c *Client) GetListing(_ context.Context, listingID string) (entities.ListingResult, error) {
	l, ok := c.store.listing(strings.TrimSpace(listingID))
	if !ok {
		return entities.ListingResult{}, fmt.Errorf("%w: %s", entities.ErrListingNotFound, listingID)
	}

	res := l.observe()
	stubListingObservations.WithLabelValues(string(res.Status)).Inc()
	return res, nil
}

func (c *Client) CreateOrder(_ context.Context, cmd entities.OrderCommand) (entities.OrderResult, error) {
	key := strings.TrimSpace(cmd.IdempotencyKey)
	if key == "" {
		return entities.OrderResult{}, fmt.Errorf("%w: idempotency key is required", entities.ErrInvalidCommand)
	}

	// Повтор с уже известным ключом отдаёт сохранённый результат без повторной валидации.
	if slot, ok := c.store.slot(key); ok {
		stubOrders.WithLabelValues("replayed").Inc()
		return slot.wait(), nil
	}

	if err := cmd.Validate(); err != nil {
		return entities.OrderResult{}, err
	}

	slot, owner := c.store.claim(key)
	if !owner {
		stubOrders.WithLabelValues("replayed").Inc()
		return slot.wait(), nil
	}

	res := c.resolveOrder(key, cmd)
	slot.resolve(res)
	return slot.wait(), nil
}

func (c *Client) GetOrder(_ context.Context, orderID string) (entities.OrderResult, error) {
	res, ok := c.store.order(strings.TrimSpace(orderID))
	if !ok {
		return entities.OrderResult{}, fmt.Errorf("%w: %s", entities.ErrOrderNotFound, orderID)
	}
	return res.Clone(), nil
}

// resolveOrder runs exactly once per idempotency key.
func (c *Client) resolveOrder(key string, cmd entities.OrderCommand) entities.OrderResult {
	if failure, ok := simulatedFailure(key); ok {
		stubOrders.WithLabelValues("simulated_failure").Inc()
		c.logger.Debug("simulated order failure", slog.String("idempotency_key", key), slog.String("code", failure.Code))
		return entities.FailedOrder(failure)
	}

	res := entities.OrderResult{
		OrderID:    c.newID(),
		ExternalID: fmt.Sprintf("%s-%s", cmd.Platform, c.newID()),
		Status:     entities.OrderStatusConfirmed,
	}
	c.store.putOrder(res)

	stubOrders.WithLabelValues("created").Inc()
	c.logger.Debug("order created", slog.String("order_id", res.OrderID), slog.String("idempotency_key", key))
	return res
}
