package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/marketplace-connector/internal/config"
	"github.com/SergeyBogomolovv/marketplace-connector/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-connector/pkg/utils"
)

type Client interface {
	CreateListing(ctx context.Context, cmd entities.ListingCommand) (entities.ListingResult, error)
	GetListing(ctx context.Context, listingID string) (entities.ListingResult, error)
	CreateOrder(ctx context.Context, cmd entities.OrderCommand) (entities.OrderResult, error)
	GetOrder(ctx context.Context, orderID string) (entities.OrderResult, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

const (
	opCreateListing = "create_listing"
	opGetListing    = "get_listing"
	opCreateOrder   = "create_order"
	opGetOrder      = "get_order"
)

type marketplaceService struct {
	logger *slog.Logger
	client Client
	cache  Cache
	retry  utils.RetryConfig
}

func NewMarketplaceService(logger *slog.Logger, client Client, cache Cache, cfg config.Retry) *marketplaceService {
	return &marketplaceService{
		logger: logger.With(slog.String("service", "marketplace")),
		client: client,
		cache:  cache,
		retry: utils.RetryConfig{
			MaxAttempts:  cfg.MaxAttempts,
			InitialDelay: cfg.InitialDelay,
			MaxDelay:     5 * time.Second,
			Multiplier:   2,
			// Повторяем только транспортные сбои: остальное детерминировано.
			RetryIf: func(err error) bool { return errors.Is(err, entities.ErrTransport) },
		},
	}
}

func (s *marketplaceService) PublishListing(ctx context.Context, req ListingPublicationRequest) (entities.ListingResult, error) {
	cmd, err := toListingCommand(req)
	if err != nil {
		clientCallsTotal.WithLabelValues(opCreateListing, outcome(err)).Inc()
		return entities.ListingResult{}, err
	}

	var res entities.ListingResult
	err = s.call(ctx, opCreateListing, func() error {
		res, err = s.client.CreateListing(ctx, cmd)
		return err
	})
	if err != nil {
		return entities.ListingResult{}, fmt.Errorf("failed to publish listing %s: %w", cmd.SKU, err)
	}

	s.countFailures(opCreateListing, res.Errors)
	s.logger.Debug("listing published",
		slog.String("listing_id", res.ListingID),
		slog.String("sku", cmd.SKU),
		slog.String("status", string(res.Status)),
	)
	return res, nil
}

func (s *marketplaceService) GetListing(ctx context.Context, listingID string) (entities.ListingResult, error) {
	listingID = strings.TrimSpace(listingID)

	var (
		res entities.ListingResult
		err error
	)
	err = s.call(ctx, opGetListing, func() error {
		res, err = s.client.GetListing(ctx, listingID)
		return err
	})
	if err != nil {
		return entities.ListingResult{}, err
	}
	return res, nil
}

func (s *marketplaceService) SubmitOrder(ctx context.Context, req OrderSubmissionRequest) (entities.OrderResult, error) {
	cmd, err := toOrderCommand(req)
	if err != nil {
		clientCallsTotal.WithLabelValues(opCreateOrder, outcome(err)).Inc()
		return entities.OrderResult{}, err
	}

	// Все повторы идут с тем же ключом, поэтому заказ не задвоится.
	var res entities.OrderResult
	err = s.call(ctx, opCreateOrder, func() error {
		res, err = s.client.CreateOrder(ctx, cmd)
		return err
	})
	if err != nil {
		return entities.OrderResult{}, fmt.Errorf("failed to submit order %s: %w", cmd.IdempotencyKey, err)
	}

	s.countFailures(opCreateOrder, res.Errors)
	s.remember(res)
	s.logger.Debug("order submitted",
		slog.String("order_id", res.OrderID),
		slog.String("idempotency_key", cmd.IdempotencyKey),
		slog.String("status", string(res.Status)),
	)
	return res, nil
}

func (s *marketplaceService) GetOrder(ctx context.Context, orderID string) (entities.OrderResult, error) {
	orderID = strings.TrimSpace(orderID)

	if data, ok := s.cache.Get(orderID); ok {
		var res entities.OrderResult
		err := res.Unmarshal(data)
		if err == nil {
			resultCacheTotal.WithLabelValues("hit").Inc()
			return res, nil
		}
		s.logger.Error("failed to unmarshal cached order", slog.String("order_id", orderID), slog.Any("error", err))
	}
	resultCacheTotal.WithLabelValues("miss").Inc()

	var (
		res entities.OrderResult
		err error
	)
	err = s.call(ctx, opGetOrder, func() error {
		res, err = s.client.GetOrder(ctx, orderID)
		return err
	})
	if err != nil {
		return entities.OrderResult{}, err
	}

	s.remember(res)
	return res, nil
}

// remember кладёт в кэш только заказы в конечном статусе.
func (s *marketplaceService) remember(res entities.OrderResult) {
	if res.OrderID == "" || !res.Status.Terminal() {
		return
	}
	data, err := res.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_id", res.OrderID), slog.Any("error", err))
		return
	}
	s.cache.Set(res.OrderID, data)
}

func (s *marketplaceService) call(ctx context.Context, op string, fn func() error) error {
	start := time.Now()
	attempt := 0
	err := utils.Retry(ctx, s.retry, func() error {
		attempt++
		err := fn()
		if err != nil && attempt < s.retry.MaxAttempts && errors.Is(err, entities.ErrTransport) {
			s.logger.Warn("marketplace call failed, retrying",
				slog.String("operation", op),
				slog.Int("attempt", attempt),
				slog.Any("error", err),
			)
		}
		return err
	})

	clientCallDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	clientCallsTotal.WithLabelValues(op, outcome(err)).Inc()
	return err
}

func (s *marketplaceService) countFailures(op string, errs []entities.MarketplaceError) {
	for _, e := range errs {
		businessFailuresTotal.WithLabelValues(op, e.Code).Inc()
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, entities.ErrInvalidCommand):
		return "invalid"
	case errors.Is(err, entities.ErrListingNotFound), errors.Is(err, entities.ErrOrderNotFound):
		return "not_found"
	case errors.Is(err, entities.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, entities.ErrTransport):
		return "transport"
	default:
		return "error"
	}
}
