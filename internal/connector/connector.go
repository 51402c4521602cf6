// Package connector defines the marketplace client contract and selects
// the implementation configured for the process.
package connector

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/marketplace-connector/internal/config"
	"github.com/SergeyBogomolovv/marketplace-connector/internal/connector/remote"
	"github.com/SergeyBogomolovv/marketplace-connector/internal/connector/stub"
	"github.com/SergeyBogomolovv/marketplace-connector/internal/entities"
)

// Client is implemented identically by the simulator and the remote adapter.
//
// Validation failures are returned as errors wrapping entities.ErrInvalidCommand,
// unknown ids as entities.ErrListingNotFound / entities.ErrOrderNotFound and
// transport problems as entities.ErrTransport. Business failures are not errors:
// they come back as results with a FAILED status and coded entries in Errors.
type Client interface {
	CreateListing(ctx context.Context, cmd entities.ListingCommand) (entities.ListingResult, error)
	GetListing(ctx context.Context, listingID string) (entities.ListingResult, error)
	CreateOrder(ctx context.Context, cmd entities.OrderCommand) (entities.OrderResult, error)
	GetOrder(ctx context.Context, orderID string) (entities.OrderResult, error)
}

type Mode string

const (
	ModeStub   Mode = "stub"
	ModeRemote Mode = "remote"
)

var (
	_ Client = (*stub.Client)(nil)
	_ Client = (*remote.Client)(nil)
)

// New builds the client selected by cfg.Mode. It is meant to be called once at startup.
func New(logger *slog.Logger, cfg config.Client) (Client, error) {
	switch Mode(cfg.Mode) {
	case ModeStub:
		logger.Warn("marketplace client running in stub mode, live marketplace calls are disabled")
		return stub.New(logger), nil
	case ModeRemote:
		logger.Info("marketplace client running in remote mode", slog.String("base_url", cfg.Remote.BaseURL))
		return remote.New(logger, remote.Options{
			BaseURL:        cfg.Remote.BaseURL,
			BearerToken:    cfg.Remote.BearerToken,
			ConnectTimeout: cfg.Remote.ConnectTimeout,
			ReadTimeout:    cfg.Remote.ReadTimeout,
		})
	default:
		return nil, fmt.Errorf("unknown marketplace client mode %q", cfg.Mode)
	}
}
