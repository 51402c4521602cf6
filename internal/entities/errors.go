package entities

import (
	"errors"
	"time"
)

var (
	ErrInvalidCommand  = errors.New("invalid command")
	ErrListingNotFound = errors.New("listing not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrTransport       = errors.New("connector transport failure")
	ErrUnauthorized    = errors.New("connector rejected credentials")
)

// Машиночитаемые коды ошибок маркетплейса.
const (
	CodeRateLimit         = "RATE_LIMIT"
	CodeRetryableUpstream = "RETRYABLE_UPSTREAM"
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeNotFound          = "NOT_FOUND"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeUnknown           = "UNKNOWN"
)

// MarketplaceError is a business failure reported by a connector as data.
type MarketplaceError struct {
	Code       string
	Message    string
	Details    string
	RetryAfter time.Duration
}

func (e MarketplaceError) Retryable() bool {
	return e.Code == CodeRateLimit || e.Code == CodeRetryableUpstream
}
