package stub

import (
	"strings"
	"time"

	"github.com/SergeyBogomolovv/marketplace-connector/internal/entities"
)

// Префиксы ключей идемпотентности, включающие симуляцию сбоев.
const (
	SentinelRateLimit = "SIM-RATE-"
	SentinelRetry     = "SIM-RETRY-"
	SentinelInvalid   = "SIM-INVALID-"
)

// IsSimulationKey reports whether key triggers a simulated failure in the stub.
// Real connectors never interpret keys this way.
func IsSimulationKey(key string) bool {
	_, ok := simulatedFailure(key)
	return ok
}

func simulatedFailure(key string) (entities.MarketplaceError, bool) {
	switch {
	case strings.HasPrefix(key, SentinelRateLimit):
		return entities.MarketplaceError{
			Code:       entities.CodeRateLimit,
			Message:    "Rate limited by downstream",
			RetryAfter: 5 * time.Second,
		}, true
	case strings.HasPrefix(key, SentinelRetry):
		return entities.MarketplaceError{
			Code:       entities.CodeRetryableUpstream,
			Message:    "Transient upstream failure",
			RetryAfter: 3 * time.Second,
		}, true
	case strings.HasPrefix(key, SentinelInvalid):
		return entities.MarketplaceError{
			Code:    entities.CodeInvalidRequest,
			Message: "Order payload flagged as invalid",
			Details: "idempotencyKey",
		}, true
	default:
		return entities.MarketplaceError{}, false
	}
}
