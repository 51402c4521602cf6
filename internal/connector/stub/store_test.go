package stub

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/SergeyBogomolovv/marketplace-connector/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_AllocatesIDsOncePerKey(t *testing.T) {
	var allocated atomic.Int64
	c := New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c.newID = func() string {
		return "id-" + strconv.FormatInt(allocated.Add(1), 10)
	}

	price, err := entities.NewMoney(decimal.NewFromInt(25), "USD")
	require.NoError(t, err)
	cmd := entities.OrderCommand{
		Platform:        "EBAY",
		SellerAccountID: "seller-1",
		ListingID:       "lst-1",
		Items:           []entities.OrderItem{{SKU: "SKU-1", Quantity: 1, Price: price}},
		IdempotencyKey:  "alloc-key",
	}

	var wg sync.WaitGroup
	for range 16 {
		wg.Go(func() {
			_, err := c.CreateOrder(context.Background(), cmd)
			assert.NoError(t, err)
		})
	}
	wg.Wait()

	// Один идентификатор заказа и один внешний идентификатор.
	assert.Equal(t, int64(2), allocated.Load())
}

func TestListing_Observe(t *testing.T) {
	l := &listing{base: entities.ListingResult{ListingID: "lst-1"}}

	assert.Equal(t, entities.ListingStatusPending, l.observe().Status)
	assert.Equal(t, entities.ListingStatusActive, l.observe().Status)
	assert.Equal(t, entities.ListingStatusActive, l.observe().Status)
	assert.Equal(t, int64(3), l.observations.Load())
}

func TestStore_Claim(t *testing.T) {
	s := &store{}

	first, owner := s.claim("k")
	assert.True(t, owner)

	second, owner := s.claim("k")
	assert.False(t, owner)
	assert.Same(t, first, second)

	first.resolve(entities.OrderResult{OrderID: "o-1", Status: entities.OrderStatusConfirmed})
	assert.Equal(t, "o-1", second.wait().OrderID)
}
