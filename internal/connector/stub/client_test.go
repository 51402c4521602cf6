package stub_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/SergeyBogomolovv/marketplace-connector/internal/connector/stub"
	"github.com/SergeyBogomolovv/marketplace-connector/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient() *stub.Client {
	return stub.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func money(t *testing.T, amount string) entities.Money {
	t.Helper()
	m, err := entities.NewMoney(decimal.RequireFromString(amount), "USD")
	require.NoError(t, err)
	return m
}

func listingCommand(t *testing.T) entities.ListingCommand {
	return entities.ListingCommand{
		Platform:        "EBAY",
		SellerAccountID: "seller-1",
		SKU:             "SKU-1",
		Title:           "Charizard",
		Description:     "Base set, near mint",
		Price:           money(t, "10"),
		Quantity:        1,
	}
}

func orderCommand(t *testing.T, key string) entities.OrderCommand {
	return entities.OrderCommand{
		Platform:        "EBAY",
		SellerAccountID: "seller-1",
		SKU:             "SKU-1",
		Items: []entities.OrderItem{
			{SKU: "SKU-1", Quantity: 1, Price: money(t, "25")},
		},
		IdempotencyKey: key,
	}
}

func TestClient_ListingLifecycle(t *testing.T) {
	ctx := context.Background()
	c := newClient()

	created, err := c.CreateListing(ctx, listingCommand(t))
	require.NoError(t, err)
	assert.Equal(t, entities.ListingStatusPending, created.Status)
	assert.NotEmpty(t, created.ListingID)
	assert.Equal(t, "EBAY-SKU-1", created.ExternalID)
	assert.False(t, created.HasErrors())

	for range 3 {
		fetched, err := c.GetListing(ctx, created.ListingID)
		require.NoError(t, err)
		assert.Equal(t, entities.ListingStatusActive, fetched.Status)
		assert.Equal(t, created.ListingID, fetched.ListingID)
	}

	// Ранее возвращённый результат не меняется.
	assert.Equal(t, entities.ListingStatusPending, created.Status)
}

func TestClient_CreateListingRejectsInvalid(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(c *entities.ListingCommand)
	}{
		{name: "zero quantity", mutate: func(c *entities.ListingCommand) { c.Quantity = 0 }},
		{name: "blank sku", mutate: func(c *entities.ListingCommand) { c.SKU = "  " }},
		{name: "blank platform", mutate: func(c *entities.ListingCommand) { c.Platform = "" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := listingCommand(t)
			tc.mutate(&cmd)

			res, err := newClient().CreateListing(context.Background(), cmd)
			assert.ErrorIs(t, err, entities.ErrInvalidCommand)
			assert.Empty(t, res.ListingID)
		})
	}
}

func TestClient_GetListingNotFound(t *testing.T) {
	_, err := newClient().GetListing(context.Background(), "missing")
	assert.ErrorIs(t, err, entities.ErrListingNotFound)
}

func TestClient_OrderIdempotency(t *testing.T) {
	ctx := context.Background()
	c := newClient()

	first, err := c.CreateOrder(ctx, orderCommand(t, "idemp-123"))
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusConfirmed, first.Status)
	assert.NotEmpty(t, first.OrderID)

	second, err := c.CreateOrder(ctx, orderCommand(t, "idemp-123"))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	fetched, err := c.GetOrder(ctx, first.OrderID)
	require.NoError(t, err)
	assert.Equal(t, first, fetched)

	other, err := c.CreateOrder(ctx, orderCommand(t, "idemp-456"))
	require.NoError(t, err)
	assert.NotEqual(t, first.OrderID, other.OrderID)
}

func TestClient_RepeatedKeySkipsValidation(t *testing.T) {
	ctx := context.Background()
	c := newClient()

	first, err := c.CreateOrder(ctx, orderCommand(t, "idemp-1"))
	require.NoError(t, err)

	broken := orderCommand(t, "idemp-1")
	broken.Items = nil
	again, err := c.CreateOrder(ctx, broken)
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestClient_CreateOrderRejectsInvalid(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(c *entities.OrderCommand)
	}{
		{name: "blank key", mutate: func(c *entities.OrderCommand) { c.IdempotencyKey = "   " }},
		{name: "no items", mutate: func(c *entities.OrderCommand) { c.Items = nil }},
		{name: "no listing reference", mutate: func(c *entities.OrderCommand) { c.SKU = ""; c.ListingID = "" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := orderCommand(t, "idemp-"+tc.name)
			tc.mutate(&cmd)

			c := newClient()
			_, err := c.CreateOrder(context.Background(), cmd)
			assert.ErrorIs(t, err, entities.ErrInvalidCommand)

			// Отклонённый запрос не занимает ключ.
			if cmd.IdempotencyKey != "   " {
				res, err := c.CreateOrder(context.Background(), orderCommand(t, cmd.IdempotencyKey))
				require.NoError(t, err)
				assert.Equal(t, entities.OrderStatusConfirmed, res.Status)
			}
		})
	}
}

func TestClient_SimulatedFailures(t *testing.T) {
	testCases := []struct {
		key       string
		wantCode  string
		retryable bool
	}{
		{key: "SIM-RATE-001", wantCode: entities.CodeRateLimit, retryable: true},
		{key: "SIM-RETRY-001", wantCode: entities.CodeRetryableUpstream, retryable: true},
		{key: "SIM-INVALID-001", wantCode: entities.CodeInvalidRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			ctx := context.Background()
			c := newClient()
			assert.True(t, stub.IsSimulationKey(tc.key))

			first, err := c.CreateOrder(ctx, orderCommand(t, tc.key))
			require.NoError(t, err)
			assert.Equal(t, entities.OrderStatusFailed, first.Status)
			require.Len(t, first.Errors, 1)
			assert.Equal(t, tc.wantCode, first.Errors[0].Code)
			assert.Equal(t, tc.retryable, first.Errors[0].Retryable())
			assert.Empty(t, first.OrderID)

			for range 3 {
				again, err := c.CreateOrder(ctx, orderCommand(t, tc.key))
				require.NoError(t, err)
				assert.Equal(t, first, again)
			}

			_, err = c.GetOrder(ctx, first.OrderID)
			assert.ErrorIs(t, err, entities.ErrOrderNotFound)
		})
	}
}

func TestClient_ResultsAreIsolated(t *testing.T) {
	ctx := context.Background()
	c := newClient()

	first, err := c.CreateOrder(ctx, orderCommand(t, "SIM-RATE-002"))
	require.NoError(t, err)
	first.Errors[0].Code = "MUTATED"

	again, err := c.CreateOrder(ctx, orderCommand(t, "SIM-RATE-002"))
	require.NoError(t, err)
	assert.Equal(t, entities.CodeRateLimit, again.Errors[0].Code)
}

func TestClient_GetOrderNotFound(t *testing.T) {
	_, err := newClient().GetOrder(context.Background(), "missing")
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	assert.False(t, stub.IsSimulationKey("idemp-1"))
}

func TestClient_ConcurrentFirstCalls(t *testing.T) {
	const callers = 64

	ctx := context.Background()
	c := newClient()

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = make(map[string]struct{})
	)
	start := make(chan struct{})
	for range callers {
		wg.Go(func() {
			<-start
			res, err := c.CreateOrder(ctx, orderCommand(t, "race-key"))
			assert.NoError(t, err)
			assert.Equal(t, entities.OrderStatusConfirmed, res.Status)

			mu.Lock()
			ids[res.OrderID] = struct{}{}
			mu.Unlock()
		})
	}
	close(start)
	wg.Wait()

	assert.Len(t, ids, 1)
}

func TestClient_ConcurrentListingObservations(t *testing.T) {
	ctx := context.Background()
	c := newClient()

	created, err := c.CreateListing(ctx, listingCommand(t))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 32 {
		wg.Go(func() {
			res, err := c.GetListing(ctx, created.ListingID)
			assert.NoError(t, err)
			assert.Equal(t, entities.ListingStatusActive, res.Status)
		})
	}
	wg.Wait()
}
