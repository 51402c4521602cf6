package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/marketplace-connector/internal/entities"
	mocks "github.com/SergeyBogomolovv/marketplace-connector/internal/handler/mocks"
	"github.com/SergeyBogomolovv/marketplace-connector/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestKafkaHandler_HandleSubmitOrder(t *testing.T) {
	const order = `{"platform":"ebay","sellerAccountId":"s-1","listingId":"l-1","items":[{"sku":"SKU-1","quantity":1,"price":{"amount":"9.99","currency":"EUR"}}]}`

	testCases := []struct {
		name         string
		msg          kafka.Message
		mockBehavior func(svc *mocks.MockMarketplaceService)
		wantErr      bool
		wantReason   string
	}{
		{
			name: "message key becomes idempotency key",
			msg:  kafka.Message{Key: []byte("order-1"), Value: []byte(order)},
			mockBehavior: func(svc *mocks.MockMarketplaceService) {
				svc.EXPECT().SubmitOrder(mock.Anything, mock.MatchedBy(func(req service.OrderSubmissionRequest) bool {
					return req.IdempotencyKey == "order-1" && req.ListingID == "l-1"
				})).Return(entities.OrderResult{OrderID: "o-1", Status: entities.OrderStatusConfirmed}, nil).Once()
			},
		},
		{
			name:         "malformed json",
			msg:          kafka.Message{Key: []byte("order-1"), Value: []byte(`{"platform":`)},
			mockBehavior: func(svc *mocks.MockMarketplaceService) {},
			wantErr:      true,
			wantReason:   "malformed",
		},
		{
			name:         "invalid payload",
			msg:          kafka.Message{Key: []byte("order-1"), Value: []byte(`{"platform":"ebay","items":[]}`)},
			mockBehavior: func(svc *mocks.MockMarketplaceService) {},
			wantErr:      true,
			wantReason:   "invalid",
		},
		{
			name: "marketplace unavailable",
			msg:  kafka.Message{Key: []byte("order-1"), Value: []byte(order)},
			mockBehavior: func(svc *mocks.MockMarketplaceService) {
				svc.EXPECT().SubmitOrder(mock.Anything, mock.Anything).
					Return(entities.OrderResult{}, errors.Join(entities.ErrTransport, errors.New("timeout"))).Once()
			},
			wantErr:    true,
			wantReason: "unavailable",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockMarketplaceService(t)
			tc.mockBehavior(svc)

			h := &kafkaHandler{
				logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
				validate: validator.New(),
				svc:      svc,
			}

			_, err := h.handleSubmitOrder(context.Background(), tc.msg)
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, tc.wantReason, dlqReason(err))
		})
	}
}
