package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/marketplace-connector/internal/config"
	"github.com/SergeyBogomolovv/marketplace-connector/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-connector/internal/service"
	"github.com/SergeyBogomolovv/marketplace-connector/internal/wire"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

const dlqReasonHeader = "x-dlq-reason"

type OrderSubmitter interface {
	SubmitOrder(ctx context.Context, req service.OrderSubmissionRequest) (entities.OrderResult, error)
}

type kafkaHandler struct {
	dlq      *kafka.Writer
	reader   *kafka.Reader
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderSubmitter
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, svc OrderSubmitter) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Balancer:               &kafka.LeastBytes{},
			BatchTimeout:           cfg.BatchTimeout,
			AllowAutoTopicCreation: true,
		},
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		h.process(ctx, m)

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) process(ctx context.Context, m kafka.Message) {
	ordersInProgress.Inc()
	defer ordersInProgress.Dec()
	start := time.Now()
	defer func() { orderProcessingDuration.Observe(time.Since(start).Seconds()) }()

	// Транспортные сбои сервис уже повторил, здесь остаётся только DLQ.
	res, err := h.handleSubmitOrder(ctx, m)
	if err != nil {
		h.logger.Error("failed to handle message",
			slog.String("key", string(m.Key)),
			slog.Int64("offset", m.Offset),
			slog.Any("error", err),
		)
		// В библиотеке уже есть retry
		if err := h.WriteToDLQ(ctx, m, err); err != nil {
			h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
		}
		return
	}

	ordersProcessed.WithLabelValues(string(res.Status)).Inc()
	h.logger.Debug("order submitted from kafka",
		slog.String("order_id", res.OrderID),
		slog.String("status", string(res.Status)),
	)
}

func (h *kafkaHandler) handleSubmitOrder(ctx context.Context, m kafka.Message) (entities.OrderResult, error) {
	var order wire.OrderRequest
	if err := json.Unmarshal(m.Value, &order); err != nil {
		return entities.OrderResult{}, fmt.Errorf("failed to unmarshal order: %w", err)
	}

	// ключ сообщения служит ключом идемпотентности, если в теле его нет
	if strings.TrimSpace(order.IdempotencyKey) == "" {
		order.IdempotencyKey = string(m.Key)
	}

	if err := h.validate.Struct(order); err != nil {
		return entities.OrderResult{}, fmt.Errorf("invalid order data: %w", err)
	}

	req, err := OrderJSONToRequest(order)
	if err != nil {
		return entities.OrderResult{}, err
	}
	return h.svc.SubmitOrder(ctx, req)
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message, cause error) error {
	reason := dlqReason(cause)
	err := h.dlq.WriteMessages(ctx, kafka.Message{
		Topic:   m.Topic + "-dlq",
		Key:     m.Key,
		Value:   m.Value,
		Headers: append(m.Headers, kafka.Header{Key: dlqReasonHeader, Value: []byte(reason)}),
	})
	if err == nil {
		ordersDLQ.WithLabelValues(reason).Inc()
	}
	return err
}

func dlqReason(err error) string {
	var ve validator.ValidationErrors
	switch {
	case errors.As(err, &ve), errors.Is(err, entities.ErrInvalidCommand):
		return "invalid"
	case errors.Is(err, entities.ErrTransport), errors.Is(err, entities.ErrUnauthorized):
		return "unavailable"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		var se *json.SyntaxError
		var te *json.UnmarshalTypeError
		if errors.As(err, &se) || errors.As(err, &te) {
			return "malformed"
		}
		return "error"
	}
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
