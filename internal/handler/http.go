package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/marketplace-connector/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-connector/internal/middleware"
	"github.com/SergeyBogomolovv/marketplace-connector/internal/service"
	"github.com/SergeyBogomolovv/marketplace-connector/internal/wire"
	"github.com/SergeyBogomolovv/marketplace-connector/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const serviceName = "marketplace-connector"

type MarketplaceService interface {
	PublishListing(ctx context.Context, req service.ListingPublicationRequest) (entities.ListingResult, error)
	GetListing(ctx context.Context, listingID string) (entities.ListingResult, error)
	SubmitOrder(ctx context.Context, req service.OrderSubmissionRequest) (entities.OrderResult, error)
	GetOrder(ctx context.Context, orderID string) (entities.OrderResult, error)
}

type HTTPOptions struct {
	// AuthToken пустой - эндпоинты открыты
	AuthToken string
	Mode      string
	Version   string
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      MarketplaceService
	opts     HTTPOptions
}

func NewHTTPHandler(logger *slog.Logger, svc MarketplaceService, opts HTTPOptions) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
		opts:     opts,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Group(func(r chi.Router) {
			r.Use(middleware.BearerAuth(h.opts.AuthToken))

			r.Post("/listings", h.CreateListing)
			r.Get("/listings/{listing_id}", h.GetListing)
			r.Post("/orders", h.CreateOrder)
			r.Get("/orders/{order_id}", h.GetOrder)
		})
	})
}

// Health сообщает состояние сервиса.
// @Summary      Состояние сервиса
// @Tags         health
// @Produce      json
// @Success      200  {object}  wire.HealthResponse
// @Router       /v1/health [get]
func (h *HTTPHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, wire.HealthResponse{
		Status:    "UP",
		Service:   serviceName,
		Version:   h.opts.Version,
		Mode:      h.opts.Mode,
		Timestamp: time.Now().UTC(),
	}, http.StatusOK)
}

// CreateListing публикует листинг.
// @Summary      Опубликовать листинг
// @Description  Бизнес-отказ маркетплейса возвращается в теле с кодом 201
// @Tags         listings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        listing  body      wire.ListingRequest  true  "Листинг"
// @Success      201  {object}  wire.ListingResponse
// @Failure      400  {object}  utils.ErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Неверный токен"
// @Failure      503  {object}  utils.ErrorResponse "Маркетплейс недоступен"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /v1/listings [post]
func (h *HTTPHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body wire.ListingRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteError(w, utils.CodeInvalidRequest, "malformed json body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	req, err := ListingJSONToRequest(body)
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	res, err := h.svc.PublishListing(ctx, req)
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to create listing")
		return
	}

	utils.WriteJSON(w, wire.ListingResponseFromResult(res), http.StatusCreated)
}

// GetListing возвращает листинг по ID.
// @Summary      Получить листинг
// @Tags         listings
// @Produce      json
// @Security     BearerAuth
// @Param        listing_id  path      string  true  "Идентификатор листинга"
// @Success      200  {object}  wire.ListingResponse
// @Failure      401  {object}  utils.ErrorResponse "Неверный токен"
// @Failure      404  {object}  utils.ErrorResponse "Листинг не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /v1/listings/{listing_id} [get]
func (h *HTTPHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := h.svc.GetListing(ctx, chi.URLParam(r, "listing_id"))
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to get listing")
		return
	}

	utils.WriteJSON(w, wire.ListingResponseFromResult(res), http.StatusOK)
}

// CreateOrder создаёт заказ идемпотентно по заголовку Idempotency-Key.
// @Summary      Создать заказ
// @Description  Повтор с тем же ключом возвращает первый результат
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string             true  "Ключ идемпотентности"
// @Param        order            body      wire.OrderRequest  true  "Заказ"
// @Success      201  {object}  wire.OrderResponse
// @Failure      400  {object}  utils.ErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Неверный токен"
// @Failure      503  {object}  utils.ErrorResponse "Маркетплейс недоступен"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /v1/orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	key := strings.TrimSpace(r.Header.Get(wire.IdempotencyHeader))
	if key == "" {
		utils.WriteError(w, utils.CodeInvalidRequest, "Idempotency-Key header is required", http.StatusBadRequest)
		return
	}

	var body wire.OrderRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteError(w, utils.CodeInvalidRequest, "malformed json body", http.StatusBadRequest)
		return
	}
	if bodyKey := strings.TrimSpace(body.IdempotencyKey); bodyKey != "" && bodyKey != key {
		utils.WriteError(w, utils.CodeInvalidRequest, "idempotencyKey does not match Idempotency-Key header", http.StatusBadRequest)
		return
	}
	body.IdempotencyKey = key

	if err := h.validate.Struct(body); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	req, err := OrderJSONToRequest(body)
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	res, err := h.svc.SubmitOrder(ctx, req)
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to create order")
		return
	}

	w.Header().Set(wire.IdempotencyHeader, key)
	utils.WriteJSON(w, wire.OrderResponseFromResult(res), http.StatusCreated)
}

// GetOrder возвращает заказ по ID.
// @Summary      Получить заказ
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        order_id  path      string  true  "Идентификатор заказа"
// @Success      200  {object}  wire.OrderResponse
// @Failure      401  {object}  utils.ErrorResponse "Неверный токен"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /v1/orders/{order_id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := h.svc.GetOrder(ctx, chi.URLParam(r, "order_id"))
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to get order")
		return
	}

	utils.WriteJSON(w, wire.OrderResponseFromResult(res), http.StatusOK)
}

func (h *HTTPHandler) writeServiceError(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, entities.ErrInvalidCommand):
		utils.WriteValidationError(w, err)
	case errors.Is(err, entities.ErrListingNotFound):
		utils.WriteError(w, utils.CodeNotFound, "listing not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, utils.CodeNotFound, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrTransport), errors.Is(err, entities.ErrUnauthorized):
		h.logger.WarnContext(ctx, msg, slog.Any("error", err))
		utils.WriteError(w, utils.CodeUnavailable, "marketplace unavailable", http.StatusServiceUnavailable)
	default:
		h.logger.ErrorContext(ctx, msg, slog.Any("error", err))
		utils.WriteError(w, utils.CodeUnknown, "internal server error", http.StatusInternalServerError)
	}
}
