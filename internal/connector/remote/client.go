// Package remote talks to a marketplace connector backend over HTTP/JSON.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/marketplace-connector/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-connector/internal/wire"
	"github.com/SergeyBogomolovv/marketplace-connector/pkg/utils"
)

const (
	defaultConnectTimeout = 5 * time.Second
	defaultReadTimeout    = 30 * time.Second

	// ограничение на размер тела ответа с ошибкой
	maxErrorBody = 64 << 10
)

type Options struct {
	BaseURL        string
	BearerToken    string
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
}

type Client struct {
	logger  *slog.Logger
	baseURL string
	token   string
	http    *http.Client
}

func New(logger *slog.Logger, opts Options) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	u, err := url.Parse(base)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid remote base url %q", opts.BaseURL)
	}

	connectTimeout := opts.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = defaultConnectTimeout
	}
	readTimeout := opts.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = defaultReadTimeout
	}

	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: connectTimeout}).DialContext,
		TLSHandshakeTimeout:   connectTimeout,
		ResponseHeaderTimeout: readTimeout,
		MaxIdleConnsPerHost:   16,
		IdleConnTimeout:       90 * time.Second,
	}

	return &Client{
		logger:  logger.With(slog.String("client", "remote")),
		baseURL: base,
		token:   strings.TrimSpace(opts.BearerToken),
		http: &http.Client{
			Transport: transport,
			Timeout:   connectTimeout + readTimeout,
		},
	}, nil
}

func (c *Client) CreateListing(ctx context.Context, cmd entities.ListingCommand) (entities.ListingResult, error) {
	if err := cmd.Validate(); err != nil {
		return entities.ListingResult{}, err
	}

	var resp wire.ListingResponse
	req := wire.ListingRequestFromCommand(cmd)
	if err := c.do(ctx, http.MethodPost, "/v1/listings", req, nil, &resp, entities.ErrListingNotFound); err != nil {
		return entities.ListingResult{}, err
	}
	res, err := wire.ListingResponseToResult(resp)
	if err != nil {
		return entities.ListingResult{}, fmt.Errorf("%w: %w", entities.ErrTransport, err)
	}
	return res, nil
}

func (c *Client) GetListing(ctx context.Context, listingID string) (entities.ListingResult, error) {
	listingID = strings.TrimSpace(listingID)
	if listingID == "" {
		return entities.ListingResult{}, fmt.Errorf("%w: empty id", entities.ErrListingNotFound)
	}

	var resp wire.ListingResponse
	path := "/v1/listings/" + url.PathEscape(listingID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp, entities.ErrListingNotFound); err != nil {
		return entities.ListingResult{}, err
	}
	res, err := wire.ListingResponseToResult(resp)
	if err != nil {
		return entities.ListingResult{}, fmt.Errorf("%w: %w", entities.ErrTransport, err)
	}
	return res, nil
}

func (c *Client) CreateOrder(ctx context.Context, cmd entities.OrderCommand) (entities.OrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return entities.OrderResult{}, err
	}

	key := strings.TrimSpace(cmd.IdempotencyKey)
	req := wire.OrderRequestFromCommand(cmd)
	req.IdempotencyKey = key
	headers := http.Header{wire.IdempotencyHeader: []string{key}}

	var resp wire.OrderResponse
	if err := c.do(ctx, http.MethodPost, "/v1/orders", req, headers, &resp, entities.ErrOrderNotFound); err != nil {
		return entities.OrderResult{}, err
	}
	res, err := wire.OrderResponseToResult(resp)
	if err != nil {
		return entities.OrderResult{}, fmt.Errorf("%w: %w", entities.ErrTransport, err)
	}
	return res, nil
}

func (c *Client) GetOrder(ctx context.Context, orderID string) (entities.OrderResult, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.OrderResult{}, fmt.Errorf("%w: empty id", entities.ErrOrderNotFound)
	}

	var resp wire.OrderResponse
	path := "/v1/orders/" + url.PathEscape(orderID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp, entities.ErrOrderNotFound); err != nil {
		return entities.OrderResult{}, err
	}
	res, err := wire.OrderResponseToResult(resp)
	if err != nil {
		return entities.OrderResult{}, fmt.Errorf("%w: %w", entities.ErrTransport, err)
	}
	return res, nil
}

// do выполняет запрос и раскладывает статус ответа по ошибкам контракта.
func (c *Client) do(ctx context.Context, method, path string, body any, headers http.Header, out any, notFound error) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("%w: %w", entities.ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	for k, v := range headers {
		req.Header[k] = v
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("remote call failed", slog.String("method", method), slog.String("path", path), slog.Any("error", err))
		return fmt.Errorf("%w: %s %s: %w", entities.ErrTransport, method, path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("remote call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: undecodable response: %w", entities.ErrTransport, err)
		}
		return nil
	case resp.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", entities.ErrInvalidCommand, errorMessage(resp))
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", notFound, errorMessage(resp))
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", entities.ErrUnauthorized, errorMessage(resp))
	default:
		return fmt.Errorf("%w: unexpected status %d: %s", entities.ErrTransport, resp.StatusCode, errorMessage(resp))
	}
}

func errorMessage(resp *http.Response) string {
	var envelope utils.ErrorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&envelope); err != nil || envelope.Error.Message == "" {
		return http.StatusText(resp.StatusCode)
	}
	return envelope.Error.Message
}
