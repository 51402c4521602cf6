package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/marketplace-connector/internal/config"
	"github.com/SergeyBogomolovv/marketplace-connector/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"
)

type application struct {
	logger *slog.Logger

	router    chi.Router
	httpSrv   *http.Server
	consumers []Consumer
	starters  []Starter

	cancel context.CancelFunc
}

func New(logger *slog.Logger, cfg config.Config) *application {
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics)
	router.Use(chimw.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Cors.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "Idempotency-Key"},
		ExposedHeaders: []string{"Idempotency-Key"},
	}))

	router.Handle("/metrics", promhttp.Handler())
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	httpSrv := &http.Server{
		Handler:           router,
		Addr:              net.JoinHostPort(cfg.Http.Host, cfg.Http.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &application{
		logger:  logger,
		httpSrv: httpSrv,
		router:  router,
	}
}

type HTTPHandler interface {
	Init(r chi.Router)
}

func (a *application) SetHTTPHandlers(handlers ...HTTPHandler) {
	for _, h := range handlers {
		h.Init(a.router)
	}
}

type Consumer interface {
	Consume(ctx context.Context)
	Close() error
}

func (a *application) SetConsumers(consumers ...Consumer) {
	a.consumers = consumers
}

// Starter запускается до HTTP-сервера; ошибка любого из них прерывает старт.
type Starter interface {
	Start(ctx context.Context) error
}

func (a *application) SetStarters(starters ...Starter) {
	a.starters = starters
}

func (a *application) Start(ctx context.Context) error {
	ctx, a.cancel = context.WithCancel(ctx)

	g, gCtx := errgroup.WithContext(ctx)
	for _, s := range a.starters {
		g.Go(func() error { return s.Start(gCtx) })
	}
	if err := g.Wait(); err != nil {
		a.cancel()
		return fmt.Errorf("failed to run starters: %w", err)
	}

	ln, err := net.Listen("tcp", a.httpSrv.Addr)
	if err != nil {
		a.cancel()
		return fmt.Errorf("failed to listen %s: %w", a.httpSrv.Addr, err)
	}

	for _, c := range a.consumers {
		go c.Consume(ctx)
	}

	go a.serve(ln)

	a.logger.Info("application started", slog.String("addr", ln.Addr().String()))
	return nil
}

func (a *application) serve(ln net.Listener) {
	if err := a.httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		a.logger.Error("http server stopped", slog.Any("error", err))
	}
}

const gracefulShutdownTimeout = 5 * time.Second

func (a *application) Stop() error {
	if a.cancel != nil {
		a.cancel()
	}

	var errs []error
	for _, c := range a.consumers {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close consumer: %w", err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	if err := a.httpSrv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to shutdown http server: %w", err))
	}

	a.logger.Info("application stopped")
	return errors.Join(errs...)
}

// Handler отдаёт корневой роутер; нужен тестам.
func (a *application) Handler() http.Handler {
	return a.router
}
