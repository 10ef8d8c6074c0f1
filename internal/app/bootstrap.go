package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/crm_backend/config"
	cachemem "github.com/Gunvolt24/crm_backend/internal/cache/memory"
	"github.com/Gunvolt24/crm_backend/internal/kafka"
	"github.com/Gunvolt24/crm_backend/internal/ports"
	"github.com/Gunvolt24/crm_backend/internal/repo/postgres"
	rest "github.com/Gunvolt24/crm_backend/internal/transport/http"
	"github.com/Gunvolt24/crm_backend/internal/usecase"
	"github.com/Gunvolt24/crm_backend/pkg/logger"
	"github.com/Gunvolt24/crm_backend/pkg/metrics"
	"github.com/Gunvolt24/crm_backend/pkg/telemetry"
	"github.com/Gunvolt24/crm_backend/pkg/validate"
)

// App — собранное приложение и его внешние интерфейсы.
type App struct {
	Logger          ports.Logger         // логгер
	HTTPServer      *http.Server         // HTTP-сервер API
	Publisher       ports.EventPublisher // шина событий (или no-op)
	gracefulTimeout time.Duration        // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Пул подключений Postgres.
	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Репозитории и валидаторы.
	customerRepo := postgres.NewCustomerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	customerValidator := validate.NewCustomerValidator()
	productValidator := validate.NewProductValidator()

	// Шина событий: при пустом списке брокеров публикация выключена.
	var publisher ports.EventPublisher = kafka.NopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		publisher = kafka.NewProducer(&kafka.ProducerConfig{
			Brokers:      cfg.Kafka.Brokers,
			Topic:        cfg.Kafka.Topic,
			WriteTimeout: cfg.Kafka.WriteTimeout,
		}, logg)
		logg.Infof(ctx, "kafka producer enabled brokers=%v topic=%s", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}

	// Прикладной слой.
	orderCache := cachemem.NewLRUCacheTTL(cfg.Cache.Capacity, cfg.Cache.TTL)
	customerService := usecase.NewCustomerService(customerRepo, customerValidator, logg)
	productService := usecase.NewProductService(productRepo, productValidator, logg)
	orderService := usecase.NewOrderService(orderRepo, customerRepo, productRepo, orderCache, publisher, logg)
	reportService := usecase.NewReportService(customerRepo, orderRepo, logg)

	// Прогрев кэша заказов.
	if n := cfg.Cache.WarmUpN; n > 0 {
		if err := orderService.WarmUpCache(ctx, n); err != nil {
			logg.Warnf(ctx, "warm-up cache failed: %v", err)
		}
	}

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(customerService, productService, orderService, reportService, logg, cfg.HTTP.HandlerTimeout)
	router := rest.NewRouter(httpHandler, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		Publisher:       publisher,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if perr := publisher.Close(); perr != nil {
			logg.Warnf(ctx, "kafka producer close error: %v", perr)
		}

		pool.Close()
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер; ждёт отмены контекста или ошибки и останавливает его.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		a.Logger.Warnf(ctx, "background error: %v", err)
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
