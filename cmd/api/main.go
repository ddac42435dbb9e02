package main

import (
	"context"
	"time"

	"github.com/aryadee/smart-bank/internal/api"
	"github.com/aryadee/smart-bank/internal/api/middleware"
	v1 "github.com/aryadee/smart-bank/internal/api/v1"
	apivalidator "github.com/aryadee/smart-bank/internal/api/validator"
	"github.com/aryadee/smart-bank/internal/config"
	"github.com/aryadee/smart-bank/internal/database"
	apierrors "github.com/aryadee/smart-bank/internal/errors"
	"github.com/aryadee/smart-bank/internal/metrics"
	"github.com/aryadee/smart-bank/internal/service"
	"github.com/aryadee/smart-bank/pkg/genai"
	"github.com/aryadee/smart-bank/pkg/httpclient"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			metrics.NewMetrics,
			validator.New,
			apivalidator.NewXValidator,
			newStorage,
			newAccountService,
			newLedgerService,
			newAdvisorService,
			newFiberApp,
			v1.NewHandler,
		),
		fx.Invoke(startServer),
	).Run()
}

func newStorage(cfg *config.Config, logger *zap.Logger) (*database.Storage, error) {
	return database.NewStorage(context.Background(), cfg, logger)
}

func newAccountService(storage *database.Storage, cfg *config.Config, logger *zap.Logger) service.AccountService {
	return service.NewAccountService(storage.Accounts, storage.Transactions, storage.TxManager,
		service.NewAccountNumberGenerator(), service.NewTokenIssuer(cfg.Auth),
		cfg.Auth, cfg.Ledger, logger)
}

func newLedgerService(storage *database.Storage, cfg *config.Config, logger *zap.Logger) (service.LedgerService, error) {
	return service.NewLedgerService(storage.Accounts, storage.Transactions, storage.TxManager,
		cfg.Ledger, logger)
}

func newAdvisorService(storage *database.Storage, cfg *config.Config, logger *zap.Logger) service.AdvisorService {
	client := genai.NewClient(cfg.Advisor, httpclient.NewHTTPClient(cfg.Advisor.Timeout))
	return service.NewAdvisorService(storage.Accounts, storage.Transactions, client, logger)
}

func newFiberApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: apierrors.ErrorHandler(),
	})
}

func startServer(app *fiber.App, handler *v1.Handler, cfg *config.Config, storage *database.Storage,
	m *metrics.Metrics, logger *zap.Logger, lc fx.Lifecycle) {
	app.Use(middleware.TrackID())
	app.Use(metrics.HTTPMetricsMiddleware(m, logger))
	app.Use(metrics.HealthCheckMiddleware())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api.SetupRoutes(app, handler, cfg.Auth)

	var collector *metrics.DatabaseMetricsCollector
	if storage.DB != nil {
		collector = metrics.NewDatabaseMetricsCollector(m, logger, storage.DB)
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if collector != nil {
				collector.Start(15 * time.Second)
			}
			go func() {
				if err := app.Listen(cfg.API.Port); err != nil {
					logger.Error("Server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if collector != nil {
				collector.Stop()
			}
			if err := app.ShutdownWithContext(ctx); err != nil {
				return err
			}
			return storage.Close()
		},
	})
}
