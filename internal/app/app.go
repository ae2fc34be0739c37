package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/alimikegami/e-commerce/storefront-service/config"
	"github.com/alimikegami/e-commerce/storefront-service/internal/controller"
	"github.com/alimikegami/e-commerce/storefront-service/internal/infrastructure/mail"
	"github.com/alimikegami/e-commerce/storefront-service/internal/infrastructure/message-queue/kafka"
	paymentgateway "github.com/alimikegami/e-commerce/storefront-service/internal/infrastructure/payment-gateway"
	"github.com/alimikegami/e-commerce/storefront-service/internal/infrastructure/tracing"
	localmiddleware "github.com/alimikegami/e-commerce/storefront-service/internal/middleware"
	"github.com/alimikegami/e-commerce/storefront-service/internal/payment"
	"github.com/alimikegami/e-commerce/storefront-service/internal/repository"
	"github.com/alimikegami/e-commerce/storefront-service/internal/service"
	"github.com/alimikegami/e-commerce/storefront-service/pkg/response"
	"github.com/go-co-op/gocron/v2"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

type App struct {
	MongoDB *mongo.Database
	// LedgerDB is nil when PostgreSQL is not configured.
	LedgerDB  *sqlx.DB
	Config    *config.Config
	Server    *echo.Echo
	metrics   *echo.Echo
	scheduler gocron.Scheduler
	producer  *kafka.Producer
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger
	zerolog.DefaultContextLogger = &logger

	e := echo.New()
	app.Server = e

	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig, app.Config.Environment)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize tracing")
	}

	defer func() {
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown tracing")
		}
	}()

	tracer := traceProvider.Tracer(tracing.ServiceName)

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	})

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))

	metrics := echo.New()
	metrics.HideBanner = true
	metrics.GET("/metrics", echoprometheus.NewHandler())
	app.metrics = metrics

	go func() {
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(localmiddleware.Logger)

	g := e.Group("/api/v1")

	g.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogMethod:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Ctx(c.Request().Context()).Info().
				Str("method", v.Method).
				Str("URI", v.URI).
				Int("status", v.Status).
				Int64("latency", v.Latency.Microseconds()).
				Str("remote IP", v.RemoteIP).
				Msg("Request")

			return nil
		},
	}))

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "Hello, World!", nil)
	})

	transactionSvc, err := app.registerRoutes(g)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to wire services")
	}

	if err := app.startScheduler(transactionSvc); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start scheduler")
	}

	if err := e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("Failed to start server")
	}
}

func (app *App) registerRoutes(g *echo.Group) (service.TransactionService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := repository.EnsureIndexes(ctx, app.MongoDB); err != nil {
		return nil, fmt.Errorf("ensuring indexes: %w", err)
	}

	policy, err := payment.PolicyByName(app.Config.PaymentConfig.TransitionPolicy)
	if err != nil {
		return nil, err
	}

	var ledger repository.NotificationLogRepository
	if app.LedgerDB != nil {
		if err := repository.MigrateNotificationLog(ctx, app.LedgerDB); err != nil {
			return nil, fmt.Errorf("migrating notification ledger: %w", err)
		}
		ledger = repository.CreateNotificationLogRepository(app.LedgerDB)
	}

	var publisher service.EventPublisher = kafka.NoopProducer{}
	if app.Config.KafkaConfig.BrokerAddress != "" {
		producer, err := kafka.CreateKafkaProducer(app.Config)
		if err != nil {
			return nil, fmt.Errorf("connecting to kafka: %w", err)
		}
		app.producer = producer
		publisher = producer
	}

	var mailer service.ReceiptMailer
	if app.Config.SMTPConfig.Enabled() {
		mailer = mail.CreateMailer(app.Config)
	}

	userRepo := repository.CreateUserRepository(app.MongoDB)
	productRepo := repository.CreateProductRepository(app.MongoDB)

	userSvc := service.CreateUserService(userRepo, app.Config)
	transactionSvc := service.CreateTransactionService(
		repository.CreateTransactionRepository(app.MongoDB),
		ledger,
		paymentgateway.CreateMidtransGateway(app.Config),
		publisher,
		mailer,
		policy,
		app.Config,
	)
	catalogSvc := service.CreateCatalogService(productRepo, repository.CreateCategoryRepository(app.MongoDB), repository.CreateBannerRepository(app.MongoDB))
	cartSvc := service.CreateCartService(repository.CreateCartRepository(app.MongoDB), productRepo)
	wishlistSvc := service.CreateWishlistService(repository.CreateWishlistRepository(app.MongoDB), productRepo)
	shippingSvc := service.CreateShippingService(app.Config)

	isLoggedIn := localmiddleware.IsLoggedIn(app.Config.JWTSecret)
	isAdmin := localmiddleware.IsAdmin(userSvc)

	controller.CreateUserController(g, userSvc, isLoggedIn)
	controller.CreateTransactionController(g, transactionSvc, isLoggedIn, isAdmin)
	controller.CreateCatalogController(g, catalogSvc, isLoggedIn, isAdmin)
	controller.CreateCartController(g, cartSvc, wishlistSvc, isLoggedIn)
	controller.CreateShippingController(g, shippingSvc)

	return transactionSvc, nil
}

func (app *App) startScheduler(transactionSvc service.TransactionService) error {
	s, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	_, err = s.NewJob(
		gocron.DurationJob(
			app.Config.PaymentConfig.ExpiryCheckInterval,
		),
		gocron.NewTask(
			func() {
				ctx := log.Logger.With().Str("job", "expire_pending_transactions").Logger().WithContext(context.Background())
				if _, err := transactionSvc.ExpirePendingTransactions(ctx); err != nil {
					log.Ctx(ctx).Error().Err(err).Str("component", "ExpirePendingTransactions").Msg("")
				}
			},
		),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	s.Start()
	app.scheduler = s

	return nil
}

func (app *App) StopServer() error {
	if app.Server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if app.scheduler != nil {
		if err := app.scheduler.Shutdown(); err != nil {
			log.Error().Err(err).Str("component", "StopServer").Msg("")
		}
	}

	if app.producer != nil {
		if err := app.producer.Close(); err != nil {
			log.Error().Err(err).Str("component", "StopServer").Msg("")
		}
	}

	if app.metrics != nil {
		if err := app.metrics.Shutdown(ctx); err != nil {
			log.Error().Err(err).Str("component", "StopServer").Msg("")
		}
	}

	return app.Server.Shutdown(ctx)
}
