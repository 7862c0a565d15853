package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/piresc/evoting/internal/pkg/cache"
	"github.com/piresc/evoting/internal/pkg/circuitbreaker"
	"github.com/piresc/evoting/internal/pkg/config"
	"github.com/piresc/evoting/internal/pkg/database"
	"github.com/piresc/evoting/internal/pkg/health"
	httpclient "github.com/piresc/evoting/internal/pkg/http"
	"github.com/piresc/evoting/internal/pkg/logger"
	"github.com/piresc/evoting/internal/pkg/middleware"
	"github.com/piresc/evoting/internal/pkg/models"
	"github.com/piresc/evoting/internal/pkg/nsq"
	"github.com/piresc/evoting/internal/pkg/server"
	"github.com/piresc/evoting/internal/utils"
	authGateway "github.com/piresc/evoting/services/auth/gateway"
	authHandler "github.com/piresc/evoting/services/auth/handler"
	authHTTP "github.com/piresc/evoting/services/auth/handler/http"
	authRepository "github.com/piresc/evoting/services/auth/repository"
	authUsecase "github.com/piresc/evoting/services/auth/usecase"
	resultsHandler "github.com/piresc/evoting/services/results/handler"
	resultsHTTP "github.com/piresc/evoting/services/results/handler/http"
	resultsRepository "github.com/piresc/evoting/services/results/repository"
	resultsUsecase "github.com/piresc/evoting/services/results/usecase"
	scheduleHandler "github.com/piresc/evoting/services/schedule/handler"
	scheduleHTTP "github.com/piresc/evoting/services/schedule/handler/http"
	scheduleUsecase "github.com/piresc/evoting/services/schedule/usecase"
	settingsHandler "github.com/piresc/evoting/services/settings/handler"
	settingsHTTP "github.com/piresc/evoting/services/settings/handler/http"
	settingsRepository "github.com/piresc/evoting/services/settings/repository"
	settingsUsecase "github.com/piresc/evoting/services/settings/usecase"
	votesGateway "github.com/piresc/evoting/services/votes/gateway"
	votesHandler "github.com/piresc/evoting/services/votes/handler"
	votesHTTP "github.com/piresc/evoting/services/votes/handler/http"
	votesRepository "github.com/piresc/evoting/services/votes/repository"
	votesUsecase "github.com/piresc/evoting/services/votes/usecase"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/voting.env"
	}
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", configs.App.Name),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	publisher := newPublisher(configs)
	redisCache := cache.NewRedisCache(redisClient.GetClient())

	breaker := circuitbreaker.New(circuitbreaker.DefaultConfig("paystack"))
	paystackClient := httpclient.NewBearerClient(configs.Paystack.BaseURL, configs.Paystack.SecretKey, configs.Paystack.Timeout, breaker)

	// Settings store
	settingsUC := settingsUsecase.NewSettingsUC(settingsRepository.NewSettingsRepo(postgresClient.GetDB()), redisCache)

	// Admin authentication
	authUC := authUsecase.NewAuthUC(configs, authRepository.NewAuthRepo(postgresClient.GetDB()), authGateway.NewAuthGW(publisher))

	// Reconciliation engine
	votesUC := votesUsecase.NewVotesUC(
		configs,
		votesRepository.NewVotesRepo(postgresClient.GetDB()),
		votesRepository.NewSessionRepo(redisClient),
		settingsUC,
		votesGateway.NewPaystackGW(paystackClient),
		votesGateway.NewEventsGW(publisher),
		redisCache,
	)

	// Results aggregator and schedule
	resultsUC := resultsUsecase.NewResultsUC(configs, resultsRepository.NewResultsRepo(postgresClient.GetDB()), settingsUC, redisCache)
	scheduleUC := scheduleUsecase.NewScheduleUC(settingsUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewRequestValidator()
	e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second

	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{configs.Frontend.URL},
		AllowCredentials: true,
	}))

	healthService := health.NewService(configs.App.Name, configs.App.Version)
	healthService.AddChecker("postgres", health.CheckerFunc(postgresClient.Ping))
	healthService.AddChecker("redis", health.CheckerFunc(redisClient.Ping))
	healthService.AddChecker("paystack", health.CheckerFunc(func(context.Context) error {
		if breaker.State() == circuitbreaker.StateOpen {
			return circuitbreaker.ErrOpen
		}
		return nil
	}))
	health.RegisterHealthEndpoints(e, healthService)

	limiter := middleware.IPRateLimiter(configs.RateLimit.Limit, configs.RateLimit.Period, redisClient.GetClient())

	api := e.Group("/api")
	admin := api.Group("/admin",
		middleware.JWTAuthMiddleware(configs.JWT),
		middleware.RequireRole(models.RoleSuperAdmin, models.RoleAdmin))

	authHandler.NewHandler(authHTTP.NewAuthHandler(authUC)).RegisterRoutes(api, limiter)
	votesHandler.NewHandler(votesHTTP.NewVotesHandler(configs, votesUC)).RegisterRoutes(api, limiter)
	resultsHandler.NewHandler(resultsHTTP.NewResultsHandler(resultsUC)).RegisterRoutes(api, admin)
	settingsHandler.NewHandler(settingsHTTP.NewSettingsHandler(settingsUC)).RegisterRoutes(admin)
	scheduleHandler.NewHandler(scheduleHTTP.NewScheduleHandler(scheduleUC)).RegisterRoutes(admin)

	srv := server.NewGracefulServer(e, configs.Server.Port, time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	srv.OnShutdown(func(context.Context) error {
		publisher.Stop()
		return nil
	})
	srv.OnShutdown(func(context.Context) error { return redisClient.Close() })
	srv.OnShutdown(func(context.Context) error { return postgresClient.Close() })

	if err := srv.Start(); err != nil {
		logger.Fatal("Server stopped with error", logger.String("app", configs.App.Name), logger.Err(err))
	}
}

// newPublisher connects to nsqd when enabled and otherwise drops events
func newPublisher(configs *models.Config) nsq.Publisher {
	if !configs.NSQ.Enabled {
		logger.Info("NSQ disabled, settlement events will not be published")
		return nsq.NopPublisher{}
	}

	producer, err := nsq.NewProducer(configs.NSQ.Address)
	if err != nil {
		logger.Fatal("Failed to create NSQ producer", logger.String("address", configs.NSQ.Address), logger.Err(err))
	}
	logger.Info("NSQ producer ready", logger.String("address", configs.NSQ.Address))
	return producer
}
