package main

import (
	"context"
	"fmt"
	"io"

	"github.com/piresc/evoting/internal/pkg/cache"
	"github.com/piresc/evoting/internal/pkg/circuitbreaker"
	"github.com/piresc/evoting/internal/pkg/config"
	"github.com/piresc/evoting/internal/pkg/database"
	httpclient "github.com/piresc/evoting/internal/pkg/http"
	"github.com/piresc/evoting/internal/pkg/logger"
	"github.com/piresc/evoting/internal/pkg/nsq"
	"github.com/piresc/evoting/migrations"
	"github.com/piresc/evoting/services/auth"
	authGateway "github.com/piresc/evoting/services/auth/gateway"
	authRepository "github.com/piresc/evoting/services/auth/repository"
	authUsecase "github.com/piresc/evoting/services/auth/usecase"
	"github.com/piresc/evoting/services/schedule"
	scheduleUsecase "github.com/piresc/evoting/services/schedule/usecase"
	"github.com/piresc/evoting/services/settings"
	settingsRepository "github.com/piresc/evoting/services/settings/repository"
	settingsUsecase "github.com/piresc/evoting/services/settings/usecase"
	"github.com/piresc/evoting/services/votes"
	votesGateway "github.com/piresc/evoting/services/votes/gateway"
	votesRepository "github.com/piresc/evoting/services/votes/repository"
	votesUsecase "github.com/piresc/evoting/services/votes/usecase"
)

// cli holds what the subcommands run against. Services are connected on
// first use so that --help works without a database.
type cli struct {
	out        io.Writer
	configPath string
	connect    func() error

	scheduleUC schedule.ScheduleUC
	settingsUC settings.SettingsUC
	authUC     auth.AuthUC
	votesUC    votes.VotesUC
	migrate    func(ctx context.Context) ([]string, error)

	closers []func() error
}

func (c *cli) ensureConnected() error {
	if c.scheduleUC != nil {
		return nil
	}
	return c.connect()
}

func (c *cli) connectServices() error {
	configs := config.InitConfig(c.configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	logger.SetGlobalLogger(zapLogger)
	c.closers = append(c.closers, zapLogger.Close)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		return err
	}
	c.closers = append(c.closers, postgresClient.Close)

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		return err
	}
	c.closers = append(c.closers, redisClient.Close)

	var publisher nsq.Publisher = nsq.NopPublisher{}
	if configs.NSQ.Enabled {
		producer, err := nsq.NewProducer(configs.NSQ.Address)
		if err != nil {
			return err
		}
		publisher = producer
		c.closers = append(c.closers, func() error { producer.Stop(); return nil })
	}

	db := postgresClient.GetDB()
	redisCache := cache.NewRedisCache(redisClient.GetClient())
	breaker := circuitbreaker.New(circuitbreaker.DefaultConfig("paystack"))
	paystackClient := httpclient.NewBearerClient(configs.Paystack.BaseURL, configs.Paystack.SecretKey, configs.Paystack.Timeout, breaker)

	settingsUC := settingsUsecase.NewSettingsUC(settingsRepository.NewSettingsRepo(db), redisCache)

	c.settingsUC = settingsUC
	c.scheduleUC = scheduleUsecase.NewScheduleUC(settingsUC)
	c.authUC = authUsecase.NewAuthUC(configs, authRepository.NewAuthRepo(db), authGateway.NewAuthGW(publisher))
	c.votesUC = votesUsecase.NewVotesUC(
		configs,
		votesRepository.NewVotesRepo(db),
		votesRepository.NewSessionRepo(redisClient),
		settingsUC,
		votesGateway.NewPaystackGW(paystackClient),
		votesGateway.NewEventsGW(publisher),
		redisCache,
	)
	c.migrate = func(ctx context.Context) ([]string, error) {
		return migrations.Apply(ctx, db)
	}

	return nil
}

func (c *cli) close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			logger.Warn("Failed to release resource", logger.Err(err))
		}
	}
	c.closers = nil
}
