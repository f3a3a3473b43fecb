package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"investmentplanner/api"
	"investmentplanner/internal/logger"
	"investmentplanner/internal/repository"
	"investmentplanner/internal/service"
	"investmentplanner/internal/util"

	"github.com/cenkalti/backoff/v4"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

const maxPingElapsed = 30 * time.Second

func CloseDependencies(handler *api.ApiHandler) {
	if err := handler.Db.Close(); err != nil {
		handler.Logger.Errorf("failed to close db: %v", err)
	}
	_ = handler.Logger.Sync()
}

// OpenDb opens the bounded pool and waits for postgres to answer.
func OpenDb(ctx context.Context, cfg util.DbConfig) (*sql.DB, error) {
	dbConn, err := sql.Open("postgres", cfg.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	dbConn.SetMaxOpenConns(cfg.PoolSize)
	dbConn.SetMaxIdleConns(cfg.PoolSize)

	lg := logger.FromContext(ctx)
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = maxPingElapsed
	err = backoff.RetryNotify(
		func() error {
			return dbConn.PingContext(ctx)
		},
		backoff.WithContext(b, ctx),
		func(err error, wait time.Duration) {
			lg.Warnf("db not ready, retrying in %s: %v", wait, err)
		},
	)
	if err != nil {
		dbConn.Close()
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	return dbConn, nil
}

func InitializeDependencies(ctx context.Context, cfg util.Config) (*api.ApiHandler, error) {
	lg := logger.FromContext(ctx)

	dbConn, err := OpenDb(ctx, cfg.Db)
	if err != nil {
		return nil, err
	}

	return NewApiHandler(dbConn, cfg, lg), nil
}

func NewApiHandler(dbConn *sql.DB, cfg util.Config, lg *zap.SugaredLogger) *api.ApiHandler {
	schema := repository.NewSchema(cfg.Db.Schema)

	locationRepository := repository.NewLocationRepository(dbConn, schema)
	assetRepository := repository.NewAssetRepository(dbConn, schema)
	strategyRepository := repository.NewStrategyRepository(dbConn, schema)
	investmentRepository := repository.NewInvestmentRepository(dbConn, schema)
	userRepository := repository.NewUserRepository(dbConn, schema)

	return &api.ApiHandler{
		Db:                dbConn,
		Logger:            lg,
		Metrics:           api.NewMetrics(dbConn),
		RequestTimeout:    cfg.RequestTimeout,
		LocationService:   service.NewLocationService(locationRepository),
		AssetService:      service.NewAssetService(dbConn, assetRepository),
		StrategyService:   service.NewStrategyService(dbConn, strategyRepository),
		InvestmentService: service.NewInvestmentService(dbConn, investmentRepository, userRepository),
		UserService:       service.NewUserService(userRepository),
	}
}
