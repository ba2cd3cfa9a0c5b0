// Package setup wires configuration, logging, the database pools and the
// service registry for every binary in this repo.
package setup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/prometheus/client_golang/prometheus"

	_ "github.com/lib/pq"

	"github.com/pesaledger/go-ledger-core/internal/common/graceful"
	"github.com/pesaledger/go-ledger-core/internal/common/idgenerator"
	"github.com/pesaledger/go-ledger-core/internal/common/log"
	"github.com/pesaledger/go-ledger-core/internal/common/metrics"
	"github.com/pesaledger/go-ledger-core/internal/common/normalizer"
	"github.com/pesaledger/go-ledger-core/internal/config"
	"github.com/pesaledger/go-ledger-core/internal/repositories"
	"github.com/pesaledger/go-ledger-core/internal/services"
)

type Setup struct {
	Config   config.Config
	NewRelic *newrelic.Application
	WriteDB  *sql.DB
	ReadDB   *sql.DB
	Service  *services.Services
	Metrics  *metrics.Metrics
}

func Init(command string) (setup *Setup, stopper []graceful.ProcessStopper, err error) {
	ctx := context.Background()

	configPath := os.Getenv("LEDGER_CONFIG_FILE")
	if configPath == "" {
		configPath = "config.json"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	setup = &Setup{Config: cfg}

	if err = log.Init(cfg.App.LogOption, cfg.App.LogLevel); err != nil {
		return setup, stopper, err
	}

	nr := setupNR(ctx, cfg)

	mtc := metrics.New(prometheus.DefaultRegisterer)

	writeDB, readDB, err := setupPostgres(cfg)
	if err != nil {
		err = fmt.Errorf("failed connect to database: %w", err)
		return setup, stopper, err
	}
	stopper = append(stopper, func(ctx context.Context) error {
		var errs error
		if writeDB != nil {
			if err := writeDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close writeDB: %w", err))
			}
		}
		if readDB != nil {
			if err := readDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close readDB: %w", err))
			}
		}
		return errs
	})

	sqlRepo := repositories.NewSQLRepository(writeDB, readDB, cfg)
	normalizerClient := normalizer.NewHTTPClient(cfg.Normalizer)
	idGenerator := idgenerator.New()

	srv := services.New(cfg, sqlRepo, normalizerClient, idGenerator, mtc)

	setup = &Setup{
		Config:   cfg,
		NewRelic: nr,
		WriteDB:  writeDB,
		ReadDB:   readDB,
		Service:  srv,
		Metrics:  mtc,
	}

	log.Info(ctx, "setup completed", log.String("command", command), log.String("env", cfg.App.Env))
	return setup, stopper, nil
}

func setupPostgres(conf config.Config) (*sql.DB, *sql.DB, error) {
	writeDB, err := initDB(conf.Postgres.Write)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init write DB: %w", err)
	}

	readDB, err := initDB(conf.Postgres.Read)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init read DB: %w", err)
	}

	return writeDB, readDB, nil
}

func initDB(pgConf config.Database) (*sql.DB, error) {
	const (
		DefaultMaxOpen     = 10
		DefaultMaxIdle     = 10
		DefaultMaxLifetime = 3 // minutes
	)

	dsName := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s search_path=%s sslmode=disable",
		pgConf.DbHost, pgConf.DbPort, pgConf.DbUser, pgConf.DbPass, pgConf.DbName, pgConf.DbSchema,
	)

	db, err := sql.Open("postgres", dsName)
	if err != nil {
		return nil, err
	}

	if pgConf.MaxOpenConnection > 0 {
		db.SetMaxOpenConns(pgConf.MaxOpenConnection)
	} else {
		db.SetMaxOpenConns(DefaultMaxOpen)
	}

	if pgConf.MaxIdleConnection > 0 {
		db.SetMaxIdleConns(pgConf.MaxIdleConnection)
	} else {
		db.SetMaxIdleConns(DefaultMaxIdle)
	}

	if pgConf.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(pgConf.ConnMaxLifetime) * time.Minute)
	} else {
		db.SetConnMaxLifetime(time.Duration(DefaultMaxLifetime) * time.Minute)
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func setupNR(ctx context.Context, cfg config.Config) *newrelic.Application {
	if cfg.NewRelicLicenseKey == "" {
		return nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.App.Name),
		newrelic.ConfigLicense(cfg.NewRelicLicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		log.Error(ctx, "setupNR.NewApplication", log.Err(err))
		return nil
	}
	if err = app.WaitForConnection(15 * time.Second); err != nil {
		log.Error(ctx, "setupNR.WaitForConnection", log.Err(err))
	}
	return app
}
