package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"career-connector/internal/config"
	"career-connector/internal/database"
	"career-connector/internal/database/migration"
	dbpostgres "career-connector/internal/database/postgres"
	"career-connector/internal/domain/catalog"
	"career-connector/internal/infrastructure/cache"
	"career-connector/internal/infrastructure/dataset"
	"career-connector/internal/ws"
)

// Container owns the process-wide resources. It is built once by Bootstrap
// and passed down explicitly.
type Container struct {
	Config  config.Config
	Logger  *log.Logger
	DB      database.DB
	Cache   *cache.Redis
	Hub     *ws.Hub
	Catalog []catalog.Entry

	stopHub context.CancelFunc
}

func NewContainer(ctx context.Context, cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(connectCtx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if cfg.Database.RunMigrations {
		runner := migration.Runner{Dir: cfg.Database.MigrationsDir, Logger: logger}
		if err := runner.Run(ctx, db.SQLDB()); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
	}

	c := &Container{
		Config:  cfg,
		Logger:  logger,
		DB:      db,
		Cache:   cache.NewRedis(ctx, cfg.Redis, logger),
		Hub:     ws.NewHub(logger),
		Catalog: loadCatalog(ctx, cfg.Catalog, logger),
	}

	hubCtx, stop := context.WithCancel(context.Background())
	c.stopHub = stop
	go c.Hub.Run(hubCtx)

	return c, nil
}

func loadCatalog(ctx context.Context, cfg config.CatalogConfig, logger *log.Logger) []catalog.Entry {
	var getter dataset.S3Getter
	if strings.HasPrefix(cfg.Source, "s3://") {
		client, err := dataset.NewS3Client(ctx, cfg.S3Region, cfg.S3Endpoint)
		if err != nil {
			logger.Printf("[Catalog] s3 client unavailable: %v", err)
		} else {
			getter = client
		}
	}
	return dataset.NewLoader(logger, getter).Load(ctx, cfg.Source)
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.stopHub != nil {
		c.stopHub()
	}

	var errs []error
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close cache: %w", err))
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
	}
	return errors.Join(errs...)
}
