package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"go.uber.org/fx"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	"passport/config"
	"passport/internal/domain/lifecycle"
	"passport/internal/errors"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates PostgreSQL client mapping
func New(params Params) (*gorm.DB, error) {
	pgConfig := params.Config.Postgres
	if pgConfig == nil {
		return nil, errors.New("postgres configuration is missing")
	}

	db, err := gorm.Open(pgdriver.Open(pgConfig.DSN()), &gorm.Config{
		// Disable GORM's per-statement implicit transaction; single-statement
		// writes are already atomic.
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	// Route reads to replicas when any are configured.
	if len(pgConfig.Replicas) > 0 {
		replicas := make([]gorm.Dialector, 0, len(pgConfig.Replicas))
		for _, replica := range pgConfig.Replicas {
			replicas = append(replicas, pgdriver.Open(pgConfig.ReplicaDSN(replica)))
		}

		if err := db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: replicas,
			Policy:   dbresolver.RandomPolicy{},
		})); err != nil {
			return nil, errors.Wrap(err, "failed to register read replicas")
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if pgConfig.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pgConfig.MaxOpenConns)
	}
	if pgConfig.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(pgConfig.MaxIdleConns)
	}
	if pgConfig.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(pgConfig.ConnMaxLifetime)
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
					slog.Int("idleConns", cur.Idle),
					slog.Int64("waitCountTotal", cur.WaitCount),
					slog.Duration("waitDurationTotal", cur.WaitDuration),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "Postgres pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Postgres pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
