package connection

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-paygap/internal/config"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ErrAcquire marks a failure to check a connection out of the pool, as
// opposed to a failure of the work done on it.
var ErrAcquire = errors.New("acquire database connection")

func ConnectGORMWithRetry(cfg config.DatabaseConfig) (*gorm.DB, error) {
	logger := zap.L().Named("connection")

	var lastErr error

	for i := 1; i <= cfg.ConnectRetries; i++ {

		db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		})
		if err != nil {
			lastErr = err
			logger.Warn("GORM open failed", zap.Int("attempt", i), zap.Int("max", cfg.ConnectRetries), zap.Error(err))
			sleep(cfg.RetryInterval, i, cfg.ConnectRetries)
			continue
		}

		sqlDB, err := db.DB()
		if err != nil {
			lastErr = err
			logger.Warn("get sql.DB failed", zap.Int("attempt", i), zap.Error(err))
			sleep(cfg.RetryInterval, i, cfg.ConnectRetries)
			continue
		}

		if err := sqlDB.Ping(); err != nil {
			lastErr = err
			logger.Warn("DB ping failed", zap.Int("attempt", i), zap.Int("max", cfg.ConnectRetries), zap.Error(err))
			_ = sqlDB.Close()
			sleep(cfg.RetryInterval, i, cfg.ConnectRetries)
			continue
		}

		// Pool config
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxOpenConns)
		sqlDB.SetConnMaxLifetime(time.Hour)

		logger.Info("GORM connected to database", zap.String("host", cfg.Host), zap.String("database", cfg.Name))
		return db, nil
	}

	return nil, fmt.Errorf("database connection failed after %d retries: %w", cfg.ConnectRetries, lastErr)
}

func sleep(d time.Duration, attempt, max int) {
	if attempt < max {
		time.Sleep(d)
	}
}

// Scoped checks one connection out of the pool, runs fn on it and always
// returns the connection before it returns. A failure to obtain the
// connection is reported wrapped in ErrAcquire; errors from fn pass through
// untouched.
func Scoped(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	var fnErr error
	ran := false

	err := db.WithContext(ctx).Connection(func(tx *gorm.DB) error {
		ran = true
		fnErr = fn(tx)
		return fnErr
	})
	if err == nil {
		return nil
	}
	if !ran {
		return fmt.Errorf("%w: %w", ErrAcquire, err)
	}
	return fnErr
}
