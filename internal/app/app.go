package app

import (
	"go-paygap/internal/config"
	"go-paygap/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildApp connects to the data source and mounts every module on router.
// The returned pool is owned by the caller.
func BuildApp(router *gin.Engine, cfg *config.Config) (*gorm.DB, error) {
	db, err := connection.ConnectGORMWithRetry(cfg.Database)
	if err != nil {
		return nil, err
	}
	zap.L().Info("database connection established",
		zap.String("host", cfg.Database.Host),
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
	)

	registerModules(router, db, cfg)

	return db, nil
}
