package app

import (
	"go-paygap/internal/config"
	"go-paygap/internal/dashboard"
	"go-paygap/internal/middleware"
	"go-paygap/internal/paygap"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
) {
	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(zap.L()),
		middleware.Metrics(),
	)

	// --- Repositories ---
	payGapRepo := paygap.NewRepository(db)

	// --- Services ---
	payGapService := paygap.NewService(payGapRepo, cfg.Database.QueryTimeout)
	dashboardService := dashboard.NewService(payGapService)

	// --- Handlers ---
	dashboardHandler := dashboard.NewHandler(dashboardService)

	// --- Routes Registration ---
	chartLimit := middleware.RateLimitByIP(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)
	dashboard.RegisterRoutes(router.Group(""), dashboardHandler, chartLimit)

	registerHealth(router, db)
}
