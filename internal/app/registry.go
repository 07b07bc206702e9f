package app

import (
	"database/sql"

	"go-shopbook/internal/config"
	"go-shopbook/internal/expense"
	"go-shopbook/internal/history"
	"go-shopbook/internal/messaging/kafka"
	"go-shopbook/internal/middleware"
	"go-shopbook/internal/report"
	"go-shopbook/internal/shop"
	"go-shopbook/internal/staff"
	"go-shopbook/internal/summary"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	archive report.ArchiveRepository,
) error {
	// --- Repositories ---
	shopRepo := shop.NewRepository(gormDB)
	staffRepo := staff.NewRepository(gormDB)
	expenseRepo := expense.NewRepository(gormDB)
	historyRepo := history.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	shopService := shop.NewService(shopRepo)
	staffService := staff.NewService(staffRepo, rdb, cfg.Redis.CacheTTL)
	expenseService := expense.NewService(expenseRepo, rdb, cfg.Redis.CacheTTL)
	historyService := history.NewServiceWithOutbox(db, historyRepo, outboxRepo)
	summaryService := summary.NewService(shopService, staffService, expenseService, historyService)
	reportService := report.NewService(summaryService, archive)

	// --- Handlers ---
	shopHandler := shop.NewHandler(shopService)
	staffHandler := staff.NewHandler(staffService)
	expenseHandler := expense.NewHandler(expenseService)
	historyHandler := history.NewHandler(historyService)
	summaryHandler := summary.NewHandlerWithRedis(summaryService, rdb)
	reportHandler := report.NewHandler(reportService)

	// --- Routes Registration ---
	limit := rate.Limit(cfg.Server.RateLimit)

	api := router.Group("/api/v1")
	api.Use(middleware.RateLimitByIP(limit, cfg.Server.RateBurst))
	api.Use(middleware.AuthMiddleware(cfg.Auth.JWTSecret))
	api.Use(middleware.RateLimitByActor(limit, cfg.Server.RateBurst))
	api.Use(middleware.ContextLogger(zap.L()))
	{
		shop.RegisterRoutes(api, shopHandler)

		shopScoped := api.Group("/shops/:shop_id", middleware.RequireShopAccess())
		staff.RegisterRoutes(shopScoped, staffHandler)
		expense.RegisterRoutes(shopScoped, expenseHandler)
		history.RegisterRoutes(shopScoped, historyHandler)
		summary.RegisterRoutes(shopScoped, summaryHandler, rdb)
		report.RegisterRoutes(shopScoped, reportHandler)
	}

	return nil
}
