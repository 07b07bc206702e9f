package app

import (
	"context"
	"time"

	"go-shopbook/internal/config"
	"go-shopbook/internal/expense"
	"go-shopbook/internal/history"
	"go-shopbook/internal/messaging/kafka"
	"go-shopbook/internal/report"
	"go-shopbook/internal/shared/connection"
	"go-shopbook/internal/shop"
	"go-shopbook/internal/staff"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const connectTimeout = 10 * time.Second

// BuildApp connects the api's stores, migrates the schema and mounts every
// module on router.
func BuildApp(router *gin.Engine, cfg *config.Config) error {
	logger := zap.L().Named("app.api")

	if err := cfg.RequireAuth(); err != nil {
		return err
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database)
	if err != nil {
		return err
	}
	if err := migrate(gormDB); err != nil {
		return err
	}
	logger.Info("database schema migrated")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis, cfg.Database.MaxRetries)
	if err != nil {
		return err
	}
	if redisClient == nil {
		logger.Warn("REDIS_ADDR not set, caching and idempotency disabled")
	}

	// Archived statements are optional for the api; without Mongo the
	// download endpoint reports the archive as unavailable.
	var archive report.ArchiveRepository
	if cfg.Mongo.URI != "" {
		mongoClient, err := connectArchive(cfg.Mongo)
		if err != nil {
			return err
		}
		archive = report.NewMongoArchiveRepository(mongoClient, cfg.Mongo.DBName)
	}

	return registerModules(router, cfg, sqlDB, gormDB, redisClient, archive)
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&shop.Shop{},
		&staff.StaffMember{},
		&expense.ExpenseItem{},
		&history.HistoryRecord{},
		&kafka.OutboxEventModel{},
	)
}

func connectArchive(cfg config.MongoConfig) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := connection.ConnectMongo(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := report.EnsureIndexes(ctx, client, cfg.DBName); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}
