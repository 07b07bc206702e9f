package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-shopbook/internal/config"
	"go-shopbook/internal/events"
	"go-shopbook/internal/messaging/kafka/consumer"
	"go-shopbook/internal/report"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer renders and archives a statement for every closed period.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	if err := cfg.RequireKafka(); err != nil {
		return err
	}
	if err := cfg.RequireMongo(); err != nil {
		return err
	}

	mongoClient, err := connectArchive(cfg.Mongo)
	if err != nil {
		return err
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	// The consumer renders from the event payload alone, so no summary
	// service is needed here.
	statementService := report.NewService(nil, report.NewMongoArchiveRepository(mongoClient, cfg.Mongo.DBName))

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        cfg.Kafka.Brokers,
		Topic:          events.PeriodClosedTopic,
		GroupID:        cfg.Kafka.GroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumePeriodClosed(ctx, reader, statementService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
