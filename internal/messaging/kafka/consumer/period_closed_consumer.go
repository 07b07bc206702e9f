package consumer

import (
	"context"
	"encoding/json"
	"time"

	"go-shopbook/internal/events"
	"go-shopbook/internal/report"
	"go-shopbook/internal/shared/apperror"
	"go-shopbook/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is satisfied by *kafkago.Reader.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type StatementArchiver interface {
	ArchivePeriod(ctx context.Context, event events.PeriodClosedEvent) (report.Statement, error)
}

// Delays between attempts to archive the same message. The delay doubles
// after each failure up to MaxRetryDelay.
var (
	RetryDelay    = 500 * time.Millisecond
	MaxRetryDelay = 30 * time.Second
)

// ConsumePeriodClosed renders and archives a statement for every saved
// period. Messages that can never succeed (bad JSON, unprintable text) are
// committed and skipped. Any other failure is retried on the same message
// until it succeeds or ctx is cancelled, so a later commit never moves the
// group offset past an unarchived period.
func ConsumePeriodClosed(
	ctx context.Context,
	reader MessageReader,
	archiver StatementArchiver,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.period_closed")
	log.Info("period closed consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("period closed consumer stopped")
				return
			}
			log.Error("fetch period closed message failed", zap.Error(err))
			continue
		}

		handlePeriodClosed(ctx, reader, archiver, log, msg)
	}
}

func handlePeriodClosed(
	ctx context.Context,
	reader MessageReader,
	archiver StatementArchiver,
	log *zap.Logger,
	msg kafkago.Message,
) {
	var event events.PeriodClosedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode period_closed event failed", zap.Error(err))
		_ = reader.CommitMessages(ctx, msg)
		return
	}

	eventLog := log.With(
		zap.String("request_id", event.RequestID),
		zap.String("shop_id", event.ShopID),
		zap.String("period", event.PeriodLabel),
	)
	eventCtx := contextutil.WithLogger(contextutil.WithRequestID(ctx, event.RequestID), eventLog)

	delay := RetryDelay
	for {
		_, err := archiver.ArchivePeriod(eventCtx, event)
		if err == nil {
			break
		}
		if apperror.HasCode(err, apperror.CodeFormatError) {
			eventLog.Warn("statement cannot be rendered, skipping", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			return
		}
		eventLog.Error("archive statement failed, retrying",
			zap.Error(err),
			zap.Duration("retry_in", delay),
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
		delay = min(delay*2, MaxRetryDelay)
	}

	if err := reader.CommitMessages(ctx, msg); err != nil {
		eventLog.Error("commit period closed message failed", zap.Error(err))
		return
	}

	eventLog.Info("statement generated from period_closed event")
}
