package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go-shopbook/internal/events"
	historyerrors "go-shopbook/internal/history/errors"
	"go-shopbook/internal/messaging/kafka"
	"go-shopbook/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	aggregateType = "history_record"
	defaultLimit  = 24
)

//go:generate mockgen -source=history_service.go -destination=mock/history_service_mock.go -package=mock
type Service interface {
	// Save upserts the record and queues event in the same transaction.
	Save(ctx context.Context, record HistoryRecord, event events.PeriodClosedEvent) error
	GetAll(ctx context.Context, shopID string, req ListHistoryRequest) ([]HistoryRecordResponse, int64, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("history.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("history.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		logger: l,
	}
}

func (s *service) Save(ctx context.Context, record HistoryRecord, event events.PeriodClosedEvent) error {
	rid := contextutil.GetRequestID(ctx)
	if record.ShopID == "" || record.PeriodLabel == "" {
		return fmt.Errorf("%w: shop and period are required", historyerrors.ErrInvalidRecord)
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("save history begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return historyerrors.ErrHistoryNotSaved
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Upsert(ctx, &record); err != nil {
		s.logger.Error("save history upsert failed",
			zap.String("request_id", rid),
			zap.String("shop_id", record.ShopID),
			zap.String("period", record.PeriodLabel),
			zap.Error(err),
		)
		return historyerrors.ErrHistoryNotSaved
	}

	if s.outbox != nil {
		outboxEvent, err := s.buildOutboxEvent(rid, record, event)
		if err != nil {
			s.logger.Error("build period closed event failed", zap.String("request_id", rid), zap.Error(err))
			return historyerrors.ErrHistoryNotSaved
		}
		if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
			s.logger.Error("save history outbox persist failed",
				zap.String("request_id", rid),
				zap.String("shop_id", record.ShopID),
				zap.Error(err),
			)
			return historyerrors.ErrHistoryNotSaved
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("save history commit failed", zap.String("request_id", rid), zap.Error(err))
		return historyerrors.ErrHistoryNotSaved
	}

	s.logger.Info("history saved",
		zap.String("request_id", rid),
		zap.String("shop_id", record.ShopID),
		zap.String("period", record.PeriodLabel),
		zap.Bool("event_queued", s.outbox != nil),
	)
	return nil
}

func (s *service) buildOutboxEvent(rid string, record HistoryRecord, event events.PeriodClosedEvent) (kafka.OutboxEvent, error) {
	event.EventType = events.PeriodClosedEventType
	event.RequestID = rid
	event.ShopID = record.ShopID
	event.PeriodLabel = record.PeriodLabel
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	return kafka.NewOutboxEvent(
		events.PeriodClosedTopic,
		event.EventType,
		aggregateType,
		record.ShopID+"/"+record.PeriodLabel,
		rid,
		event,
	)
}

func (s *service) GetAll(ctx context.Context, shopID string, req ListHistoryRequest) ([]HistoryRecordResponse, int64, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 {
		req.Limit = defaultLimit
	}

	records, total, err := s.repo.FindAllByShop(ctx, shopID, req.Limit, (req.Page-1)*req.Limit)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]HistoryRecordResponse, len(records))
	for i, r := range records {
		resp[i] = HistoryRecordResponse{
			PeriodLabel: r.PeriodLabel,
			Sales:       r.Sales,
			Expenses:    r.Expenses,
			Profit:      r.Profit,
			SavedAt:     r.UpdatedAt,
		}
	}
	return resp, total, nil
}
