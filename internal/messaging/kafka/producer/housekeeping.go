package producer

import (
	"context"
	"time"

	"go-shopbook/internal/messaging/kafka"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const purgeTimeout = time.Minute

// Housekeeper periodically deletes outbox rows that were published long ago.
type Housekeeper struct {
	cron      *cron.Cron
	repo      kafka.OutboxRepository
	retention time.Duration
	logger    *zap.Logger
	now       func() time.Time
}

func NewHousekeeper(repo kafka.OutboxRepository, retention time.Duration, logger *zap.Logger) *Housekeeper {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Housekeeper{
		cron:      cron.New(),
		repo:      repo,
		retention: retention,
		logger:    logger.Named("kafka.outbox.housekeeper"),
		now:       time.Now,
	}
}

// Start schedules the purge with a standard five-field cron spec.
func (h *Housekeeper) Start(spec string) error {
	if _, err := h.cron.AddFunc(spec, h.run); err != nil {
		return err
	}
	h.cron.Start()
	h.logger.Info("outbox housekeeping scheduled", zap.String("spec", spec), zap.Duration("retention", h.retention))
	return nil
}

// Stop waits for a running purge to finish.
func (h *Housekeeper) Stop() {
	<-h.cron.Stop().Done()
	h.logger.Info("outbox housekeeping stopped")
}

func (h *Housekeeper) run() {
	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()

	if _, err := h.Purge(ctx); err != nil {
		h.logger.Error("purge sent outbox events failed", zap.Error(err))
	}
}

// Purge removes sent rows older than the retention window.
func (h *Housekeeper) Purge(ctx context.Context) (int64, error) {
	cutoff := h.now().Add(-h.retention)
	n, err := h.repo.PurgeSent(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		h.logger.Info("purged sent outbox events", zap.Int64("count", n), zap.Time("cutoff", cutoff))
	}
	return n, nil
}
