package kafka

import (
	"context"
	"database/sql"
	"time"
)

const (
	// MaxPublishAttempts is how many failed publishes move a row to dead.
	MaxPublishAttempts = 10
	// RetryBackoff grows linearly with the attempt number.
	RetryBackoff = 15 * time.Second

	maxErrorMessageLen = 500
)

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock

type OutboxRepository interface {
	WithTx(tx *sql.Tx) OutboxRepository
	Create(ctx context.Context, event OutboxEvent) error
	ListPending(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, reason string) error
	// PurgeSent deletes sent rows processed before cutoff.
	PurgeSent(ctx context.Context, cutoff time.Time) (int64, error)
}

type sqlRunner interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type outboxRepository struct {
	db *sql.DB
	tx *sql.Tx
}

func NewOutboxRepository(db *sql.DB) OutboxRepository {
	return &outboxRepository{db: db}
}

func (r *outboxRepository) WithTx(tx *sql.Tx) OutboxRepository {
	return &outboxRepository{db: r.db, tx: tx}
}

func (r *outboxRepository) runner() sqlRunner {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

const insertOutboxSQL = `
INSERT INTO outbox_events
	(id, request_id, aggregate_type, aggregate_id, event_type, topic, payload, status, retry_count, created_at, updated_at)
VALUES
	($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, 0, NOW(), NOW())`

func (r *outboxRepository) Create(ctx context.Context, event OutboxEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	_, err := r.runner().ExecContext(ctx, insertOutboxSQL,
		event.ID,
		event.RequestID,
		event.AggregateType,
		event.AggregateID,
		event.EventType,
		event.Topic,
		event.Payload,
		event.Status,
	)
	return err
}

// Due rows are pending ones and failed ones whose backoff has elapsed,
// oldest first.
const selectDueOutboxSQL = `
SELECT id::text, COALESCE(request_id, ''), aggregate_type, aggregate_id, event_type,
	topic, payload, status, retry_count, COALESCE(next_retry_at, created_at)
FROM outbox_events
WHERE status = ANY($1)
	AND COALESCE(next_retry_at, created_at) <= NOW()
ORDER BY created_at
LIMIT $2`

func (r *outboxRepository) ListPending(ctx context.Context, limit int) ([]OutboxEvent, error) {
	rows, err := r.runner().QueryContext(ctx, selectDueOutboxSQL,
		"{"+OutboxStatusPending+","+OutboxStatusFailed+"}",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var due []OutboxEvent
	for rows.Next() {
		var e OutboxEvent
		err := rows.Scan(&e.ID, &e.RequestID, &e.AggregateType, &e.AggregateID, &e.EventType,
			&e.Topic, &e.Payload, &e.Status, &e.RetryCount, &e.NextRetryAt)
		if err != nil {
			return nil, err
		}
		due = append(due, e)
	}
	return due, rows.Err()
}

const markSentSQL = `
UPDATE outbox_events
SET status = $2, processed_at = NOW(), error_message = NULL, updated_at = NOW()
WHERE id = $1`

func (r *outboxRepository) MarkSent(ctx context.Context, id string) error {
	_, err := r.runner().ExecContext(ctx, markSentSQL, id, OutboxStatusSent)
	return err
}

const markFailedSQL = `
UPDATE outbox_events
SET retry_count = retry_count + 1,
	status = CASE WHEN retry_count + 1 >= $4 THEN $5 ELSE $2 END,
	error_message = $3,
	next_retry_at = NOW() + (retry_count + 1) * make_interval(secs => $6),
	updated_at = NOW()
WHERE id = $1`

func (r *outboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	if len(reason) > maxErrorMessageLen {
		reason = reason[:maxErrorMessageLen]
	}

	_, err := r.runner().ExecContext(ctx, markFailedSQL,
		id,
		OutboxStatusFailed,
		reason,
		MaxPublishAttempts,
		OutboxStatusDead,
		RetryBackoff.Seconds(),
	)
	return err
}

const purgeSentSQL = `
DELETE FROM outbox_events
WHERE status = $1 AND processed_at < $2`

func (r *outboxRepository) PurgeSent(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.runner().ExecContext(ctx, purgeSentSQL, OutboxStatusSent, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
