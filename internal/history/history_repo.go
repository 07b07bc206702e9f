package history

import (
	"context"
	"database/sql"

	"go-shopbook/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=history_repo.go -destination=mock/history_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Upsert(ctx context.Context, record *HistoryRecord) error
	FindAllByShop(ctx context.Context, shopID string, limit, offset int) ([]HistoryRecord, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx runs the repository's statements on tx, so they commit together with
// whatever else the caller writes on it.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	txDB := r.db.Session(&gorm.Session{NewDB: true, SkipDefaultTransaction: true})
	txDB.Statement.ConnPool = tx
	return &repository{db: txDB}
}

func (r *repository) Upsert(ctx context.Context, record *HistoryRecord) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "shop_id"}, {Name: "period_label"}},
			DoUpdates: clause.AssignmentColumns([]string{"sales", "expenses", "profit", "updated_at"}),
		}).
		Create(record).Error
}

// FindAllByShop pages through the shop's records, newest period first.
func (r *repository) FindAllByShop(ctx context.Context, shopID string, limit, offset int) ([]HistoryRecord, int64, error) {
	var (
		records []HistoryRecord
		total   int64
	)

	if err := r.db.WithContext(ctx).
		Model(&HistoryRecord{}).
		Scopes(tenant.Scope(shopID)).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(shopID)).
		Order("year DESC, month DESC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error
	return records, total, err
}
