package history

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HistoryRecord is the saved outcome of one shop's month. There is at most
// one per (shop, period); saving again overwrites it.
type HistoryRecord struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ShopID      string          `gorm:"type:varchar(64);not null;uniqueIndex:uq_history_shop_period" json:"shop_id"`
	PeriodLabel string          `gorm:"type:varchar(32);not null;uniqueIndex:uq_history_shop_period" json:"period_label"`
	Year        int             `gorm:"not null" json:"year"`
	Month       int             `gorm:"not null" json:"month"`
	Sales       decimal.Decimal `gorm:"type:numeric;not null" json:"sales"`
	Expenses    decimal.Decimal `gorm:"type:numeric;not null" json:"expenses"`
	Profit      decimal.Decimal `gorm:"type:numeric;not null" json:"profit"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (HistoryRecord) TableName() string {
	return "history_records"
}
