package history

import (
	"time"

	"github.com/shopspring/decimal"
)

type ListHistoryRequest struct {
	Page  int `form:"page" binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=120"`
}

type HistoryRecordResponse struct {
	PeriodLabel string          `json:"period_label"`
	Sales       decimal.Decimal `json:"sales"`
	Expenses    decimal.Decimal `json:"expenses"`
	Profit      decimal.Decimal `json:"profit"`
	SavedAt     time.Time       `json:"saved_at"`
}
