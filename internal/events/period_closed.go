package events

import (
	"time"

	"github.com/shopspring/decimal"
)

const PeriodClosedTopic = "shopbook.period.closed.v1"

const PeriodClosedEventType = "period_closed"

// PeriodClosedEvent carries everything needed to render the statement, so
// consumers never read master data that may have changed since the save.
type PeriodClosedEvent struct {
	EventType   string          `json:"event_type"`
	RequestID   string          `json:"request_id,omitempty"`
	ShopID      string          `json:"shop_id"`
	ShopName    string          `json:"shop_name"`
	PeriodLabel string          `json:"period_label"`
	Payouts     []PayoutLine    `json:"payouts"`
	Expenses    []ExpenseLine   `json:"expenses"`
	TotalSales  decimal.Decimal `json:"total_sales"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

type PayoutLine struct {
	Name           string          `json:"name"`
	ProratedSalary decimal.Decimal `json:"prorated_salary"`
	Incentive      decimal.Decimal `json:"incentive"`
	NetPayout      decimal.Decimal `json:"net_payout"`
}

type ExpenseLine struct {
	ItemName string          `json:"item_name"`
	Amount   decimal.Decimal `json:"amount"`
}
