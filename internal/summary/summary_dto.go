package summary

import "github.com/shopspring/decimal"

type StaffFiguresInput struct {
	Name           string          `json:"name" binding:"required,max=120"`
	LeavesTaken    int             `json:"leaves_taken" binding:"gte=0"`
	ServiceRevenue decimal.Decimal `json:"service_revenue"`
}

// ComputeSummaryRequest holds the month's variable figures. Staff missing from
// StaffInputs are computed with no leaves and no service revenue; expense items
// missing from ExpenseOverrides use their default amount.
type ComputeSummaryRequest struct {
	StaffInputs      []StaffFiguresInput        `json:"staff_inputs" binding:"dive"`
	ExpenseOverrides map[string]decimal.Decimal `json:"expense_overrides"`
	TotalSales       decimal.Decimal            `json:"total_sales"`
}

type SummaryResponse struct {
	ShopID      string        `json:"shop_id"`
	ShopName    string        `json:"shop_name"`
	PeriodLabel string        `json:"period_label"`
	DaysInMonth int           `json:"days_in_month"`
	Summary     PeriodSummary `json:"summary"`
	Presented   PeriodSummary `json:"presented"`
}
