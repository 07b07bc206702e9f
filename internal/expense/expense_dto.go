package expense

import "github.com/shopspring/decimal"

type ExpenseItemInput struct {
	ItemName      string          `json:"item_name" binding:"required,max=120"`
	DefaultAmount decimal.Decimal `json:"default_amount"`
}

type ReplaceExpensesRequest struct {
	Items []ExpenseItemInput `json:"items" binding:"dive"`
}

type ExpenseItemResponse struct {
	ItemName      string          `json:"item_name"`
	DefaultAmount decimal.Decimal `json:"default_amount"`
}
