// Package summary turns a month's payouts, expense lines and sales into the
// figures that are saved to history and printed on the statement.
package summary

import (
	"go-shopbook/internal/expense"
	"go-shopbook/internal/payroll"

	"github.com/shopspring/decimal"
)

// PeriodSummary always satisfies
//
//	TotalExpenses = TotalStaffCost + TotalExpenseLines
//	NetProfit     = TotalSales - TotalExpenses
//
// for values produced by BuildSummary.
type PeriodSummary struct {
	Payouts           []payroll.PayoutResult `json:"payouts"`
	ExpenseLines      []expense.ExpenseLine  `json:"expense_lines"`
	TotalStaffCost    decimal.Decimal        `json:"total_staff_cost"`
	TotalExpenseLines decimal.Decimal        `json:"total_expense_lines"`
	TotalExpenses     decimal.Decimal        `json:"total_expenses"`
	TotalSales        decimal.Decimal        `json:"total_sales"`
	NetProfit         decimal.Decimal        `json:"net_profit"`
}

// BuildSummary sums without rounding. The returned summary owns copies of
// payouts and lines.
func BuildSummary(payouts []payroll.PayoutResult, lines []expense.ExpenseLine, totalSales decimal.Decimal) PeriodSummary {
	staffCost := decimal.Zero
	for _, p := range payouts {
		staffCost = staffCost.Add(p.NetPayout)
	}

	lineTotal := decimal.Zero
	for _, l := range lines {
		lineTotal = lineTotal.Add(l.Amount)
	}

	totalExpenses := staffCost.Add(lineTotal)

	return PeriodSummary{
		Payouts:           append([]payroll.PayoutResult(nil), payouts...),
		ExpenseLines:      append([]expense.ExpenseLine(nil), lines...),
		TotalStaffCost:    staffCost,
		TotalExpenseLines: lineTotal,
		TotalExpenses:     totalExpenses,
		TotalSales:        totalSales,
		NetProfit:         totalSales.Sub(totalExpenses),
	}
}
