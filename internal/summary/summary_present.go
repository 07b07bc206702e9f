package summary

import (
	"go-shopbook/internal/expense"
	"go-shopbook/internal/payroll"

	"github.com/shopspring/decimal"
)

// Present applies the display rounding. Salary, incentive, expense amounts
// and sales are rounded to whole rupees, half away from zero. Everything
// else is summed from those rounded figures, so every printed row and total
// adds up exactly:
//
//	net           = salary + incentive        (per row)
//	staff cost    = sum of net
//	expense lines = sum of amounts
//	expenses      = staff cost + expense lines
//	profit        = sales - expenses
//
// Saved history keeps the unrounded summary.
func Present(s PeriodSummary) PeriodSummary {
	payouts := make([]payroll.PayoutResult, len(s.Payouts))
	staffCost := decimal.Zero
	for i, p := range s.Payouts {
		salary := whole(p.ProratedSalary)
		incentive := whole(p.Incentive)
		net := salary.Add(incentive)

		payouts[i] = payroll.PayoutResult{
			Name:           p.Name,
			ProratedSalary: salary,
			Incentive:      incentive,
			NetPayout:      net,
		}
		staffCost = staffCost.Add(net)
	}

	lines := make([]expense.ExpenseLine, len(s.ExpenseLines))
	lineTotal := decimal.Zero
	for i, l := range s.ExpenseLines {
		amount := whole(l.Amount)
		lines[i] = expense.ExpenseLine{ItemName: l.ItemName, Amount: amount}
		lineTotal = lineTotal.Add(amount)
	}

	sales := whole(s.TotalSales)
	expenses := staffCost.Add(lineTotal)

	return PeriodSummary{
		Payouts:           payouts,
		ExpenseLines:      lines,
		TotalStaffCost:    staffCost,
		TotalExpenseLines: lineTotal,
		TotalExpenses:     expenses,
		TotalSales:        sales,
		NetProfit:         sales.Sub(expenses),
	}
}

func whole(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}
