package expense

import (
	"fmt"

	expenseerrors "go-shopbook/internal/expense/errors"

	"github.com/shopspring/decimal"
)

// Aggregate resolves each item to its override amount, or its default when
// no override is given, and sums them. Lines follow the order of items.
// An override naming an item not in items is rejected rather than ignored.
func Aggregate(items []ExpenseItem, overrides map[string]decimal.Decimal) ([]ExpenseLine, decimal.Decimal, error) {
	known := make(map[string]struct{}, len(items))
	for _, item := range items {
		known[item.ItemName] = struct{}{}
	}
	for name := range overrides {
		if _, ok := known[name]; !ok {
			return nil, decimal.Zero, fmt.Errorf("%w: %q", expenseerrors.ErrUnknownOverride, name)
		}
	}

	lines := make([]ExpenseLine, 0, len(items))
	total := decimal.Zero

	for _, item := range items {
		amount := item.DefaultAmount
		if override, ok := overrides[item.ItemName]; ok {
			amount = override
		}
		if amount.IsNegative() {
			return nil, decimal.Zero, fmt.Errorf("%w: %q is %s", expenseerrors.ErrNegativeAmount, item.ItemName, amount)
		}

		lines = append(lines, ExpenseLine{ItemName: item.ItemName, Amount: amount})
		total = total.Add(amount)
	}

	return lines, total, nil
}
