package expense_test

import (
	"errors"
	"testing"

	"go-shopbook/internal/expense"
	expenseerrors "go-shopbook/internal/expense/errors"
	"go-shopbook/internal/shared/apperror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func item(name string, amount int64) expense.ExpenseItem {
	return expense.ExpenseItem{ItemName: name, DefaultAmount: decimal.NewFromInt(amount)}
}

func TestAggregate_OverrideReplacesDefault(t *testing.T) {
	items := []expense.ExpenseItem{item("Rent", 5000), item("Electricity", 1200)}
	overrides := map[string]decimal.Decimal{"Electricity": decimal.NewFromInt(1500)}

	lines, total, err := expense.Aggregate(items, overrides)

	assert.NoError(t, err)
	assert.True(t, decimal.NewFromInt(6500).Equal(total))
	assert.Equal(t, []expense.ExpenseLine{
		{ItemName: "Rent", Amount: decimal.NewFromInt(5000)},
		{ItemName: "Electricity", Amount: decimal.NewFromInt(1500)},
	}, lines)
}

func TestAggregate_LinesFollowInputOrder(t *testing.T) {
	items := []expense.ExpenseItem{item("Wifi", 800), item("Rent", 5000), item("Tea", 350), item("Electricity", 1200)}
	reversed := []expense.ExpenseItem{items[3], items[2], items[1], items[0]}

	lines, total, err := expense.Aggregate(items, nil)
	assert.NoError(t, err)
	revLines, revTotal, err := expense.Aggregate(reversed, nil)
	assert.NoError(t, err)

	for i := range items {
		assert.Equal(t, items[i].ItemName, lines[i].ItemName)
		assert.Equal(t, reversed[i].ItemName, revLines[i].ItemName)
	}
	assert.True(t, total.Equal(revTotal))
	assert.True(t, decimal.NewFromInt(7350).Equal(total))
}

func TestAggregate_DoesNotMutateItems(t *testing.T) {
	items := []expense.ExpenseItem{item("Rent", 5000)}

	_, _, err := expense.Aggregate(items, map[string]decimal.Decimal{"Rent": decimal.NewFromInt(5200)})

	assert.NoError(t, err)
	assert.True(t, decimal.NewFromInt(5000).Equal(items[0].DefaultAmount))
}

func TestAggregate_Empty(t *testing.T) {
	lines, total, err := expense.Aggregate(nil, nil)

	assert.NoError(t, err)
	assert.Empty(t, lines)
	assert.True(t, total.IsZero())
}

func TestAggregate_NegativeAmount(t *testing.T) {
	t.Run("negative override", func(t *testing.T) {
		items := []expense.ExpenseItem{item("Rent", 5000)}

		lines, _, err := expense.Aggregate(items, map[string]decimal.Decimal{"Rent": decimal.NewFromInt(-1)})

		assert.Nil(t, lines)
		assert.True(t, errors.Is(err, expenseerrors.ErrNegativeAmount))
		assert.True(t, apperror.HasCode(err, apperror.CodeInvalidInput))
	})

	t.Run("negative default", func(t *testing.T) {
		_, _, err := expense.Aggregate([]expense.ExpenseItem{item("Refund", -20)}, nil)

		assert.True(t, errors.Is(err, expenseerrors.ErrNegativeAmount))
	})
}

func TestAggregate_UnknownOverride(t *testing.T) {
	items := []expense.ExpenseItem{item("Rent", 5000)}

	_, _, err := expense.Aggregate(items, map[string]decimal.Decimal{"Water": decimal.NewFromInt(10)})

	assert.True(t, errors.Is(err, expenseerrors.ErrUnknownOverride))
}
