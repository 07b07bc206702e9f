package summary_test

import (
	"context"
	"errors"
	"testing"

	"go-shopbook/internal/events"
	"go-shopbook/internal/expense"
	expenseerrors "go-shopbook/internal/expense/errors"
	"go-shopbook/internal/history"
	historyerrors "go-shopbook/internal/history/errors"
	payrollerrors "go-shopbook/internal/payroll/errors"
	perioderrors "go-shopbook/internal/period/errors"
	"go-shopbook/internal/shared/apperror"
	"go-shopbook/internal/shop"
	shoperrors "go-shopbook/internal/shop/errors"
	"go-shopbook/internal/staff"
	"go-shopbook/internal/summary"
	summaryerrors "go-shopbook/internal/summary/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type serviceDeps struct {
	shops    *fakeShopService
	staff    *fakeStaffService
	expenses *fakeExpenseService
	history  *fakeHistoryService
	service  summary.Service
}

func setupServiceTest() *serviceDeps {
	deps := &serviceDeps{
		shops: &fakeShopService{getByIDFn: func(_ context.Context, id string) (shop.Shop, error) {
			return shop.Shop{ID: id, Name: "Glow Salon"}, nil
		}},
		staff: &fakeStaffService{members: []staff.StaffMember{
			{Name: "Ravi", BaseSalary: dec("30000"), IncentivePercent: dec("10")},
		}},
		expenses: &fakeExpenseService{items: []expense.ExpenseItem{
			{ItemName: "Rent", DefaultAmount: dec("5000")},
			{ItemName: "Electricity", DefaultAmount: dec("1200")},
		}},
		history: &fakeHistoryService{saveFn: func(context.Context, history.HistoryRecord, events.PeriodClosedEvent) error {
			return nil
		}},
	}
	deps.service = summary.NewService(deps.shops, deps.staff, deps.expenses, deps.history)
	return deps
}

func scenarioRequest() summary.ComputeSummaryRequest {
	return summary.ComputeSummaryRequest{
		StaffInputs: []summary.StaffFiguresInput{
			{Name: "Ravi", LeavesTaken: 3, ServiceRevenue: dec("5000")},
		},
		ExpenseOverrides: map[string]decimal.Decimal{"Electricity": dec("1500")},
		TotalSales:       dec("50000"),
	}
}

func TestSummaryService_Compute(t *testing.T) {
	ctx := context.Background()

	t.Run("end to end month", func(t *testing.T) {
		deps := setupServiceTest()

		// June has 30 days.
		resp, err := deps.service.Compute(ctx, "glow", "june_2025", scenarioRequest())

		assert.NoError(t, err)
		assert.Equal(t, "glow", resp.ShopID)
		assert.Equal(t, "Glow Salon", resp.ShopName)
		assert.Equal(t, "June_2025", resp.PeriodLabel)
		assert.Equal(t, 30, resp.DaysInMonth)

		s := resp.Summary
		if assert.Len(t, s.Payouts, 1) {
			assert.True(t, s.Payouts[0].ProratedSalary.Equal(dec("27000")))
			assert.True(t, s.Payouts[0].Incentive.Equal(dec("500")))
			assert.True(t, s.Payouts[0].NetPayout.Equal(dec("27500")))
		}
		assert.True(t, s.TotalExpenseLines.Equal(dec("6500")))
		assert.True(t, s.TotalExpenses.Equal(dec("34000")))
		assert.True(t, s.NetProfit.Equal(dec("16000")))
		assert.True(t, resp.Presented.NetProfit.Equal(dec("16000")))
	})

	t.Run("staff without figures get none", func(t *testing.T) {
		deps := setupServiceTest()
		deps.staff.members = append(deps.staff.members, staff.StaffMember{
			Name: "Meena", BaseSalary: dec("20000"), IncentivePercent: dec("5"),
		})

		resp, err := deps.service.Compute(ctx, "glow", "June_2025", scenarioRequest())

		assert.NoError(t, err)
		if assert.Len(t, resp.Summary.Payouts, 2) {
			assert.Equal(t, "Meena", resp.Summary.Payouts[1].Name)
			assert.True(t, resp.Summary.Payouts[1].NetPayout.Equal(dec("20000")))
		}
	})

	t.Run("names match ignoring case and spaces", func(t *testing.T) {
		deps := setupServiceTest()
		req := scenarioRequest()
		req.StaffInputs[0].Name = "  ravi "

		resp, err := deps.service.Compute(ctx, "glow", "June_2025", req)

		assert.NoError(t, err)
		assert.True(t, resp.Summary.Payouts[0].NetPayout.Equal(dec("27500")))
	})

	t.Run("leaves beyond the month", func(t *testing.T) {
		deps := setupServiceTest()
		req := scenarioRequest()
		req.StaffInputs[0].LeavesTaken = 31

		resp, err := deps.service.Compute(ctx, "glow", "June_2025", req)

		assert.ErrorIs(t, err, payrollerrors.ErrLeavesOutOfRange)
		assert.True(t, apperror.HasCode(err, apperror.CodeInvalidInput))
		assert.Empty(t, resp.ShopID)
	})

	t.Run("invalid period", func(t *testing.T) {
		deps := setupServiceTest()

		_, err := deps.service.Compute(ctx, "glow", "Smarch_2025", scenarioRequest())

		assert.True(t, apperror.HasCode(err, apperror.CodeInvalidPeriod))
		assert.ErrorIs(t, err, perioderrors.ErrInvalidMonthName)
	})

	t.Run("unknown staff name", func(t *testing.T) {
		deps := setupServiceTest()
		req := scenarioRequest()
		req.StaffInputs = append(req.StaffInputs, summary.StaffFiguresInput{Name: "Ghost"})

		_, err := deps.service.Compute(ctx, "glow", "June_2025", req)

		assert.ErrorIs(t, err, summaryerrors.ErrUnknownStaff)
	})

	t.Run("figures entered twice", func(t *testing.T) {
		deps := setupServiceTest()
		req := scenarioRequest()
		req.StaffInputs = append(req.StaffInputs, summary.StaffFiguresInput{Name: "RAVI"})

		_, err := deps.service.Compute(ctx, "glow", "June_2025", req)

		assert.ErrorIs(t, err, summaryerrors.ErrDuplicateStaffFigures)
	})

	t.Run("negative override", func(t *testing.T) {
		deps := setupServiceTest()
		req := scenarioRequest()
		req.ExpenseOverrides["Rent"] = dec("-1")

		_, err := deps.service.Compute(ctx, "glow", "June_2025", req)

		assert.ErrorIs(t, err, expenseerrors.ErrNegativeAmount)
	})

	t.Run("negative sales", func(t *testing.T) {
		deps := setupServiceTest()
		req := scenarioRequest()
		req.TotalSales = dec("-10")

		_, err := deps.service.Compute(ctx, "glow", "June_2025", req)

		assert.ErrorIs(t, err, summaryerrors.ErrNegativeSales)
	})

	t.Run("unknown shop", func(t *testing.T) {
		deps := setupServiceTest()
		deps.shops.getByIDFn = func(context.Context, string) (shop.Shop, error) {
			return shop.Shop{}, shoperrors.ErrShopNotFound
		}

		_, err := deps.service.Compute(ctx, "nope", "June_2025", scenarioRequest())

		assert.ErrorIs(t, err, shoperrors.ErrShopNotFound)
	})

	t.Run("master data load failure", func(t *testing.T) {
		deps := setupServiceTest()
		deps.expenses.err = errors.New("db down")

		_, err := deps.service.Compute(ctx, "glow", "June_2025", scenarioRequest())

		assert.EqualError(t, err, "db down")
	})
}

func TestSummaryService_Close(t *testing.T) {
	ctx := context.Background()

	t.Run("saves raw figures and the statement event", func(t *testing.T) {
		deps := setupServiceTest()
		var (
			saved history.HistoryRecord
			event events.PeriodClosedEvent
		)
		deps.history.saveFn = func(_ context.Context, rec history.HistoryRecord, ev events.PeriodClosedEvent) error {
			saved, event = rec, ev
			return nil
		}

		resp, err := deps.service.Close(ctx, "glow", "June_2025", scenarioRequest())

		assert.NoError(t, err)
		assert.Equal(t, "June_2025", resp.PeriodLabel)
		assert.Equal(t, "glow", saved.ShopID)
		assert.Equal(t, 2025, saved.Year)
		assert.Equal(t, 6, saved.Month)
		assert.True(t, saved.Sales.Equal(dec("50000")))
		assert.True(t, saved.Expenses.Equal(dec("34000")))
		assert.True(t, saved.Profit.Equal(dec("16000")))

		assert.Equal(t, "Glow Salon", event.ShopName)
		assert.Len(t, event.Payouts, 1)
		assert.Len(t, event.Expenses, 2)
		rebuilt := summary.FromEvent(event)
		assert.True(t, rebuilt.NetProfit.Equal(resp.Summary.NetProfit))
	})

	t.Run("saved figures keep every fractional digit", func(t *testing.T) {
		deps := setupServiceTest()
		var saved history.HistoryRecord
		deps.history.saveFn = func(_ context.Context, rec history.HistoryRecord, _ events.PeriodClosedEvent) error {
			saved = rec
			return nil
		}

		// 30000 * 29 / 31 has no finite decimal form
		resp, err := deps.service.Close(ctx, "glow", "March_2025", summary.ComputeSummaryRequest{
			StaffInputs: []summary.StaffFiguresInput{{Name: "Ravi", LeavesTaken: 2}},
			TotalSales:  dec("50000"),
		})

		assert.NoError(t, err)
		assert.True(t, saved.Expenses.Equal(resp.Summary.TotalExpenses))
		assert.True(t, saved.Profit.Equal(resp.Summary.NetProfit))
		assert.False(t, saved.Expenses.Equal(saved.Expenses.Round(4)))
		assert.Equal(t, "34265", resp.Presented.TotalExpenses.String())
	})

	t.Run("storage failure still returns the summary", func(t *testing.T) {
		deps := setupServiceTest()
		deps.history.saveFn = func(context.Context, history.HistoryRecord, events.PeriodClosedEvent) error {
			return historyerrors.ErrHistoryNotSaved
		}

		resp, err := deps.service.Close(ctx, "glow", "June_2025", scenarioRequest())

		assert.ErrorIs(t, err, historyerrors.ErrHistoryNotSaved)
		assert.Equal(t, "glow", resp.ShopID)
		assert.True(t, resp.Summary.NetProfit.Equal(dec("16000")))
	})

	t.Run("invalid input saves nothing", func(t *testing.T) {
		deps := setupServiceTest()
		called := false
		deps.history.saveFn = func(context.Context, history.HistoryRecord, events.PeriodClosedEvent) error {
			called = true
			return nil
		}
		req := scenarioRequest()
		req.StaffInputs[0].LeavesTaken = 31

		_, err := deps.service.Close(ctx, "glow", "June_2025", req)

		assert.Error(t, err)
		assert.False(t, called)
	})
}
