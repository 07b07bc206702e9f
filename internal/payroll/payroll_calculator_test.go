package payroll_test

import (
	"errors"
	"testing"

	"go-shopbook/internal/payroll"
	payrollerrors "go-shopbook/internal/payroll/errors"
	"go-shopbook/internal/shared/apperror"
	"go-shopbook/internal/staff"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func member(base, percent string) staff.StaffMember {
	return staff.StaffMember{
		Name:             "Ravi",
		BaseSalary:       decimal.RequireFromString(base),
		IncentivePercent: decimal.RequireFromString(percent),
	}
}

func TestComputePayout_Scenario(t *testing.T) {
	got, err := payroll.ComputePayout(member("30000", "10"), payroll.PeriodInput{
		LeavesTaken:    3,
		ServiceRevenue: decimal.NewFromInt(5000),
	}, 30)

	assert.NoError(t, err)
	assert.Equal(t, "Ravi", got.Name)
	assert.True(t, decimal.NewFromInt(27000).Equal(got.ProratedSalary), got.ProratedSalary.String())
	assert.True(t, decimal.NewFromInt(500).Equal(got.Incentive), got.Incentive.String())
	assert.True(t, decimal.NewFromInt(27500).Equal(got.NetPayout), got.NetPayout.String())
}

func TestComputePayout_ProrationBounds(t *testing.T) {
	for _, days := range []int{28, 29, 30, 31} {
		m := member("30000", "0")

		full, err := payroll.ComputePayout(m, payroll.PeriodInput{LeavesTaken: 0}, days)
		assert.NoError(t, err)
		assert.True(t, m.BaseSalary.Equal(full.ProratedSalary), "days=%d got %s", days, full.ProratedSalary)

		none, err := payroll.ComputePayout(m, payroll.PeriodInput{LeavesTaken: days}, days)
		assert.NoError(t, err)
		assert.True(t, none.ProratedSalary.IsZero(), "days=%d got %s", days, none.ProratedSalary)
	}
}

func TestComputePayout_MonotonicInLeaves(t *testing.T) {
	for _, days := range []int{28, 30, 31} {
		m := member("27777.77", "0")
		prev := m.BaseSalary

		for leaves := 0; leaves <= days; leaves++ {
			got, err := payroll.ComputePayout(m, payroll.PeriodInput{LeavesTaken: leaves}, days)

			assert.NoError(t, err)
			assert.True(t, got.ProratedSalary.LessThanOrEqual(prev), "days=%d leaves=%d", days, leaves)
			prev = got.ProratedSalary
		}
	}
}

func TestComputePayout_IncentiveIsExactAndUnclamped(t *testing.T) {
	cases := []struct {
		revenue string
		percent string
	}{
		{"5000", "10"},
		{"1234.56", "7.5"},
		{"999.99", "150"},
		{"0", "12"},
	}

	for _, tc := range cases {
		revenue := decimal.RequireFromString(tc.revenue)
		percent := decimal.RequireFromString(tc.percent)

		got, err := payroll.ComputePayout(member("0", tc.percent), payroll.PeriodInput{ServiceRevenue: revenue}, 30)

		assert.NoError(t, err)
		want := revenue.Mul(percent).Div(decimal.NewFromInt(100))
		assert.True(t, want.Equal(got.Incentive), "%s * %s%% = %s", tc.revenue, tc.percent, got.Incentive)
		assert.True(t, got.NetPayout.Equal(got.ProratedSalary.Add(got.Incentive)))
	}
}

func TestComputePayout_InvalidInput(t *testing.T) {
	t.Run("leaves above days in month", func(t *testing.T) {
		_, err := payroll.ComputePayout(member("30000", "10"), payroll.PeriodInput{LeavesTaken: 31}, 30)

		assert.True(t, errors.Is(err, payrollerrors.ErrLeavesOutOfRange))
		assert.True(t, apperror.HasCode(err, apperror.CodeInvalidInput))
	})

	t.Run("negative leaves", func(t *testing.T) {
		_, err := payroll.ComputePayout(member("30000", "10"), payroll.PeriodInput{LeavesTaken: -1}, 30)

		assert.True(t, errors.Is(err, payrollerrors.ErrLeavesOutOfRange))
	})

	t.Run("zero day month", func(t *testing.T) {
		_, err := payroll.ComputePayout(member("30000", "10"), payroll.PeriodInput{}, 0)

		assert.True(t, errors.Is(err, payrollerrors.ErrInvalidDaysInMonth))
		assert.True(t, apperror.HasCode(err, apperror.CodeInvalidInput))
	})

	t.Run("negative service revenue", func(t *testing.T) {
		_, err := payroll.ComputePayout(member("30000", "10"), payroll.PeriodInput{ServiceRevenue: decimal.NewFromInt(-1)}, 30)

		assert.True(t, errors.Is(err, payrollerrors.ErrNegativeServiceRevenue))
	})

	t.Run("negative base salary", func(t *testing.T) {
		_, err := payroll.ComputePayout(member("-1", "10"), payroll.PeriodInput{}, 30)

		assert.True(t, errors.Is(err, payrollerrors.ErrNegativeBaseSalary))
	})
}
