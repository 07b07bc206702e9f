// Package payroll computes what a staff member is paid for one month.
package payroll

import (
	"fmt"

	payrollerrors "go-shopbook/internal/payroll/errors"
	"go-shopbook/internal/staff"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// PeriodInput holds the month's variable figures for one staff member.
type PeriodInput struct {
	LeavesTaken    int
	ServiceRevenue decimal.Decimal
}

// PayoutResult is kept at full precision; rounding is a presentation concern.
type PayoutResult struct {
	Name           string          `json:"name"`
	ProratedSalary decimal.Decimal `json:"prorated_salary"`
	Incentive      decimal.Decimal `json:"incentive"`
	NetPayout      decimal.Decimal `json:"net_payout"`
}

// ComputePayout prorates the base salary by days present and adds the
// incentive share of service revenue.
//
//	prorated  = base * (days - leaves) / days
//	incentive = revenue * percent / 100
//	net       = prorated + incentive
//
// The multiplication is done before the division so that zero leaves gives
// back the base salary exactly. incentivePercent is not clamped.
func ComputePayout(member staff.StaffMember, input PeriodInput, daysInMonth int) (PayoutResult, error) {
	if daysInMonth <= 0 {
		return PayoutResult{}, fmt.Errorf("%w: got %d", payrollerrors.ErrInvalidDaysInMonth, daysInMonth)
	}
	if input.LeavesTaken < 0 || input.LeavesTaken > daysInMonth {
		return PayoutResult{}, fmt.Errorf("%w: %s took %d of %d", payrollerrors.ErrLeavesOutOfRange, member.Name, input.LeavesTaken, daysInMonth)
	}
	if input.ServiceRevenue.IsNegative() {
		return PayoutResult{}, fmt.Errorf("%w: %s", payrollerrors.ErrNegativeServiceRevenue, member.Name)
	}
	if member.BaseSalary.IsNegative() {
		return PayoutResult{}, fmt.Errorf("%w: %s", payrollerrors.ErrNegativeBaseSalary, member.Name)
	}

	days := decimal.NewFromInt(int64(daysInMonth))
	present := decimal.NewFromInt(int64(daysInMonth - input.LeavesTaken))

	prorated := member.BaseSalary.Mul(present).Div(days)
	incentive := input.ServiceRevenue.Mul(member.IncentivePercent).Div(hundred)

	return PayoutResult{
		Name:           member.Name,
		ProratedSalary: prorated,
		Incentive:      incentive,
		NetPayout:      prorated.Add(incentive),
	}, nil
}
