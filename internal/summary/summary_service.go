package summary

import (
	"context"
	"fmt"
	"strings"

	"go-shopbook/internal/events"
	"go-shopbook/internal/expense"
	"go-shopbook/internal/history"
	"go-shopbook/internal/payroll"
	"go-shopbook/internal/period"
	"go-shopbook/internal/shared/contextutil"
	"go-shopbook/internal/shop"
	"go-shopbook/internal/staff"
	summaryerrors "go-shopbook/internal/summary/errors"

	"go.uber.org/zap"
)

//go:generate mockgen -source=summary_service.go -destination=mock/summary_service_mock.go -package=mock
type Service interface {
	// Compute loads the shop's master data and computes the month. Nothing is saved.
	Compute(ctx context.Context, shopID, periodLabel string, req ComputeSummaryRequest) (SummaryResponse, error)
	// Close computes the month and saves it to history. When only the save
	// fails, the computed response is still returned alongside the error.
	Close(ctx context.Context, shopID, periodLabel string, req ComputeSummaryRequest) (SummaryResponse, error)
}

type service struct {
	shops    shop.Service
	staff    staff.Service
	expenses expense.Service
	history  history.Service
}

func NewService(
	shops shop.Service,
	staffService staff.Service,
	expenseService expense.Service,
	historyService history.Service,
) Service {
	return &service{
		shops:    shops,
		staff:    staffService,
		expenses: expenseService,
		history:  historyService,
	}
}

func (s *service) Compute(ctx context.Context, shopID, periodLabel string, req ComputeSummaryRequest) (SummaryResponse, error) {
	p, err := period.ParseLabel(periodLabel)
	if err != nil {
		return SummaryResponse{}, err
	}
	if req.TotalSales.IsNegative() {
		return SummaryResponse{}, fmt.Errorf("%w: %s", summaryerrors.ErrNegativeSales, req.TotalSales)
	}

	sh, err := s.shops.GetByID(ctx, shopID)
	if err != nil {
		return SummaryResponse{}, err
	}
	members, err := s.staff.Members(ctx, shopID)
	if err != nil {
		return SummaryResponse{}, err
	}
	items, err := s.expenses.Items(ctx, shopID)
	if err != nil {
		return SummaryResponse{}, err
	}

	figures, err := matchFigures(members, req.StaffInputs)
	if err != nil {
		return SummaryResponse{}, err
	}

	days := p.Days()
	payouts := make([]payroll.PayoutResult, 0, len(members))
	for i, m := range members {
		payout, err := payroll.ComputePayout(m, figures[i], days)
		if err != nil {
			return SummaryResponse{}, err
		}
		payouts = append(payouts, payout)
	}

	lines, _, err := expense.Aggregate(items, req.ExpenseOverrides)
	if err != nil {
		return SummaryResponse{}, err
	}

	built := BuildSummary(payouts, lines, req.TotalSales)

	contextutil.GetLogger(ctx, zap.L()).Debug("period summary computed",
		zap.String("shop_id", shopID),
		zap.String("period", p.Label()),
		zap.Int("staff", len(payouts)),
		zap.Int("expense_lines", len(lines)),
	)

	return SummaryResponse{
		ShopID:      sh.ID,
		ShopName:    sh.Name,
		PeriodLabel: p.Label(),
		DaysInMonth: days,
		Summary:     built,
		Presented:   Present(built),
	}, nil
}

func (s *service) Close(ctx context.Context, shopID, periodLabel string, req ComputeSummaryRequest) (SummaryResponse, error) {
	resp, err := s.Compute(ctx, shopID, periodLabel, req)
	if err != nil {
		return SummaryResponse{}, err
	}

	p, _ := period.ParseLabel(resp.PeriodLabel)
	record := history.HistoryRecord{
		ShopID:      resp.ShopID,
		PeriodLabel: resp.PeriodLabel,
		Year:        p.Year,
		Month:       int(p.Month),
		Sales:       resp.Summary.TotalSales,
		Expenses:    resp.Summary.TotalExpenses,
		Profit:      resp.Summary.NetProfit,
	}

	if err := s.history.Save(ctx, record, periodClosedEvent(resp)); err != nil {
		contextutil.GetLogger(ctx, zap.L()).Warn("period summary not saved",
			zap.String("shop_id", resp.ShopID),
			zap.String("period", resp.PeriodLabel),
			zap.Error(err),
		)
		return resp, err
	}

	return resp, nil
}

// matchFigures lines the entered figures up with members by name,
// ignoring case and surrounding spaces.
func matchFigures(members []staff.StaffMember, inputs []StaffFiguresInput) ([]payroll.PeriodInput, error) {
	index := make(map[string]int, len(members))
	for i, m := range members {
		index[normalizeName(m.Name)] = i
	}

	figures := make([]payroll.PeriodInput, len(members))
	seen := make(map[int]struct{}, len(inputs))
	for _, in := range inputs {
		i, ok := index[normalizeName(in.Name)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", summaryerrors.ErrUnknownStaff, in.Name)
		}
		if _, dup := seen[i]; dup {
			return nil, fmt.Errorf("%w: %q", summaryerrors.ErrDuplicateStaffFigures, in.Name)
		}
		seen[i] = struct{}{}

		figures[i] = payroll.PeriodInput{
			LeavesTaken:    in.LeavesTaken,
			ServiceRevenue: in.ServiceRevenue,
		}
	}

	return figures, nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func periodClosedEvent(resp SummaryResponse) events.PeriodClosedEvent {
	payouts := make([]events.PayoutLine, len(resp.Summary.Payouts))
	for i, p := range resp.Summary.Payouts {
		payouts[i] = events.PayoutLine{
			Name:           p.Name,
			ProratedSalary: p.ProratedSalary,
			Incentive:      p.Incentive,
			NetPayout:      p.NetPayout,
		}
	}

	lines := make([]events.ExpenseLine, len(resp.Summary.ExpenseLines))
	for i, l := range resp.Summary.ExpenseLines {
		lines[i] = events.ExpenseLine{ItemName: l.ItemName, Amount: l.Amount}
	}

	return events.PeriodClosedEvent{
		ShopID:      resp.ShopID,
		ShopName:    resp.ShopName,
		PeriodLabel: resp.PeriodLabel,
		Payouts:     payouts,
		Expenses:    lines,
		TotalSales:  resp.Summary.TotalSales,
	}
}

// FromEvent rebuilds the summary carried by a PeriodClosedEvent.
func FromEvent(event events.PeriodClosedEvent) PeriodSummary {
	payouts := make([]payroll.PayoutResult, len(event.Payouts))
	for i, p := range event.Payouts {
		payouts[i] = payroll.PayoutResult{
			Name:           p.Name,
			ProratedSalary: p.ProratedSalary,
			Incentive:      p.Incentive,
			NetPayout:      p.NetPayout,
		}
	}

	lines := make([]expense.ExpenseLine, len(event.Expenses))
	for i, l := range event.Expenses {
		lines[i] = expense.ExpenseLine{ItemName: l.ItemName, Amount: l.Amount}
	}

	return BuildSummary(payouts, lines, event.TotalSales)
}
