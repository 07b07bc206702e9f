package summary_test

import (
	"context"

	"go-shopbook/internal/events"
	"go-shopbook/internal/expense"
	"go-shopbook/internal/history"
	"go-shopbook/internal/shop"
	"go-shopbook/internal/staff"
)

type fakeShopService struct {
	getByIDFn func(ctx context.Context, id string) (shop.Shop, error)
}

func (f *fakeShopService) Create(context.Context, shop.CreateShopRequest) (shop.ShopResponse, error) {
	return shop.ShopResponse{}, nil
}

func (f *fakeShopService) GetAll(context.Context) ([]shop.ShopResponse, error) {
	return nil, nil
}

func (f *fakeShopService) GetByID(ctx context.Context, id string) (shop.Shop, error) {
	return f.getByIDFn(ctx, id)
}

type fakeStaffService struct {
	members []staff.StaffMember
	err     error
}

func (f *fakeStaffService) Members(context.Context, string) ([]staff.StaffMember, error) {
	return f.members, f.err
}

func (f *fakeStaffService) GetAll(context.Context, string) ([]staff.StaffMemberResponse, error) {
	return nil, nil
}

func (f *fakeStaffService) Replace(context.Context, string, staff.ReplaceStaffRequest) ([]staff.StaffMemberResponse, error) {
	return nil, nil
}

type fakeExpenseService struct {
	items []expense.ExpenseItem
	err   error
}

func (f *fakeExpenseService) Items(context.Context, string) ([]expense.ExpenseItem, error) {
	return f.items, f.err
}

func (f *fakeExpenseService) GetAll(context.Context, string) ([]expense.ExpenseItemResponse, error) {
	return nil, nil
}

func (f *fakeExpenseService) Replace(context.Context, string, expense.ReplaceExpensesRequest) ([]expense.ExpenseItemResponse, error) {
	return nil, nil
}

type fakeHistoryService struct {
	saveFn func(ctx context.Context, record history.HistoryRecord, event events.PeriodClosedEvent) error
}

func (f *fakeHistoryService) Save(ctx context.Context, record history.HistoryRecord, event events.PeriodClosedEvent) error {
	return f.saveFn(ctx, record, event)
}

func (f *fakeHistoryService) GetAll(context.Context, string, history.ListHistoryRequest) ([]history.HistoryRecordResponse, int64, error) {
	return nil, 0, nil
}
