package expense

import (
	"context"

	"go-shopbook/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=expense_repo.go -destination=mock/expense_repo_mock.go -package=mock
type Repository interface {
	FindAllByShop(ctx context.Context, shopID string) ([]ExpenseItem, error)
	ReplaceAll(ctx context.Context, shopID string, items []ExpenseItem) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAllByShop(ctx context.Context, shopID string) ([]ExpenseItem, error) {
	var items []ExpenseItem
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(shopID)).
		Order("position ASC").
		Find(&items).Error
	return items, err
}

func (r *repository) ReplaceAll(ctx context.Context, shopID string, items []ExpenseItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Scopes(tenant.Scope(shopID)).Delete(&ExpenseItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}
