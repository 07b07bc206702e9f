package staff

import (
	"context"

	"go-shopbook/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=staff_repo.go -destination=mock/staff_repo_mock.go -package=mock
type Repository interface {
	FindAllByShop(ctx context.Context, shopID string) ([]StaffMember, error)
	ReplaceAll(ctx context.Context, shopID string, members []StaffMember) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAllByShop(ctx context.Context, shopID string) ([]StaffMember, error) {
	var members []StaffMember
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(shopID)).
		Order("position ASC").
		Find(&members).Error
	return members, err
}

// ReplaceAll deletes the shop's list and inserts members in one transaction.
func (r *repository) ReplaceAll(ctx context.Context, shopID string, members []StaffMember) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Scopes(tenant.Scope(shopID)).Delete(&StaffMember{}).Error; err != nil {
			return err
		}
		if len(members) == 0 {
			return nil
		}
		return tx.Create(&members).Error
	})
}
