package shop

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=shop_repo.go -destination=mock/shop_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, s *Shop) error
	FindAll(ctx context.Context) ([]Shop, error)
	FindByID(ctx context.Context, id string) (*Shop, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *Shop) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Shop, error) {
	var shops []Shop
	err := r.db.WithContext(ctx).Order("id ASC").Find(&shops).Error
	return shops, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Shop, error) {
	var s Shop
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}
