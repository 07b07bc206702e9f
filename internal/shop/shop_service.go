package shop

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	shoperrors "go-shopbook/internal/shop/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var shopIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

//go:generate mockgen -source=shop_service.go -destination=mock/shop_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateShopRequest) (ShopResponse, error)
	GetAll(ctx context.Context) ([]ShopResponse, error)
	GetByID(ctx context.Context, id string) (Shop, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateShopRequest) (ShopResponse, error) {
	id := strings.TrimSpace(req.ID)
	if !shopIDPattern.MatchString(id) {
		return ShopResponse{}, fmt.Errorf("%w: %q", shoperrors.ErrInvalidShopID, req.ID)
	}

	shop := &Shop{
		ID:   id,
		Name: strings.TrimSpace(req.Name),
	}
	if err := s.repo.Create(ctx, shop); err != nil {
		return ShopResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*shop), nil
}

func (s *service) GetAll(ctx context.Context) ([]ShopResponse, error) {
	shops, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]ShopResponse, len(shops))
	for i, sh := range shops {
		resp[i] = mapToResponse(sh)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (Shop, error) {
	shop, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Shop{}, mapRepositoryError(err)
	}
	return *shop, nil
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shoperrors.ErrShopNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return shoperrors.ErrShopAlreadyExists
	}

	return err
}

func mapToResponse(s Shop) ShopResponse {
	resp := ShopResponse{
		ID:   s.ID,
		Name: s.Name,
	}
	if !s.CreatedAt.IsZero() {
		resp.CreatedAt = s.CreatedAt.Format(time.RFC3339)
	}
	return resp
}
