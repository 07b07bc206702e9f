package expense

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	expenseerrors "go-shopbook/internal/expense/errors"
	"go-shopbook/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const ExpenseAllKeyPrefix = "expenses:all:"

func GetExpenseAllKey(shopID string) string {
	return ExpenseAllKeyPrefix + shopID
}

//go:generate mockgen -source=expense_service.go -destination=mock/expense_service_mock.go -package=mock
type Service interface {
	Items(ctx context.Context, shopID string) ([]ExpenseItem, error)
	GetAll(ctx context.Context, shopID string) ([]ExpenseItemResponse, error)
	Replace(ctx context.Context, shopID string, req ReplaceExpensesRequest) ([]ExpenseItemResponse, error)
}

type service struct {
	repo     Repository
	rdb      *redis.Client
	sf       *singleflight.Group
	cacheTTL time.Duration
}

func NewService(repo Repository, rdb *redis.Client, cacheTTL time.Duration) Service {
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Minute
	}
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}, cacheTTL: cacheTTL}
}

func (s *service) Items(ctx context.Context, shopID string) ([]ExpenseItem, error) {
	cacheKey := GetExpenseAllKey(shopID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var items []ExpenseItem
			if err := json.Unmarshal([]byte(cached), &items); err == nil {
				return items, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (any, error) {
		items, err := s.repo.FindAllByShop(ctx, shopID)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(items); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
					contextutil.GetLogger(ctx, zap.L()).Warn("cache expense list failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}

		return items, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]ExpenseItem), nil
}

func (s *service) GetAll(ctx context.Context, shopID string) ([]ExpenseItemResponse, error) {
	items, err := s.Items(ctx, shopID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(items), nil
}

func (s *service) Replace(ctx context.Context, shopID string, req ReplaceExpensesRequest) ([]ExpenseItemResponse, error) {
	items, err := validateItems(shopID, req.Items)
	if err != nil {
		return nil, err
	}

	if err := s.repo.ReplaceAll(ctx, shopID, items); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, expenseerrors.ErrExpenseConflict
		}
		return nil, err
	}

	if s.rdb != nil {
		cacheKey := GetExpenseAllKey(shopID)
		if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
			contextutil.GetLogger(ctx, zap.L()).Error("invalidate expense cache failed",
				zap.String("key", cacheKey),
				zap.Error(err),
			)
		}
	}

	return mapToListResponse(items), nil
}

func validateItems(shopID string, inputs []ExpenseItemInput) ([]ExpenseItem, error) {
	seen := make(map[string]struct{}, len(inputs))
	items := make([]ExpenseItem, 0, len(inputs))

	for i, in := range inputs {
		name := strings.TrimSpace(in.ItemName)
		if name == "" {
			return nil, fmt.Errorf("%w: row %d", expenseerrors.ErrEmptyItemName, i+1)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: %q", expenseerrors.ErrDuplicateItemName, name)
		}
		seen[name] = struct{}{}

		if in.DefaultAmount.IsNegative() {
			return nil, fmt.Errorf("%w: %q", expenseerrors.ErrNegativeAmount, name)
		}

		items = append(items, ExpenseItem{
			ID:            uuid.New(),
			ShopID:        shopID,
			ItemName:      name,
			DefaultAmount: in.DefaultAmount,
			Position:      i,
		})
	}

	return items, nil
}

func mapToListResponse(items []ExpenseItem) []ExpenseItemResponse {
	resp := make([]ExpenseItemResponse, len(items))
	for i, item := range items {
		resp[i] = ExpenseItemResponse{ItemName: item.ItemName, DefaultAmount: item.DefaultAmount}
	}
	return resp
}
