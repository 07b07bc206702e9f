package staff

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-shopbook/internal/shared/contextutil"
	stafferrors "go-shopbook/internal/staff/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const StaffAllKeyPrefix = "staff:all:"

func GetStaffAllKey(shopID string) string {
	return StaffAllKeyPrefix + shopID
}

//go:generate mockgen -source=staff_service.go -destination=mock/staff_service_mock.go -package=mock
type Service interface {
	// Members returns the shop's staff in entry order, served from cache when possible.
	Members(ctx context.Context, shopID string) ([]StaffMember, error)
	GetAll(ctx context.Context, shopID string) ([]StaffMemberResponse, error)
	Replace(ctx context.Context, shopID string, req ReplaceStaffRequest) ([]StaffMemberResponse, error)
}

type service struct {
	repo     Repository
	rdb      *redis.Client
	sf       *singleflight.Group
	cacheTTL time.Duration
}

// NewService accepts a nil redis client, which disables caching.
func NewService(repo Repository, rdb *redis.Client, cacheTTL time.Duration) Service {
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Minute
	}
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}, cacheTTL: cacheTTL}
}

func (s *service) Members(ctx context.Context, shopID string) ([]StaffMember, error) {
	cacheKey := GetStaffAllKey(shopID)
	log := contextutil.GetLogger(ctx, zap.L()).Named("staff.service")

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var members []StaffMember
			if err := json.Unmarshal([]byte(cached), &members); err == nil {
				return members, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (any, error) {
		members, err := s.repo.FindAllByShop(ctx, shopID)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(members); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
					log.Warn("cache staff list failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}

		return members, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]StaffMember), nil
}

func (s *service) GetAll(ctx context.Context, shopID string) ([]StaffMemberResponse, error) {
	members, err := s.Members(ctx, shopID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(members), nil
}

func (s *service) Replace(ctx context.Context, shopID string, req ReplaceStaffRequest) ([]StaffMemberResponse, error) {
	members, err := validateStaffList(shopID, req.Staff)
	if err != nil {
		return nil, err
	}

	if err := s.repo.ReplaceAll(ctx, shopID, members); err != nil {
		return nil, mapRepositoryError(err)
	}

	// --- Invalidation Cache ---
	if s.rdb != nil {
		cacheKey := GetStaffAllKey(shopID)
		if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
			contextutil.GetLogger(ctx, zap.L()).Error("invalidate staff cache failed",
				zap.String("key", cacheKey),
				zap.Error(err),
			)
		}
	}

	return mapToListResponse(members), nil
}

func validateStaffList(shopID string, inputs []StaffMemberInput) ([]StaffMember, error) {
	seen := make(map[string]struct{}, len(inputs))
	members := make([]StaffMember, 0, len(inputs))

	for i, in := range inputs {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: row %d", stafferrors.ErrEmptyName, i+1)
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: %q", stafferrors.ErrDuplicateName, name)
		}
		seen[key] = struct{}{}

		if in.BaseSalary.IsNegative() {
			return nil, fmt.Errorf("%w: %q", stafferrors.ErrNegativeSalary, name)
		}

		members = append(members, StaffMember{
			ID:               uuid.New(),
			ShopID:           shopID,
			Name:             name,
			BaseSalary:       in.BaseSalary,
			IncentivePercent: in.IncentivePercent,
			Position:         i,
		})
	}

	return members, nil
}

func mapRepositoryError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return stafferrors.ErrStaffConflict
	}
	return err
}

func mapToListResponse(members []StaffMember) []StaffMemberResponse {
	resp := make([]StaffMemberResponse, len(members))
	for i, m := range members {
		resp[i] = StaffMemberResponse{
			Name:             m.Name,
			BaseSalary:       m.BaseSalary,
			IncentivePercent: m.IncentivePercent,
		}
	}
	return resp
}
