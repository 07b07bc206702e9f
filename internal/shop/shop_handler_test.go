package shop_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-shopbook/internal/middleware"
	"go-shopbook/internal/shop"
	shoperrors "go-shopbook/internal/shop/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

type fakeShopService struct {
	createFn  func(ctx context.Context, req shop.CreateShopRequest) (shop.ShopResponse, error)
	getAllFn  func(ctx context.Context) ([]shop.ShopResponse, error)
	getByIDFn func(ctx context.Context, id string) (shop.Shop, error)
}

func (f *fakeShopService) Create(ctx context.Context, req shop.CreateShopRequest) (shop.ShopResponse, error) {
	return f.createFn(ctx, req)
}

func (f *fakeShopService) GetAll(ctx context.Context) ([]shop.ShopResponse, error) {
	return f.getAllFn(ctx)
}

func (f *fakeShopService) GetByID(ctx context.Context, id string) (shop.Shop, error) {
	return f.getByIDFn(ctx, id)
}

func setupRouter(h *shop.Handler, allowed ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextAllowedShops, allowed)
		c.Next()
	})
	shop.RegisterRoutes(r.Group(""), h)
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestShopHandler_GetAll(t *testing.T) {
	svc := &fakeShopService{
		getAllFn: func(ctx context.Context) ([]shop.ShopResponse, error) {
			return []shop.ShopResponse{{ID: "Shop_1", Name: "Glow"}, {ID: "Shop_2", Name: "Shine"}}, nil
		},
	}

	t.Run("lists only permitted shops", func(t *testing.T) {
		r := setupRouter(shop.NewHandler(svc), "Shop_2")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/shops", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		env := decode(t, w)
		var shops []shop.ShopResponse
		assert.NoError(t, json.Unmarshal(env.Data, &shops))
		assert.Len(t, shops, 1)
		assert.Equal(t, "Shop_2", shops[0].ID)
	})

	t.Run("wildcard lists every shop", func(t *testing.T) {
		r := setupRouter(shop.NewHandler(svc), "*")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/shops", nil))

		var shops []shop.ShopResponse
		assert.NoError(t, json.Unmarshal(decode(t, w).Data, &shops))
		assert.Len(t, shops, 2)
	})
}

func TestShopHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &fakeShopService{
			createFn: func(ctx context.Context, req shop.CreateShopRequest) (shop.ShopResponse, error) {
				return shop.ShopResponse{ID: req.ID, Name: req.Name}, nil
			},
		}
		r := setupRouter(shop.NewHandler(svc), "*")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/shops", strings.NewReader(`{"id":"Shop_3","name":"Glow"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, string(decode(t, w).Data), `"id":"Shop_3"`)
	})

	t.Run("requires access to every shop", func(t *testing.T) {
		r := setupRouter(shop.NewHandler(&fakeShopService{}), "Shop_1")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/shops", strings.NewReader(`{"id":"Shop_3","name":"Glow"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing name", func(t *testing.T) {
		r := setupRouter(shop.NewHandler(&fakeShopService{}), "*")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/shops", strings.NewReader(`{"id":"Shop_3"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, decode(t, w).Ok)
	})

	t.Run("conflict", func(t *testing.T) {
		svc := &fakeShopService{
			createFn: func(ctx context.Context, req shop.CreateShopRequest) (shop.ShopResponse, error) {
				return shop.ShopResponse{}, shoperrors.ErrShopAlreadyExists
			},
		}
		r := setupRouter(shop.NewHandler(svc), "*")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/shops", strings.NewReader(`{"id":"Shop_1","name":"Glow"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "CONFLICT", decode(t, w).Error.Code)
	})
}
