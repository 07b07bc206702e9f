package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-shopbook/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

type apiEnvelope struct {
	Ok    bool `json:"ok"`
	Data  any  `json:"data"`
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return token
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	shops := r.Group("/shops", middleware.AuthMiddleware(testSecret))
	shops.POST("", middleware.RequireShopAccess(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	shops.GET("/:shop_id/staff", middleware.RequireShopAccess(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(middleware.ContextActorID))
	})
	return r
}

func doRequest(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestAuthMiddleware(t *testing.T) {
	r := newAuthRouter()
	exp := time.Now().Add(time.Hour).Unix()

	t.Run("allowed shop", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"sub": "owner-1", "shops": []string{"shop-a"}, "exp": exp})

		rec := doRequest(r, http.MethodGet, "/shops/shop-a/staff", token)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "owner-1", rec.Body.String())
	})

	t.Run("other shop is forbidden", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"sub": "owner-1", "shops": []string{"shop-a"}, "exp": exp})

		rec := doRequest(r, http.MethodGet, "/shops/shop-b/staff", token)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "FORBIDDEN", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("wildcard reaches every shop and shop registration", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"sub": "admin", "shops": []string{"*"}, "exp": exp})

		assert.Equal(t, http.StatusOK, doRequest(r, http.MethodGet, "/shops/shop-b/staff", token).Code)
		assert.Equal(t, http.StatusCreated, doRequest(r, http.MethodPost, "/shops", token).Code)
	})

	t.Run("shop registration needs wildcard", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"sub": "owner-1", "shops": []string{"shop-a"}, "exp": exp})

		assert.Equal(t, http.StatusForbidden, doRequest(r, http.MethodPost, "/shops", token).Code)
	})

	t.Run("missing token", func(t *testing.T) {
		rec := doRequest(r, http.MethodGet, "/shops/shop-a/staff", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Token not found", decodeEnvelope(t, rec).Error.Message)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"sub": "owner-1", "shops": []string{"shop-a"}, "exp": time.Now().Add(-time.Hour).Unix()})

		rec := doRequest(r, http.MethodGet, "/shops/shop-a/staff", token)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Token has expired", decodeEnvelope(t, rec).Error.Message)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "x", "exp": exp}).SignedString([]byte("other"))

		rec := doRequest(r, http.MethodGet, "/shops/shop-a/staff", token)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid token", decodeEnvelope(t, rec).Error.Message)
	})

	t.Run("missing subject", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"shops": []string{"shop-a"}, "exp": exp})

		rec := doRequest(r, http.MethodGet, "/shops/shop-a/staff", token)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
