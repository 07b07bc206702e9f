package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-shopbook/internal/middleware"
	"go-shopbook/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestContextLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var got contextutil.Metadata
	r := gin.New()
	r.GET("/shops/:shop_id/staff",
		func(c *gin.Context) { c.Set(middleware.ContextActorID, "owner-1") },
		middleware.ContextLogger(zap.NewNop()),
		func(c *gin.Context) {
			got = contextutil.ExtractMetadata(c.Request.Context())
			c.Status(http.StatusOK)
		},
	)

	t.Run("keeps incoming request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/shops/shop-a/staff", nil)
		req.Header.Set("X-Request-ID", "req-1")
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, "req-1", rec.Header().Get("X-Request-ID"))
		assert.Equal(t, contextutil.Metadata{RequestID: "req-1", ActorID: "owner-1", ShopID: "shop-a"}, got)
	})

	t.Run("generates a request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/shops/shop-a/staff", nil)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		assert.Equal(t, rec.Header().Get("X-Request-ID"), got.RequestID)
	})
}
