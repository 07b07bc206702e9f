package summary

import (
	"go-shopbook/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes expects r to be the /shops/:shop_id group. rdb may be nil,
// in which case history saves are not deduplicated.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client) {
	periods := r.Group("/periods/:period")
	{
		periods.POST("/summary", h.Compute)
		if rdb != nil {
			periods.POST("/history", middleware.Idempotency(rdb), h.Close)
		} else {
			periods.POST("/history", h.Close)
		}
	}
}
