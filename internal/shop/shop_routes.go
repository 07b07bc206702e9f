package shop

import (
	"go-shopbook/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts /shops. r is expected to be already authenticated;
// registering a shop needs access to every shop.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	shops := r.Group("/shops")
	{
		shops.GET("", h.GetAll)
		shops.POST("", middleware.RequireShopAccess(), h.Create)
	}
}
