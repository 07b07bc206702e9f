package report

import "github.com/gin-gonic/gin"

// RegisterRoutes expects r to be the /shops/:shop_id group.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/periods/:period/statement", h.Download)
	r.GET("/statements/:period", h.GetArchived)
}
