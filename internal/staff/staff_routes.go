package staff

import "github.com/gin-gonic/gin"

// RegisterRoutes expects r to be the /shops/:shop_id group.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	staff := r.Group("/staff")
	{
		staff.GET("", h.GetAll)
		staff.PUT("", h.Replace)
	}
}
