package expense

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	expenses := r.Group("/expenses")
	{
		expenses.GET("", h.GetAll)
		expenses.PUT("", h.Replace)
	}
}
