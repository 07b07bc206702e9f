package report

import (
	"go-shopbook/internal/shared/apperror"
	"go-shopbook/internal/shared/response"
	"go-shopbook/internal/summary"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Download renders the statement for the submitted figures without saving anything.
func (h *Handler) Download(c *gin.Context) {
	var req summary.ComputeSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	statement, err := h.service.Render(c.Request.Context(), c.Param("shop_id"), c.Param("period"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Attachment(c, statement.FileName, statement.ContentType, statement.Content)
}

// GetArchived returns the statement produced when the period was saved.
func (h *Handler) GetArchived(c *gin.Context) {
	statement, err := h.service.GetArchived(c.Request.Context(), c.Param("shop_id"), c.Param("period"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Attachment(c, statement.FileName, statement.ContentType, statement.Content)
}
