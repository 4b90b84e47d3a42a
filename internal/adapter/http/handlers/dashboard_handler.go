package handlers

import (
	"net/http"

	response "servicos_xpto/internal/adapter/http/dto/response"
	"servicos_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the dashboard summary.
type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// GetStats returns the fixed-shape dashboard summary. Failures here are
// always failures of the underlying order load.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.usecase.GetStats(c.Request.Context())
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDashboardStats(stats))
}
