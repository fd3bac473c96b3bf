package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/agency-dashboard-api/internal/dto"
	"github.com/noah-isme/agency-dashboard-api/internal/middleware"
	appErrors "github.com/noah-isme/agency-dashboard-api/pkg/errors"
	"github.com/noah-isme/agency-dashboard-api/pkg/response"
)

type dashboardService interface {
	Summary(ctx context.Context) (*dto.DashboardResponse, error)
}

// DashboardHandler wires dashboard service to HTTP endpoints.
type DashboardHandler struct {
	service dashboardService
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service dashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Summary godoc
// @Summary Global post counts
// @Description critical and attention count overdue pending posts; onTime counts posts delivered for today.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, summary, middleware.ExtractMeta(c))
}
