package handler

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/agency-dashboard-api/internal/middleware"
	"github.com/noah-isme/agency-dashboard-api/internal/models"
	"github.com/noah-isme/agency-dashboard-api/internal/service"
	"github.com/noah-isme/agency-dashboard-api/pkg/response"
)

type scopeService interface {
	List(ctx context.Context, clientID string) ([]models.Scope, error)
	Create(ctx context.Context, req service.CreateScopeRequest) (*models.Scope, error)
	Delete(ctx context.Context, id string) error
}

// ScopeHandler exposes weekly scope endpoints.
type ScopeHandler struct {
	service scopeService
}

// NewScopeHandler constructs a scope handler.
func NewScopeHandler(svc scopeService) *ScopeHandler {
	return &ScopeHandler{service: svc}
}

// List godoc
// @Summary List scopes of a client
// @Tags Scopes
// @Produce json
// @Param clientId query string true "Client ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /scopes [get]
func (h *ScopeHandler) List(c *gin.Context) {
	scopes, err := h.service.List(c.Request.Context(), c.Query("clientId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetMeta(c, "count", len(scopes))
	response.OK(c, scopes, middleware.ExtractMeta(c))
}

// Create godoc
// @Summary Create scope
// @Tags Scopes
// @Accept json
// @Produce json
// @Param clientId query string false "Client ID, when absent from the body"
// @Param payload body service.CreateScopeRequest true "Scope payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /scopes [post]
func (h *ScopeHandler) Create(c *gin.Context) {
	var req service.CreateScopeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	if strings.TrimSpace(req.ClientID) == "" {
		req.ClientID = c.Query("clientId")
	}
	scope, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, scope)
}

// Delete godoc
// @Summary Delete scope
// @Description Succeeds even when the scope no longer exists. Posts keep existing without a scope.
// @Tags Scopes
// @Param id path string true "Scope ID"
// @Success 204
// @Router /scopes/{id} [delete]
func (h *ScopeHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		id = c.Query("id")
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
