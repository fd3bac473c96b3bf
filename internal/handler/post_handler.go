package handler

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/agency-dashboard-api/internal/dto"
	"github.com/noah-isme/agency-dashboard-api/internal/middleware"
	"github.com/noah-isme/agency-dashboard-api/internal/service"
	appErrors "github.com/noah-isme/agency-dashboard-api/pkg/errors"
	"github.com/noah-isme/agency-dashboard-api/pkg/response"
)

type postService interface {
	List(ctx context.Context, clientID string) ([]dto.PostView, error)
	Create(ctx context.Context, req service.CreatePostRequest) (*dto.PostView, error)
	Update(ctx context.Context, req service.UpdatePostRequest) (*dto.PostView, error)
}

type postExporter interface {
	Posts(ctx context.Context, clientID string, format service.ExportFormat) (*service.ExportResult, error)
}

// PostHandler exposes post endpoints.
type PostHandler struct {
	service  postService
	exporter postExporter
}

// NewPostHandler constructs a post handler. A nil exporter disables the export endpoint.
func NewPostHandler(svc postService, exporter postExporter) *PostHandler {
	return &PostHandler{service: svc, exporter: exporter}
}

// List godoc
// @Summary List posts with timeliness
// @Tags Posts
// @Produce json
// @Param clientId query string false "Restrict to one client"
// @Success 200 {object} response.Envelope
// @Router /posts [get]
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.service.List(c.Request.Context(), c.Query("clientId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetMeta(c, "count", len(posts))
	response.OK(c, posts, middleware.ExtractMeta(c))
}

// Create godoc
// @Summary Schedule a post
// @Tags Posts
// @Accept json
// @Produce json
// @Param payload body service.CreatePostRequest true "Post payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /posts [post]
func (h *PostHandler) Create(c *gin.Context) {
	var req service.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	post, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, post)
}

// Update godoc
// @Summary Set post status and link
// @Tags Posts
// @Accept json
// @Produce json
// @Param id path string false "Post ID, otherwise taken from the body"
// @Param payload body service.UpdatePostRequest true "Status payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /posts/{id} [put]
func (h *PostHandler) Update(c *gin.Context) {
	var req service.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	if id := strings.TrimSpace(c.Param("id")); id != "" {
		if req.ID != "" && req.ID != id {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "id in path and body differ"))
			return
		}
		req.ID = id
	}
	post, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, post)
}

// Export godoc
// @Summary Download the post schedule
// @Tags Posts
// @Produce text/csv
// @Produce application/pdf
// @Param clientId query string false "Restrict to one client"
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /posts/export [get]
func (h *PostHandler) Export(c *gin.Context) {
	if h.exporter == nil {
		response.Error(c, appErrors.ErrDisabled)
		return
	}
	format, err := service.ParseExportFormat(c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.exporter.Posts(c.Request.Context(), c.Query("clientId"), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, result.Filename, result.ContentType, result.Payload)
}
