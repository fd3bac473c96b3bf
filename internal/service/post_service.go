package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/agency-dashboard-api/internal/dto"
	"github.com/noah-isme/agency-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/agency-dashboard-api/pkg/errors"
)

const dateLayout = "2006-01-02"

type postRepository interface {
	List(ctx context.Context, filter models.PostFilter) ([]models.Post, error)
	Create(ctx context.Context, post *models.Post) error
	UpdateStatus(ctx context.Context, id string, status models.PostStatus, link *string) (*models.Post, error)
}

// CreatePostRequest captures a scheduled content item.
type CreatePostRequest struct {
	ClientID    string  `json:"client_id" validate:"required,uuid"`
	ScopeID     *string `json:"scope_id" validate:"omitempty,uuid"`
	ContentType string  `json:"content_type" validate:"max=100"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Status      string  `json:"status" validate:"omitempty,oneof=pending posted"`
	Link        *string `json:"link" validate:"omitempty,url"`
	Notes       *string `json:"notes"`
}

// UpdatePostRequest toggles delivery state and records the published link.
type UpdatePostRequest struct {
	ID     string  `json:"id" validate:"required,uuid"`
	Status string  `json:"status" validate:"required,oneof=pending posted"`
	Link   *string `json:"link" validate:"omitempty,url"`
}

// PostServiceConfig tunes classification.
type PostServiceConfig struct {
	CriticalAfterDays int
	Clock             Clock
}

// PostService coordinates post operations and attaches timeliness on every read.
type PostService struct {
	repo       postRepository
	validator  *validator.Validate
	logger     *zap.Logger
	classifier Classifier
	clock      Clock
}

// NewPostService constructs PostService.
func NewPostService(repo postRepository, validate *validator.Validate, logger *zap.Logger, cfg PostServiceConfig) *PostService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostService{
		repo:       repo,
		validator:  validate,
		logger:     logger,
		classifier: Classifier{CriticalAfterDays: cfg.CriticalAfterDays},
		clock:      cfg.Clock,
	}
}

// List returns posts, latest date first, optionally for one client.
func (s *PostService) List(ctx context.Context, clientID string) ([]dto.PostView, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID != "" {
		if err := s.validator.Var(clientID, "uuid"); err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, "clientId must be a valid UUID")
		}
	}
	posts, err := s.repo.List(ctx, models.PostFilter{ClientID: clientID})
	if err != nil {
		return nil, readError(s.logger, err, "list posts")
	}
	today := s.clock.Today()
	views := make([]dto.PostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, s.classifier.View(post, today))
	}
	return views, nil
}

// Create persists a post. Status defaults to pending; scope linkage is stored only when given.
func (s *PostService) Create(ctx context.Context, req CreatePostRequest) (*dto.PostView, error) {
	req.ClientID = strings.TrimSpace(req.ClientID)
	req.ContentType = strings.TrimSpace(req.ContentType)
	req.Date = strings.TrimSpace(req.Date)
	req.ScopeID = trimOptional(req.ScopeID)
	req.Link = trimOptional(req.Link)
	req.Notes = trimOptional(req.Notes)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid post payload")
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, validationError(err, "invalid post payload: date must use the 2006-01-02 layout")
	}
	if date.Year() < 1 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid post payload: date year must be at least 1")
	}

	status := models.PostStatus(req.Status)
	if status == "" {
		status = models.PostStatusPending
	}
	post := &models.Post{
		ClientID:    req.ClientID,
		ScopeID:     req.ScopeID,
		ContentType: req.ContentType,
		Date:        date,
		Status:      status,
		Link:        req.Link,
		Notes:       req.Notes,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, writeError(s.logger, err, "create post", "client or scope")
	}
	view := s.classifier.View(*post, s.clock.Today())
	return &view, nil
}

// Update replaces status and link of an existing post.
func (s *PostService) Update(ctx context.Context, req UpdatePostRequest) (*dto.PostView, error) {
	req.ID = strings.TrimSpace(req.ID)
	req.Link = trimOptional(req.Link)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid post update")
	}
	post, err := s.repo.UpdateStatus(ctx, req.ID, models.PostStatus(req.Status), req.Link)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "post not found")
		}
		s.logger.Error("storage write failed", zap.String("op", "update post"), zap.Error(err))
		return nil, appErrors.Storage(err, "failed to update post")
	}
	s.logger.Info("post status updated", zap.String("post_id", post.ID), zap.String("status", string(post.Status)))
	view := s.classifier.View(*post, s.clock.Today())
	return &view, nil
}

func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
