package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/noah-isme/agency-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/agency-dashboard-api/pkg/errors"
)

type scopeRepository interface {
	ListByClient(ctx context.Context, clientID string) ([]models.Scope, error)
	Create(ctx context.Context, scope *models.Scope) error
	Delete(ctx context.Context, id string) (bool, error)
}

// CreateScopeRequest captures a weekly scope definition.
type CreateScopeRequest struct {
	ClientID        string   `json:"client_id" validate:"required,uuid"`
	MaterialType    string   `json:"material_type" validate:"required,max=100"`
	QuantityPerWeek int      `json:"quantity_per_week" validate:"required,gt=0,lte=2147483647"`
	PostingDays     []string `json:"posting_days" validate:"required,min=1,dive,required"`
}

// ScopeService coordinates scope operations.
type ScopeService struct {
	repo      scopeRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewScopeService constructs ScopeService.
func NewScopeService(repo scopeRepository, validate *validator.Validate, logger *zap.Logger) *ScopeService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScopeService{repo: repo, validator: validate, logger: logger}
}

// List returns the scopes of a client. The client id is mandatory.
func (s *ScopeService) List(ctx context.Context, clientID string) ([]models.Scope, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "clientId is required")
	}
	if err := s.validator.Var(clientID, "uuid"); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "clientId must be a valid UUID")
	}
	scopes, err := s.repo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, readError(s.logger, err, "list scopes")
	}
	if scopes == nil {
		scopes = []models.Scope{}
	}
	return scopes, nil
}

// Create persists a scope after normalising its posting days.
func (s *ScopeService) Create(ctx context.Context, req CreateScopeRequest) (*models.Scope, error) {
	req.ClientID = strings.TrimSpace(req.ClientID)
	req.MaterialType = strings.TrimSpace(req.MaterialType)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid scope payload")
	}
	days, err := normalisePostingDays(req.PostingDays)
	if err != nil {
		return nil, err
	}

	scope := &models.Scope{
		ClientID:        req.ClientID,
		MaterialType:    req.MaterialType,
		QuantityPerWeek: req.QuantityPerWeek,
		PostingDays:     days,
	}
	if err := s.repo.Create(ctx, scope); err != nil {
		return nil, writeError(s.logger, err, "create scope", "client")
	}
	return scope, nil
}

// Delete removes a scope. Deleting an absent scope succeeds.
func (s *ScopeService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return appErrors.Clone(appErrors.ErrValidation, "scope id is required")
	}
	if err := s.validator.Var(id, "uuid"); err != nil {
		return appErrors.Clone(appErrors.ErrValidation, "scope id must be a valid UUID")
	}
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("storage write failed", zap.String("op", "delete scope"), zap.Error(err))
		return appErrors.Storage(err, "failed to delete scope")
	}
	if !removed {
		s.logger.Debug("scope already absent", zap.String("scope_id", id))
	}
	return nil
}

// normalisePostingDays canonicalises weekday names and drops repeats, keeping first-seen order.
func normalisePostingDays(raw []string) (pq.StringArray, error) {
	seen := make(map[string]struct{}, len(raw))
	days := make(pq.StringArray, 0, len(raw))
	for _, value := range raw {
		day, ok := models.CanonicalWeekday(value)
		if !ok {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid scope payload: %q is not a weekday", value))
		}
		if _, dup := seen[day]; dup {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	return days, nil
}
