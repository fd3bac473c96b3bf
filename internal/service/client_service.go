package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/agency-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/agency-dashboard-api/pkg/errors"
)

type clientRepository interface {
	List(ctx context.Context) ([]models.Client, error)
	FindByID(ctx context.Context, id string) (*models.Client, error)
	Create(ctx context.Context, client *models.Client) error
	Delete(ctx context.Context, id string) (bool, error)
}

// CreateClientRequest captures the client creation payload.
type CreateClientRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	ContactInfo *string `json:"contact_info" validate:"omitempty,max=255"`
	Status      string  `json:"status" validate:"omitempty,oneof=active inactive"`
}

// ClientService coordinates client operations.
type ClientService struct {
	repo      clientRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewClientService constructs ClientService.
func NewClientService(repo clientRepository, validate *validator.Validate, logger *zap.Logger) *ClientService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClientService{repo: repo, validator: validate, logger: logger}
}

// List returns all clients, newest first. An empty store yields an empty slice.
func (s *ClientService) List(ctx context.Context) ([]models.Client, error) {
	clients, err := s.repo.List(ctx)
	if err != nil {
		return nil, readError(s.logger, err, "list clients")
	}
	if clients == nil {
		clients = []models.Client{}
	}
	return clients, nil
}

// Get returns one client.
func (s *ClientService) Get(ctx context.Context, id string) (*models.Client, error) {
	if strings.TrimSpace(id) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "client id is required")
	}
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "client not found")
		}
		if appErrors.IsInvalidInput(err) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "client not found")
		}
		return nil, readError(s.logger, err, "load client")
	}
	return client, nil
}

// Create adds a client. Name must be non-blank.
func (s *ClientService) Create(ctx context.Context, req CreateClientRequest) (*models.Client, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.ContactInfo != nil {
		contact := strings.TrimSpace(*req.ContactInfo)
		if contact == "" {
			req.ContactInfo = nil
		} else {
			req.ContactInfo = &contact
		}
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid client payload")
	}

	client := &models.Client{
		Name:        req.Name,
		ContactInfo: req.ContactInfo,
		Status:      models.ClientStatus(req.Status),
	}
	if err := s.repo.Create(ctx, client); err != nil {
		return nil, writeError(s.logger, err, "create client", "client")
	}
	s.logger.Info("client created", zap.String("client_id", client.ID))
	return client, nil
}

// Delete removes a client together with its scopes and posts.
func (s *ClientService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return appErrors.Clone(appErrors.ErrValidation, "client id is required")
	}
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		if appErrors.IsInvalidInput(err) {
			return appErrors.Clone(appErrors.ErrNotFound, "client not found")
		}
		s.logger.Error("storage write failed", zap.String("op", "delete client"), zap.Error(err))
		return appErrors.Storage(err, "failed to delete client")
	}
	if !removed {
		return appErrors.Clone(appErrors.ErrNotFound, "client not found")
	}
	s.logger.Info("client deleted", zap.String("client_id", id))
	return nil
}
