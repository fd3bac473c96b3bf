package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/agency-dashboard-api/internal/models"
)

const clientColumns = "id, name, contact_info, status, created_at"

// ClientRepository manages persistence for clients.
type ClientRepository struct {
	db *sqlx.DB
	instrumented
}

// NewClientRepository constructs a client repository. metrics may be nil.
func NewClientRepository(db *sqlx.DB, metrics queryObserver) *ClientRepository {
	return &ClientRepository{db: db, instrumented: instrumented{metrics: metrics}}
}

// List returns every client, newest first.
func (r *ClientRepository) List(ctx context.Context) ([]models.Client, error) {
	defer r.observe("clients.list", time.Now())
	query := fmt.Sprintf("SELECT %s FROM clients ORDER BY created_at DESC, id", clientColumns)
	clients := []models.Client{}
	if err := r.db.SelectContext(ctx, &clients, query); err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

// FindByID returns a client by ID or sql.ErrNoRows.
func (r *ClientRepository) FindByID(ctx context.Context, id string) (*models.Client, error) {
	defer r.observe("clients.find", time.Now())
	query := fmt.Sprintf("SELECT %s FROM clients WHERE id = $1", clientColumns)
	var client models.Client
	if err := r.db.GetContext(ctx, &client, query, id); err != nil {
		return nil, err
	}
	return &client, nil
}

// Create persists a client, assigning ID, default status and timestamp.
func (r *ClientRepository) Create(ctx context.Context, client *models.Client) error {
	defer r.observe("clients.create", time.Now())
	if client.ID == "" {
		client.ID = uuid.NewString()
	}
	if client.Status == "" {
		client.Status = models.ClientStatusActive
	}
	if client.CreatedAt.IsZero() {
		client.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO clients (id, name, contact_info, status, created_at) VALUES (:id, :name, :contact_info, :status, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, client); err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	return nil
}

// Delete removes a client; scopes and posts go with it through ON DELETE CASCADE.
// It reports whether a row was removed.
func (r *ClientRepository) Delete(ctx context.Context, id string) (bool, error) {
	defer r.observe("clients.delete", time.Now())
	res, err := r.db.ExecContext(ctx, "DELETE FROM clients WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete client: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete client rows affected: %w", err)
	}
	return affected > 0, nil
}
