package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/agency-dashboard-api/internal/models"
)

const scopeColumns = "id, client_id, material_type, quantity_per_week, posting_days, created_at"

// ScopeRepository manages persistence for weekly scopes.
type ScopeRepository struct {
	db *sqlx.DB
	instrumented
}

// NewScopeRepository constructs a scope repository. metrics may be nil.
func NewScopeRepository(db *sqlx.DB, metrics queryObserver) *ScopeRepository {
	return &ScopeRepository{db: db, instrumented: instrumented{metrics: metrics}}
}

// ListByClient returns the scopes owned by a client in insertion order.
func (r *ScopeRepository) ListByClient(ctx context.Context, clientID string) ([]models.Scope, error) {
	defer r.observe("scopes.list", time.Now())
	query := fmt.Sprintf("SELECT %s FROM scopes WHERE client_id = $1 ORDER BY created_at, id", scopeColumns)
	scopes := []models.Scope{}
	if err := r.db.SelectContext(ctx, &scopes, query, clientID); err != nil {
		return nil, fmt.Errorf("list scopes: %w", err)
	}
	return scopes, nil
}

// Create persists a scope.
func (r *ScopeRepository) Create(ctx context.Context, scope *models.Scope) error {
	defer r.observe("scopes.create", time.Now())
	if scope.ID == "" {
		scope.ID = uuid.NewString()
	}
	if scope.CreatedAt.IsZero() {
		scope.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO scopes (id, client_id, material_type, quantity_per_week, posting_days, created_at)
VALUES (:id, :client_id, :material_type, :quantity_per_week, :posting_days, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, scope); err != nil {
		return fmt.Errorf("create scope: %w", err)
	}
	return nil
}

// Delete hard-deletes a scope. Posts referencing it keep existing with scope_id cleared.
// It reports whether a row was removed.
func (r *ScopeRepository) Delete(ctx context.Context, id string) (bool, error) {
	defer r.observe("scopes.delete", time.Now())
	res, err := r.db.ExecContext(ctx, "DELETE FROM scopes WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete scope: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete scope rows affected: %w", err)
	}
	return affected > 0, nil
}
