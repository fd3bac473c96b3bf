package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/agency-dashboard-api/internal/models"
)

// dashboardSummaryQuery counts the whole post table in one statement so the three figures share a snapshot.
// $1 is today's calendar date, $2 the number of overdue days after which a pending post is critical.
const dashboardSummaryQuery = `SELECT
  COUNT(*) FILTER (WHERE status = 'pending' AND date < $1::date - $2::int) AS critical,
  COUNT(*) FILTER (WHERE status = 'pending' AND date < $1::date AND date >= $1::date - $2::int) AS attention,
  COUNT(*) FILTER (WHERE status = 'posted' AND date = $1::date) AS on_time
FROM posts`

// DashboardRepository computes dashboard aggregates straight from the posts table.
type DashboardRepository struct {
	db *sqlx.DB
	instrumented
}

// NewDashboardRepository constructs the repository. metrics may be nil.
func NewDashboardRepository(db *sqlx.DB, metrics queryObserver) *DashboardRepository {
	return &DashboardRepository{db: db, instrumented: instrumented{metrics: metrics}}
}

// Summary returns critical, attention and delivered-today counts relative to today.
func (r *DashboardRepository) Summary(ctx context.Context, today time.Time, criticalAfterDays int) (*models.DashboardSummary, error) {
	defer r.observe("dashboard.summary", time.Now())
	var summary models.DashboardSummary
	if err := r.db.GetContext(ctx, &summary, dashboardSummaryQuery, today.Format(dateLayout), criticalAfterDays); err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}
	return &summary, nil
}
