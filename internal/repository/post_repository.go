package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/agency-dashboard-api/internal/models"
)

const dateLayout = "2006-01-02"

var postColumns = []string{"id", "client_id", "scope_id", "content_type", "date", "status", "link", "notes", "created_at"}

// PostRepository manages persistence for posts.
type PostRepository struct {
	db *sqlx.DB
	sb sq.StatementBuilderType
	instrumented
}

// NewPostRepository constructs a post repository. metrics may be nil.
func NewPostRepository(db *sqlx.DB, metrics queryObserver) *PostRepository {
	return &PostRepository{
		db:           db,
		sb:           sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		instrumented: instrumented{metrics: metrics},
	}
}

// List returns posts ordered by date, latest first, optionally restricted to one client.
func (r *PostRepository) List(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	defer r.observe("posts.list", time.Now())
	builder := r.sb.Select(postColumns...).From("posts")
	if filter.ClientID != "" {
		builder = builder.Where(sq.Eq{"client_id": filter.ClientID})
	}
	query, args, err := builder.OrderBy("date DESC", "created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build post list: %w", err)
	}

	posts := []models.Post{}
	if err := r.db.SelectContext(ctx, &posts, query, args...); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// Create persists a post. Status defaults to pending.
func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	defer r.observe("posts.create", time.Now())
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	if post.Status == "" {
		post.Status = models.PostStatusPending
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}

	// date is sent as a calendar string so the session TimeZone cannot shift it
	query, args, err := r.sb.Insert("posts").
		Columns(postColumns...).
		Values(post.ID, post.ClientID, post.ScopeID, post.ContentType, post.Date.Format(dateLayout), post.Status, post.Link, post.Notes, post.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build post insert: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	return nil
}

// UpdateStatus replaces status and link and returns the stored row, or sql.ErrNoRows when id is unknown.
func (r *PostRepository) UpdateStatus(ctx context.Context, id string, status models.PostStatus, link *string) (*models.Post, error) {
	defer r.observe("posts.update_status", time.Now())
	query := fmt.Sprintf("UPDATE posts SET status = $1, link = $2 WHERE id = $3 RETURNING %s", strings.Join(postColumns, ", "))
	var post models.Post
	if err := r.db.GetContext(ctx, &post, query, status, link, id); err != nil {
		return nil, err
	}
	return &post, nil
}
