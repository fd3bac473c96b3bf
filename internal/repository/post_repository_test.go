package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/agency-dashboard-api/internal/models"
)

var postRowColumns = []string{"id", "client_id", "scope_id", "content_type", "date", "status", "link", "notes", "created_at"}

func TestPostRepositoryListAll(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPostRepository(db, nil)

	day := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(postRowColumns).
		AddRow("p1", "c1", nil, "Reels", day, "pending", nil, nil, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, client_id, scope_id, content_type, date, status, link, notes, created_at FROM posts ORDER BY date DESC, created_at DESC")).
		WithArgs().
		WillReturnRows(rows)

	posts, err := repo.List(context.Background(), models.PostFilter{})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, models.PostStatusPending, posts[0].Status)
	assert.Nil(t, posts[0].ScopeID)
	assert.True(t, posts[0].Date.Equal(day))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepositoryListByClient(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPostRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM posts WHERE client_id = $1 ORDER BY date DESC, created_at DESC")).
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows(postRowColumns))

	posts, err := repo.List(context.Background(), models.PostFilter{ClientID: "c1"})
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepositoryCreateDefaultsToPending(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPostRepository(db, nil)

	day := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO posts (id,client_id,scope_id,content_type,date,status,link,notes,created_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)")).
		WithArgs(sqlmock.AnyArg(), "c1", nil, "Carousel", "2026-10-20", "pending", nil, nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	post := &models.Post{ClientID: "c1", ContentType: "Carousel", Date: day}
	require.NoError(t, repo.Create(context.Background(), post))
	assert.Equal(t, models.PostStatusPending, post.Status)
	assert.NotEmpty(t, post.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepositoryUpdateStatus(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPostRepository(db, nil)

	link := "https://instagram.test/p/abc"
	day := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE posts SET status = $1, link = $2 WHERE id = $3 RETURNING")).
		WithArgs("posted", link, "p1").
		WillReturnRows(sqlmock.NewRows(postRowColumns).
			AddRow("p1", "c1", "s1", "Reels", day, "posted", link, nil, time.Now()))

	post, err := repo.UpdateStatus(context.Background(), "p1", models.PostStatusPosted, &link)
	require.NoError(t, err)
	assert.Equal(t, models.PostStatusPosted, post.Status)
	require.NotNil(t, post.Link)
	assert.Equal(t, link, *post.Link)
	require.NotNil(t, post.ScopeID)
	assert.Equal(t, "s1", *post.ScopeID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepositoryUpdateStatusMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPostRepository(db, nil)

	mock.ExpectQuery("UPDATE posts SET status").
		WithArgs("pending", nil, "nope").
		WillReturnRows(sqlmock.NewRows(postRowColumns))

	_, err := repo.UpdateStatus(context.Background(), "nope", models.PostStatusPending, nil)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
