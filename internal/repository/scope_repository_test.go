package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/agency-dashboard-api/internal/models"
)

func TestScopeRepositoryListByClient(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewScopeRepository(db, nil)

	rows := sqlmock.NewRows([]string{"id", "client_id", "material_type", "quantity_per_week", "posting_days", "created_at"}).
		AddRow("s1", "c1", "Reels", 3, "{Monday,Wednesday,Friday}", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, client_id, material_type, quantity_per_week, posting_days, created_at FROM scopes WHERE client_id = $1 ORDER BY created_at, id")).
		WithArgs("c1").
		WillReturnRows(rows)

	scopes, err := repo.ListByClient(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, scopes, 1)
	assert.Equal(t, "Reels", scopes[0].MaterialType)
	assert.Equal(t, 3, scopes[0].QuantityPerWeek)
	assert.Equal(t, pq.StringArray{"Monday", "Wednesday", "Friday"}, scopes[0].PostingDays)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScopeRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewScopeRepository(db, nil)

	mock.ExpectExec("INSERT INTO scopes").
		WithArgs(sqlmock.AnyArg(), "c1", "Story", 2, "{\"Tuesday\",\"Thursday\"}", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	scope := &models.Scope{ClientID: "c1", MaterialType: "Story", QuantityPerWeek: 2, PostingDays: pq.StringArray{"Tuesday", "Thursday"}}
	require.NoError(t, repo.Create(context.Background(), scope))
	assert.NotEmpty(t, scope.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScopeRepositoryDeleteReportsAbsence(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewScopeRepository(db, nil)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM scopes WHERE id = $1")).
		WithArgs("s-missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	removed, err := repo.Delete(context.Background(), "s-missing")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScopeRepositoryDeleteError(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewScopeRepository(db, nil)

	mock.ExpectExec("DELETE FROM scopes").WillReturnError(errors.New("connection reset"))

	_, err := repo.Delete(context.Background(), "s1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete scope")
}
