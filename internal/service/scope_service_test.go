package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/agency-dashboard-api/pkg/errors"
)

func TestScopeServiceListRequiresClient(t *testing.T) {
	svcs := newTestServices()

	_, err := svcs.scopes.List(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	assert.Equal(t, "clientId is required", appErrors.FromError(err).Message)

	_, err = svcs.scopes.List(context.Background(), "acme")
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestScopeServiceCreateNormalisesDays(t *testing.T) {
	svcs := newTestServices()
	ctx := context.Background()
	client, err := svcs.clients.Create(ctx, CreateClientRequest{Name: "Acme"})
	require.NoError(t, err)

	scope, err := svcs.scopes.Create(ctx, CreateScopeRequest{
		ClientID:        client.ID,
		MaterialType:    " Reels ",
		QuantityPerWeek: 3,
		PostingDays:     []string{"monday", "WEDNESDAY", "Friday", "Monday"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Reels", scope.MaterialType)
	assert.Equal(t, []string{"Monday", "Wednesday", "Friday"}, []string(scope.PostingDays))

	scopes, err := svcs.scopes.List(ctx, client.ID)
	require.NoError(t, err)
	require.Len(t, scopes, 1)
	assert.Equal(t, scope.ID, scopes[0].ID)
}

func TestScopeServiceCreateValidation(t *testing.T) {
	svcs := newTestServices()
	ctx := context.Background()
	client, err := svcs.clients.Create(ctx, CreateClientRequest{Name: "Acme"})
	require.NoError(t, err)

	cases := map[string]CreateScopeRequest{
		"empty days":     {ClientID: client.ID, MaterialType: "Reels", QuantityPerWeek: 3, PostingDays: []string{}},
		"zero quantity":  {ClientID: client.ID, MaterialType: "Reels", QuantityPerWeek: 0, PostingDays: []string{"Monday"}},
		"negative qty":   {ClientID: client.ID, MaterialType: "Reels", QuantityPerWeek: -1, PostingDays: []string{"Monday"}},
		"oversized qty":  {ClientID: client.ID, MaterialType: "Reels", QuantityPerWeek: 3000000000, PostingDays: []string{"Monday"}},
		"unknown day":    {ClientID: client.ID, MaterialType: "Reels", QuantityPerWeek: 1, PostingDays: []string{"Funday"}},
		"missing client": {MaterialType: "Reels", QuantityPerWeek: 1, PostingDays: []string{"Monday"}},
		"blank material": {ClientID: client.ID, MaterialType: "  ", QuantityPerWeek: 1, PostingDays: []string{"Monday"}},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svcs.scopes.Create(ctx, req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, appErrors.ErrValidation))
		})
	}
	assert.Empty(t, svcs.store.scopes)
}

func TestScopeServiceCreateOutOfRangeQuantityIsValidation(t *testing.T) {
	svcs := newTestServices()
	ctx := context.Background()
	client, err := svcs.clients.Create(ctx, CreateClientRequest{Name: "Acme"})
	require.NoError(t, err)
	svcs.store.err = &pq.Error{Code: "22003"}

	_, err = svcs.scopes.Create(ctx, CreateScopeRequest{ClientID: client.ID, MaterialType: "Reels", QuantityPerWeek: 1, PostingDays: []string{"Monday"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestScopeServiceCreateUnknownClient(t *testing.T) {
	svcs := newTestServices()

	_, err := svcs.scopes.Create(context.Background(), CreateScopeRequest{
		ClientID:        "6a4b9c1e-0000-4000-8000-000000000000",
		MaterialType:    "Reels",
		QuantityPerWeek: 1,
		PostingDays:     []string{"Monday"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
	assert.Equal(t, "client not found", appErrors.FromError(err).Message)
}

func TestScopeServiceDeleteIsIdempotentAndDetachesPosts(t *testing.T) {
	svcs := newTestServices()
	ctx := context.Background()
	client, err := svcs.clients.Create(ctx, CreateClientRequest{Name: "Acme"})
	require.NoError(t, err)
	scope, err := svcs.scopes.Create(ctx, CreateScopeRequest{ClientID: client.ID, MaterialType: "Reels", QuantityPerWeek: 1, PostingDays: []string{"Monday"}})
	require.NoError(t, err)
	post, err := svcs.posts.Create(ctx, CreatePostRequest{ClientID: client.ID, ScopeID: strPtr(scope.ID), Date: "2024-06-10"})
	require.NoError(t, err)
	require.NotNil(t, post.ScopeID)

	require.NoError(t, svcs.scopes.Delete(ctx, scope.ID))
	require.NoError(t, svcs.scopes.Delete(ctx, scope.ID))

	require.Len(t, svcs.store.posts, 1)
	assert.Nil(t, svcs.store.posts[0].ScopeID)

	err = svcs.scopes.Delete(ctx, "")
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}
