package service

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/noah-isme/agency-dashboard-api/internal/models"
)

// memStore mimics the Postgres schema closely enough for service tests: foreign keys, cascades and
// the dashboard aggregate.
type memStore struct {
	mu      sync.Mutex
	clients []models.Client
	scopes  []models.Scope
	posts   []models.Post
	err     error
	tick    time.Time
}

func newMemStore() *memStore {
	return &memStore{tick: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)}
}

func (m *memStore) next() time.Time {
	m.tick = m.tick.Add(time.Second)
	return m.tick
}

func (m *memStore) hasClient(id string) bool {
	for _, c := range m.clients {
		if c.ID == id {
			return true
		}
	}
	return false
}

func (m *memStore) hasScope(id string) bool {
	for _, s := range m.scopes {
		if s.ID == id {
			return true
		}
	}
	return false
}

var fkViolation = &pq.Error{Code: "23503", Message: "foreign key violation"}

type memClients struct{ *memStore }

func (r memClients) List(context.Context) ([]models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := append([]models.Client(nil), r.clients...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r memClients) FindByID(_ context.Context, id string) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, c := range r.clients {
		if c.ID == id {
			client := c
			return &client, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r memClients) Create(_ context.Context, client *models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	client.ID = uuid.NewString()
	if client.Status == "" {
		client.Status = models.ClientStatusActive
	}
	client.CreatedAt = r.next()
	r.clients = append(r.clients, *client)
	return nil
}

func (r memClients) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	if !r.hasClient(id) {
		return false, nil
	}
	clients := r.clients[:0]
	for _, c := range r.clients {
		if c.ID != id {
			clients = append(clients, c)
		}
	}
	r.clients = clients
	scopes := r.scopes[:0]
	for _, s := range r.scopes {
		if s.ClientID != id {
			scopes = append(scopes, s)
		}
	}
	r.scopes = scopes
	posts := r.posts[:0]
	for _, p := range r.posts {
		if p.ClientID != id {
			posts = append(posts, p)
		}
	}
	r.posts = posts
	return true, nil
}

type memScopes struct{ *memStore }

func (r memScopes) ListByClient(_ context.Context, clientID string) ([]models.Scope, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []models.Scope
	for _, s := range r.scopes {
		if s.ClientID == clientID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r memScopes) Create(_ context.Context, scope *models.Scope) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if !r.hasClient(scope.ClientID) {
		return fkViolation
	}
	scope.ID = uuid.NewString()
	scope.CreatedAt = r.next()
	r.scopes = append(r.scopes, *scope)
	return nil
}

func (r memScopes) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	if !r.hasScope(id) {
		return false, nil
	}
	scopes := r.scopes[:0]
	for _, s := range r.scopes {
		if s.ID != id {
			scopes = append(scopes, s)
		}
	}
	r.scopes = scopes
	for i := range r.posts {
		if r.posts[i].ScopeID != nil && *r.posts[i].ScopeID == id {
			r.posts[i].ScopeID = nil
		}
	}
	return true, nil
}

type memPosts struct{ *memStore }

func (r memPosts) List(_ context.Context, filter models.PostFilter) ([]models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []models.Post
	for _, p := range r.posts {
		if filter.ClientID == "" || p.ClientID == filter.ClientID {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r memPosts) Create(_ context.Context, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if !r.hasClient(post.ClientID) || (post.ScopeID != nil && !r.hasScope(*post.ScopeID)) {
		return fkViolation
	}
	post.ID = uuid.NewString()
	post.CreatedAt = r.next()
	r.posts = append(r.posts, *post)
	return nil
}

func (r memPosts) UpdateStatus(_ context.Context, id string, status models.PostStatus, link *string) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.posts {
		if r.posts[i].ID == id {
			r.posts[i].Status = status
			r.posts[i].Link = link
			post := r.posts[i]
			return &post, nil
		}
	}
	return nil, sql.ErrNoRows
}

type memDashboard struct{ *memStore }

func (r memDashboard) Summary(_ context.Context, today time.Time, criticalAfterDays int) (*models.DashboardSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var summary models.DashboardSummary
	for _, p := range r.posts {
		overdue := DaysBetween(p.Date, today)
		switch {
		case p.Status == models.PostStatusPending && overdue > criticalAfterDays:
			summary.Critical++
		case p.Status == models.PostStatusPending && overdue >= 1:
			summary.Attention++
		case p.Status == models.PostStatusPosted && overdue == 0:
			summary.OnTime++
		}
	}
	return &summary, nil
}

// fixedClock pins "today" to Monday 2024-06-10, midday UTC.
func fixedClock() Clock {
	return Clock{
		Now:      func() time.Time { return time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC) },
		Location: time.UTC,
	}
}

type testServices struct {
	store     *memStore
	clients   *ClientService
	scopes    *ScopeService
	posts     *PostService
	dashboard *DashboardService
}

func newTestServices() testServices {
	store := newMemStore()
	validate := NewValidator()
	return testServices{
		store:     store,
		clients:   NewClientService(memClients{store}, validate, nil),
		scopes:    NewScopeService(memScopes{store}, validate, nil),
		posts:     NewPostService(memPosts{store}, validate, nil, PostServiceConfig{CriticalAfterDays: 3, Clock: fixedClock()}),
		dashboard: NewDashboardService(memDashboard{store}, nil, nil, DashboardServiceConfig{CriticalAfterDays: 3, Clock: fixedClock()}),
	}
}

func strPtr(v string) *string {
	return &v
}
