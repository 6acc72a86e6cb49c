package user

import (
	"context"
	"errors"
	"sync"
	"testing"

	"courtside/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserStore is an in-memory UserRepository; failLookups simulates a
// store outage for the fail-safe role test.
type fakeUserStore struct {
	mu          sync.Mutex
	byEmail     map[string]*models.User
	failLookups bool
}

func (r *fakeUserStore) UpsertByEmail(u *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.byEmail[u.Email]
	if ok {
		existing.Name = u.Name
		existing.Photo = u.Photo
		cp := *existing
		return &cp, nil
	}
	cp := *u
	cp.ID = "u-" + u.Email
	r.byEmail[u.Email] = &cp
	out := cp
	return &out, nil
}

func (r *fakeUserStore) GetByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failLookups {
		return nil, errors.New("store unavailable")
	}
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserStore) GetByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserStore) SearchByEmail(query string) ([]models.User, error) { return nil, nil }

func (r *fakeUserStore) UpdateRole(id, role string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byEmail {
		if u.ID == id {
			u.Role = role
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserStore) UpdateRoleByEmail(email, role string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	u.Role = role
	cp := *u
	return &cp, nil
}

func (r *fakeUserStore) GetAll() ([]models.User, error) { return nil, nil }
func (r *fakeUserStore) Count() (int64, error) { return 0, nil }

// memoryRoleCache is a map-backed RoleCache.
type memoryRoleCache struct {
	mu    sync.Mutex
	roles map[string]string
	sets  int
}

func (c *memoryRoleCache) Get(ctx context.Context, email string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	role, ok := c.roles[email]
	return role, ok
}

func (c *memoryRoleCache) Set(ctx context.Context, email, role string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.roles[email] = role
	c.sets++
}

func (c *memoryRoleCache) Invalidate(ctx context.Context, email string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.roles, email)
}

func newUserTestService() (*DefaultUserService, *fakeUserStore, *memoryRoleCache) {
	store := &fakeUserStore{byEmail: map[string]*models.User{
		"admin@example.com": {ID: "u-admin", Email: "admin@example.com", Role: models.RoleAdmin},
	}}
	cache := &memoryRoleCache{roles: map[string]string{}}
	svc := &DefaultUserService{Repo: store, Cache: cache}
	return svc, store, cache
}

func TestUpsertUserKeepsRole(t *testing.T) {
	svc, store, _ := newUserTestService()

	u, err := svc.UpsertUser("alice@example.com", "Alice", "photo.png")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, u.Role)

	// Promote, then sign in again: the role survives the upsert.
	store.byEmail["alice@example.com"].Role = models.RoleMember
	u, err = svc.UpsertUser("alice@example.com", "Alice A.", "new.png")
	require.NoError(t, err)
	assert.Equal(t, models.RoleMember, u.Role)
	assert.Equal(t, "Alice A.", u.Name)
}

func TestUpsertUserRequiresEmail(t *testing.T) {
	svc, _, _ := newUserTestService()
	_, err := svc.UpsertUser("", "Alice", "")
	assert.Error(t, err)
}

func TestResolveRoleCaches(t *testing.T) {
	svc, _, cache := newUserTestService()

	assert.Equal(t, models.RoleAdmin, svc.ResolveRole("admin@example.com"))
	assert.Equal(t, 1, cache.sets)

	// Second resolve is served from the cache.
	assert.Equal(t, models.RoleAdmin, svc.ResolveRole("admin@example.com"))
	assert.Equal(t, 1, cache.sets)
}

func TestResolveRoleFailSafe(t *testing.T) {
	svc, store, _ := newUserTestService()
	store.failLookups = true

	// A store outage resolves to the least-privileged role.
	assert.Equal(t, models.RoleUser, svc.ResolveRole("admin@example.com"))
}

func TestResolveRoleUnknownUser(t *testing.T) {
	svc, _, _ := newUserTestService()
	assert.Equal(t, models.RoleUser, svc.ResolveRole("nobody@example.com"))
}

func TestRefreshRoleBypassesCache(t *testing.T) {
	svc, store, cache := newUserTestService()

	assert.Equal(t, models.RoleAdmin, svc.ResolveRole("admin@example.com"))

	// The store changes behind the cache.
	store.byEmail["admin@example.com"].Role = models.RoleUser
	assert.Equal(t, models.RoleAdmin, svc.ResolveRole("admin@example.com"), "stale until refreshed")
	assert.Equal(t, models.RoleUser, svc.RefreshRole("admin@example.com"))

	// And the refreshed value is what the cache now serves.
	role, ok := cache.Get(context.Background(), "admin@example.com")
	assert.True(t, ok)
	assert.Equal(t, models.RoleUser, role)
}

func TestSetRole(t *testing.T) {
	svc, _, cache := newUserTestService()

	// Warm the cache, then change the role.
	svc.ResolveRole("admin@example.com")

	u, err := svc.SetRole("u-admin", models.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, u.Role)

	// The stale cached value is gone.
	_, ok := cache.Get(context.Background(), "admin@example.com")
	assert.False(t, ok)
}

func TestSetRoleRejectsUnknownRole(t *testing.T) {
	svc, _, _ := newUserTestService()
	_, err := svc.SetRole("u-admin", "superuser")
	assert.Error(t, err)
}

func TestSetRoleUnknownUser(t *testing.T) {
	svc, _, _ := newUserTestService()
	_, err := svc.SetRole("missing", models.RoleAdmin)
	assert.Error(t, err)
}
