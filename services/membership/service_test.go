package membership

import (
	"context"
	"sync"
	"testing"

	"courtside/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMemberStore mimics the unique email index: a second create for
// the same email reports created == false.
type fakeMemberStore struct {
	mu      sync.Mutex
	byEmail map[string]*models.Member
}

func (r *fakeMemberStore) CreateIfAbsent(m *models.Member) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[m.Email]; ok {
		return false, nil
	}
	cp := *m
	r.byEmail[m.Email] = &cp
	return true, nil
}

func (r *fakeMemberStore) GetByEmail(email string) (*models.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMemberStore) GetByID(id string) (*models.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.byEmail {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeMemberStore) GetAll() ([]models.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Member
	for _, m := range r.byEmail {
		out = append(out, *m)
	}
	return out, nil
}

func (r *fakeMemberStore) Delete(id string) (*models.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for email, m := range r.byEmail {
		if m.ID == id {
			delete(r.byEmail, email)
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeMemberStore) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.byEmail)), nil
}

// fakeUserStore tracks role changes.
type fakeUserStore struct {
	mu      sync.Mutex
	byEmail map[string]*models.User
}

func (r *fakeUserStore) UpsertByEmail(u *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	r.byEmail[u.Email] = &cp
	out := cp
	return &out, nil
}

func (r *fakeUserStore) GetByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
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

// fakeBookingChecker answers HasApprovedByUser only.
type fakeBookingChecker struct {
	approved map[string]bool
}

func (r *fakeBookingChecker) Create(b *models.Booking) error { return nil }
func (r *fakeBookingChecker) GetByID(id string) (*models.Booking, error) { return nil, nil }
func (r *fakeBookingChecker) ListByUser(e, s string) ([]models.Booking, error) { return nil, nil }
func (r *fakeBookingChecker) ApproveIfPending(id string) (*models.Booking, error) {
	return nil, nil
}
func (r *fakeBookingChecker) MarkPaidIfApproved(id string) (*models.Booking, error) {
	return nil, nil
}
func (r *fakeBookingChecker) UnmarkPaid(id string) error { return nil }
func (r *fakeBookingChecker) DeleteIfStatusIn(id string, statuses []string) (bool, error) {
	return false, nil
}
func (r *fakeBookingChecker) HasApprovedByUser(email string) (bool, error) {
	return r.approved[email], nil
}
func (r *fakeBookingChecker) CountByStatus(status string) (int64, error) { return 0, nil }
func (r *fakeBookingChecker) Count() (int64, error) { return 0, nil }

// fakeRoleCache records invalidations.
type fakeRoleCache struct {
	mu          sync.Mutex
	invalidated []string
}

func (c *fakeRoleCache) Get(ctx context.Context, email string) (string, bool) { return "", false }
func (c *fakeRoleCache) Set(ctx context.Context, email, role string) {}
func (c *fakeRoleCache) Invalidate(ctx context.Context, email string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, email)
}

func newMembershipTestService() (*DefaultMembershipService, *fakeMemberStore, *fakeUserStore, *fakeBookingChecker, *fakeRoleCache) {
	members := &fakeMemberStore{byEmail: map[string]*models.Member{}}
	users := &fakeUserStore{byEmail: map[string]*models.User{
		"alice@example.com": {ID: "u-1", Email: "alice@example.com", Role: models.RoleUser},
		"admin@example.com": {ID: "u-2", Email: "admin@example.com", Role: models.RoleAdmin},
	}}
	bookings := &fakeBookingChecker{approved: map[string]bool{}}
	cache := &fakeRoleCache{}
	svc := &DefaultMembershipService{Members: members, Users: users, Bookings: bookings, RoleCache: cache}
	return svc, members, users, bookings, cache
}

func TestPromoteToMember(t *testing.T) {
	svc, members, users, _, cache := newMembershipTestService()

	promoted, err := svc.PromoteToMember("alice@example.com", "Alice", "")
	require.NoError(t, err)
	assert.True(t, promoted)

	m, err := members.GetByEmail("alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, m)

	u, err := users.GetByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleMember, u.Role)
	assert.Contains(t, cache.invalidated, "alice@example.com")
}

func TestPromoteToMemberIsIdempotent(t *testing.T) {
	svc, members, _, _, _ := newMembershipTestService()

	promoted, err := svc.PromoteToMember("alice@example.com", "Alice", "")
	require.NoError(t, err)
	assert.True(t, promoted)

	promoted, err = svc.PromoteToMember("alice@example.com", "Alice", "")
	require.NoError(t, err)
	assert.False(t, promoted)

	all, err := members.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1, "exactly one member record per email")
}

func TestPromoteNeverDemotesAdmin(t *testing.T) {
	svc, _, users, _, _ := newMembershipTestService()

	_, err := svc.PromoteToMember("admin@example.com", "Admin", "")
	require.NoError(t, err)

	u, err := users.GetByEmail("admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, u.Role)
}

func TestJoinClubRequiresApprovedBooking(t *testing.T) {
	svc, _, _, bookings, _ := newMembershipTestService()

	_, err := svc.JoinClub("alice@example.com", "Alice", "")
	require.Error(t, err)

	bookings.approved["alice@example.com"] = true
	joined, err := svc.JoinClub("alice@example.com", "Alice", "")
	require.NoError(t, err)
	assert.True(t, joined)
}

func TestDemote(t *testing.T) {
	svc, members, users, _, cache := newMembershipTestService()

	_, err := svc.PromoteToMember("alice@example.com", "Alice", "")
	require.NoError(t, err)
	m, err := members.GetByEmail("alice@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.Demote(m.ID))

	gone, err := members.GetByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Nil(t, gone)

	u, err := users.GetByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, u.Role)
	assert.Contains(t, cache.invalidated, "alice@example.com")
}

func TestDemoteUnknownMember(t *testing.T) {
	svc, _, _, _, _ := newMembershipTestService()
	assert.Error(t, svc.Demote("missing"))
}
