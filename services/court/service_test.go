package court

import (
	"sort"
	"sync"
	"testing"

	"courtside/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCourtStore implements paging and price sorting in memory.
type fakeCourtStore struct {
	mu     sync.Mutex
	courts []*models.Court
}

func (r *fakeCourtStore) Create(c *models.Court) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.courts = append(r.courts, &cp)
	return nil
}

func (r *fakeCourtStore) Update(c *models.Court) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.courts {
		if existing.ID == c.ID {
			cp := *c
			r.courts[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *fakeCourtStore) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.courts {
		if c.ID == id {
			r.courts = append(r.courts[:i], r.courts[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCourtStore) GetByID(id string) (*models.Court, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.courts {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCourtStore) List(sortOrder string, page, limit int) ([]models.Court, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Court, 0, len(r.courts))
	for _, c := range r.courts {
		out = append(out, *c)
	}
	switch sortOrder {
	case "asc":
		sort.Slice(out, func(i, j int) bool { return out[i].PricePerSession < out[j].PricePerSession })
	case "desc":
		sort.Slice(out, func(i, j int) bool { return out[i].PricePerSession > out[j].PricePerSession })
	}
	start := (page - 1) * limit
	if start >= len(out) {
		return nil, nil
	}
	end := start + limit
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], nil
}

func (r *fakeCourtStore) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.courts)), nil
}

func validCourtInput() models.CourtInput {
	return models.CourtInput{
		Name:            "Court A",
		Type:            "tennis",
		PricePerSession: 25,
		Slots:           []string{"10:00", "11:00"},
	}
}

func newCourtTestService(n int) (*DefaultCourtService, *fakeCourtStore) {
	store := &fakeCourtStore{}
	for i := 0; i < n; i++ {
		store.Create(&models.Court{
			ID:              string(rune('a' + i)),
			Name:            "Court",
			PricePerSession: float64(10 + i),
			Status:          models.CourtStatusAvailable,
			Slots:           []string{"10:00"},
		})
	}
	return &DefaultCourtService{Repo: store}, store
}

func TestListCourtsPagination(t *testing.T) {
	svc, _ := newCourtTestService(8)

	page1, err := svc.ListCourts("asc", 1)
	require.NoError(t, err)
	assert.Len(t, page1.Courts, DefaultPageSize)
	assert.Equal(t, int64(8), page1.Total)
	assert.Equal(t, 2, page1.TotalPages)

	page2, err := svc.ListCourts("asc", 2)
	require.NoError(t, err)
	assert.Len(t, page2.Courts, 2)
	assert.Equal(t, 2, page2.Page)
}

func TestListCourtsSortedByPrice(t *testing.T) {
	svc, _ := newCourtTestService(8)

	asc, err := svc.ListCourts("asc", 1)
	require.NoError(t, err)
	assert.Equal(t, 10.0, asc.Courts[0].PricePerSession)

	desc, err := svc.ListCourts("desc", 1)
	require.NoError(t, err)
	assert.Equal(t, 17.0, desc.Courts[0].PricePerSession)
}

func TestListCourtsClampsPage(t *testing.T) {
	svc, _ := newCourtTestService(3)

	page, err := svc.ListCourts("asc", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Len(t, page.Courts, 3)
}

func TestCreateCourtDefaults(t *testing.T) {
	svc, _ := newCourtTestService(0)

	c, err := svc.CreateCourt(validCourtInput())
	require.NoError(t, err)
	assert.Equal(t, models.CourtStatusAvailable, c.Status)
	assert.Equal(t, 60, c.SessionDuration)
	assert.NotEmpty(t, c.ID)
}

func TestCreateCourtValidation(t *testing.T) {
	svc, _ := newCourtTestService(0)

	in := validCourtInput()
	in.Slots = nil
	_, err := svc.CreateCourt(in)
	assert.Error(t, err)

	in = validCourtInput()
	in.Slots = []string{"10:00", "10:00"}
	_, err = svc.CreateCourt(in)
	assert.Error(t, err)

	in = validCourtInput()
	in.PricePerSession = -1
	_, err = svc.CreateCourt(in)
	assert.Error(t, err)
}

func TestUpdateCourt(t *testing.T) {
	svc, _ := newCourtTestService(0)
	c, err := svc.CreateCourt(validCourtInput())
	require.NoError(t, err)

	in := validCourtInput()
	in.Name = "Renamed"
	in.PricePerSession = 30
	updated, err := svc.UpdateCourt(c.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, 30.0, updated.PricePerSession)
	// Omitted status keeps the stored one.
	assert.Equal(t, models.CourtStatusAvailable, updated.Status)
}

func TestUpdateCourtUnknown(t *testing.T) {
	svc, _ := newCourtTestService(0)
	_, err := svc.UpdateCourt("missing", validCourtInput())
	assert.Error(t, err)
}

func TestDeleteCourt(t *testing.T) {
	svc, store := newCourtTestService(0)
	c, err := svc.CreateCourt(validCourtInput())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCourt(c.ID))

	got, err := store.GetByID(c.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.Error(t, svc.DeleteCourt(c.ID))
}
