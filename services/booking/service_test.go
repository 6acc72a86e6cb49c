package booking

import (
	"sync"
	"testing"
	"time"

	"courtside/models"
	"courtside/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingRepo is an in-memory BookingRepository with the same
// precondition semantics as the Mongo implementation.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[string]*models.Booking{}}
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) ListByUser(email, status string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if email != "" && b.UserEmail != email {
			continue
		}
		switch status {
		case "":
		case models.BookingStatusConfirmed:
			if b.Status != models.BookingStatusConfirmed && !b.IsPaid {
				continue
			}
		default:
			if b.Status != status {
				continue
			}
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeBookingRepo) ApproveIfPending(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok || b.Status != models.BookingStatusPending {
		return nil, nil
	}
	b.Status = models.BookingStatusApproved
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) MarkPaidIfApproved(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok || b.Status != models.BookingStatusApproved || b.IsPaid {
		return nil, nil
	}
	b.IsPaid = true
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) UnmarkPaid(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.bookings[id]; ok {
		b.IsPaid = false
	}
	return nil
}

func (r *fakeBookingRepo) DeleteIfStatusIn(id string, statuses []string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok || b.IsPaid {
		return false, nil
	}
	for _, s := range statuses {
		if b.Status == s {
			delete(r.bookings, id)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBookingRepo) HasApprovedByUser(email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.UserEmail == email && b.Status == models.BookingStatusApproved {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBookingRepo) CountByStatus(status string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, b := range r.bookings {
		if b.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeBookingRepo) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.bookings)), nil
}

// fakeCourtRepo serves a fixed set of courts.
type fakeCourtRepo struct {
	courts map[string]*models.Court
}

func (r *fakeCourtRepo) Create(c *models.Court) error { r.courts[c.ID] = c; return nil }
func (r *fakeCourtRepo) Update(c *models.Court) error { r.courts[c.ID] = c; return nil }
func (r *fakeCourtRepo) Delete(id string) (bool, error) {
	_, ok := r.courts[id]
	delete(r.courts, id)
	return ok, nil
}
func (r *fakeCourtRepo) GetByID(id string) (*models.Court, error) {
	c, ok := r.courts[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}
func (r *fakeCourtRepo) List(sort string, page, limit int) ([]models.Court, error) {
	return nil, nil
}
func (r *fakeCourtRepo) Count() (int64, error) { return int64(len(r.courts)), nil }

// fakeMembership records promotion calls.
type fakeMembership struct {
	promoted []string
	result   bool
}

func (m *fakeMembership) PromoteToMember(email, name, image string) (bool, error) {
	m.promoted = append(m.promoted, email)
	return m.result, nil
}
func (m *fakeMembership) JoinClub(email, name, image string) (bool, error) {
	return m.PromoteToMember(email, name, image)
}
func (m *fakeMembership) Demote(memberID string) error { return nil }
func (m *fakeMembership) ListMembers() ([]models.Member, error) { return nil, nil }

func testCourt() *models.Court {
	return &models.Court{
		ID:              "court-1",
		Name:            "Center Court",
		Type:            "tennis",
		Status:          models.CourtStatusAvailable,
		PricePerSession: 25,
		Slots:           []string{"10:00", "11:00", "12:00"},
	}
}

func newTestService() (*DefaultBookingService, *fakeBookingRepo, *fakeMembership) {
	repo := newFakeBookingRepo()
	courts := &fakeCourtRepo{courts: map[string]*models.Court{"court-1": testCourt()}}
	membership := &fakeMembership{result: true}
	svc := &DefaultBookingService{Repo: repo, CourtRepo: courts, Membership: membership}
	return svc, repo, membership
}

func validInput() models.BookingInput {
	return models.BookingInput{
		UserEmail: "alice@example.com",
		UserName:  "Alice",
		CourtID:   "court-1",
		Date:      time.Now().AddDate(0, 0, 1).Format(utils.DateLayout),
		Slots:     []string{"10:00", "11:00"},
	}
}

func TestCreateBookingComputesPriceServerSide(t *testing.T) {
	svc, _, _ := newTestService()

	bk, err := svc.CreateBooking(validInput())
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusPending, bk.Status)
	assert.False(t, bk.IsPaid)
	assert.Equal(t, 50.0, bk.Price) // 2 slots x 25
	assert.Equal(t, "Center Court", bk.CourtName)
	assert.NotEmpty(t, bk.ID)
}

func TestCreateBookingValidation(t *testing.T) {
	svc, _, _ := newTestService()

	cases := []struct {
		name   string
		mutate func(*models.BookingInput)
	}{
		{"missing email", func(in *models.BookingInput) { in.UserEmail = "" }},
		{"no slots", func(in *models.BookingInput) { in.Slots = nil }},
		{"bad date", func(in *models.BookingInput) { in.Date = "31-12-2026" }},
		{"past date", func(in *models.BookingInput) {
			in.Date = time.Now().AddDate(0, 0, -1).Format(utils.DateLayout)
		}},
		{"unknown slot", func(in *models.BookingInput) { in.Slots = []string{"23:00"} }},
		{"duplicate slot", func(in *models.BookingInput) { in.Slots = []string{"10:00", "10:00"} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := svc.CreateBooking(in)
			require.Error(t, err)
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
		})
	}
}

func TestCreateBookingTodayIsAllowed(t *testing.T) {
	svc, _, _ := newTestService()
	in := validInput()
	in.Date = time.Now().Format(utils.DateLayout)

	_, err := svc.CreateBooking(in)
	assert.NoError(t, err)
}

func TestCreateBookingUnknownCourt(t *testing.T) {
	svc, _, _ := newTestService()
	in := validInput()
	in.CourtID = "nope"

	_, err := svc.CreateBooking(in)
	var nfErr *NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}

func TestCreateBookingUnavailableCourt(t *testing.T) {
	svc, _, _ := newTestService()
	courts := svc.CourtRepo.(*fakeCourtRepo)
	courts.courts["court-1"].Status = models.CourtStatusMaintenance

	_, err := svc.CreateBooking(validInput())
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestApprovePromotesAndReportsIt(t *testing.T) {
	svc, _, membership := newTestService()
	bk, err := svc.CreateBooking(validInput())
	require.NoError(t, err)

	approved, promoted, err := svc.Approve(bk.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusApproved, approved.Status)
	assert.True(t, promoted)
	assert.Equal(t, []string{"alice@example.com"}, membership.promoted)

	// Approval never touches the price.
	assert.Equal(t, bk.Price, approved.Price)
}

func TestApproveTwiceIsConflict(t *testing.T) {
	svc, _, _ := newTestService()
	bk, err := svc.CreateBooking(validInput())
	require.NoError(t, err)

	_, _, err = svc.Approve(bk.ID)
	require.NoError(t, err)

	_, _, err = svc.Approve(bk.ID)
	var cErr *ConflictError
	assert.ErrorAs(t, err, &cErr)
}

func TestApproveMissingBooking(t *testing.T) {
	svc, _, _ := newTestService()
	_, _, err := svc.Approve("missing")
	var nfErr *NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}

func TestRejectRemovesPendingBooking(t *testing.T) {
	svc, repo, _ := newTestService()
	bk, err := svc.CreateBooking(validInput())
	require.NoError(t, err)

	require.NoError(t, svc.Reject(bk.ID))

	got, err := repo.GetByID(bk.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRejectApprovedBookingIsConflict(t *testing.T) {
	svc, _, _ := newTestService()
	bk, err := svc.CreateBooking(validInput())
	require.NoError(t, err)
	_, _, err = svc.Approve(bk.ID)
	require.NoError(t, err)

	err = svc.Reject(bk.ID)
	var cErr *ConflictError
	assert.ErrorAs(t, err, &cErr)
}

func TestCancelOwnership(t *testing.T) {
	svc, _, _ := newTestService()
	bk, err := svc.CreateBooking(validInput())
	require.NoError(t, err)

	// Someone else cannot cancel it.
	err = svc.Cancel(bk.ID, "mallory@example.com", false)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	// An admin can.
	assert.NoError(t, svc.Cancel(bk.ID, "admin@example.com", true))
}

func TestCancelPaidBookingIsConflict(t *testing.T) {
	svc, repo, _ := newTestService()
	bk, err := svc.CreateBooking(validInput())
	require.NoError(t, err)
	_, _, err = svc.Approve(bk.ID)
	require.NoError(t, err)
	_, err = repo.MarkPaidIfApproved(bk.ID)
	require.NoError(t, err)

	err = svc.Cancel(bk.ID, "alice@example.com", false)
	var cErr *ConflictError
	assert.ErrorAs(t, err, &cErr)
}

func TestListBookingsConfirmedIncludesPaid(t *testing.T) {
	svc, repo, _ := newTestService()
	bk, err := svc.CreateBooking(validInput())
	require.NoError(t, err)
	_, _, err = svc.Approve(bk.ID)
	require.NoError(t, err)
	_, err = repo.MarkPaidIfApproved(bk.ID)
	require.NoError(t, err)

	confirmed, err := svc.ListBookings("alice@example.com", models.BookingStatusConfirmed)
	require.NoError(t, err)
	require.Len(t, confirmed, 1)
	assert.Equal(t, bk.ID, confirmed[0].ID)
}
