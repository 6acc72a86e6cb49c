package booking

import (
	"fmt"
	"time"

	"courtside/models"
	"courtside/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking validates the request and creates the booking in pending.
// The price is always recomputed from the court; the client-derived value
// is never trusted.
func (svc *DefaultBookingService) CreateBooking(input models.BookingInput) (*models.Booking, error) {
	if input.UserEmail == "" {
		return nil, NewValidationError("user email is required")
	}
	if len(input.Slots) == 0 {
		return nil, NewValidationError("select at least one slot")
	}

	date, err := time.ParseInLocation(utils.DateLayout, input.Date, time.Local)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("invalid booking date %q", input.Date))
	}
	today := time.Now()
	todayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.Local)
	if date.Before(todayStart) {
		return nil, NewValidationError("booking date must be today or later")
	}

	court, err := svc.CourtRepo.GetByID(input.CourtID)
	if err != nil {
		return nil, fmt.Errorf("failed to load court: %w", err)
	}
	if court == nil {
		return nil, NewNotFoundError(fmt.Sprintf("court %s not found", input.CourtID))
	}
	if court.Status != models.CourtStatusAvailable {
		return nil, NewValidationError(fmt.Sprintf("court %s is not available for booking", court.Name))
	}

	valid := make(map[string]bool, len(court.Slots))
	for _, slot := range court.Slots {
		valid[slot] = true
	}
	seen := make(map[string]bool, len(input.Slots))
	for _, slot := range input.Slots {
		if !valid[slot] {
			return nil, NewValidationError(fmt.Sprintf("slot %q is not offered by this court", slot))
		}
		if seen[slot] {
			return nil, NewValidationError(fmt.Sprintf("slot %q selected more than once", slot))
		}
		seen[slot] = true
	}

	booking := &models.Booking{
		ID:        uuid.New().String(),
		UserEmail: input.UserEmail,
		UserName:  input.UserName,
		UserImage: input.UserImage,
		CourtID:   court.ID,
		CourtName: court.Name,
		CourtType: court.Type,
		Date:      input.Date,
		Slots:     input.Slots,
		Price:     ComputePrice(input.Slots, court.PricePerSession),
		Status:    models.BookingStatusPending,
		IsPaid:    false,
		CreatedAt: time.Now(),
	}

	if err := svc.Repo.Create(booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	utils.GetLogger().Info("booking created",
		zap.String("id", booking.ID),
		zap.String("user", booking.UserEmail),
		zap.String("court", booking.CourtName),
		zap.Float64("price", booking.Price),
	)
	return booking, nil
}

// GetBooking retrieves a booking by id.
func (svc *DefaultBookingService) GetBooking(id string) (*models.Booking, error) {
	booking, err := svc.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, NewNotFoundError(fmt.Sprintf("booking %s not found", id))
	}
	return booking, nil
}

// ListBookings returns bookings filtered by user email and/or status.
// "confirmed" matches approved-and-paid bookings as well.
func (svc *DefaultBookingService) ListBookings(email, status string) ([]models.Booking, error) {
	return svc.Repo.ListByUser(email, status)
}

// ListPending returns all bookings awaiting moderation.
func (svc *DefaultBookingService) ListPending() ([]models.Booking, error) {
	return svc.Repo.ListByUser("", models.BookingStatusPending)
}
