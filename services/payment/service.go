package payment

import (
	"errors"
	"fmt"
	"time"

	paymentRepo "courtside/database/repository/payment"
	"courtside/models"
	"courtside/services/booking"
	"courtside/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecordPayment binds a completed charge to a booking. The paid flag is
// flipped first under an atomic precondition (approved and unpaid), so
// of two racing calls exactly one reaches the insert. The unique
// bookingId index is the backstop; if the insert still fails the flag is
// reverted so the booking stays payable.
func (svc *DefaultPaymentService) RecordPayment(input models.PaymentInput) (*models.Payment, error) {
	bk, err := svc.Bookings.GetByID(input.BookingID)
	if err != nil {
		return nil, err
	}
	if bk == nil {
		return nil, NewNotFoundError(fmt.Sprintf("booking %s not found", input.BookingID))
	}

	// Server-side amount check: the charged amount must equal the
	// booking price after the claimed discount.
	expected := booking.ApplyDiscount(bk.Price, input.DiscountApplied)
	if booking.RoundCurrency(input.Amount) != expected {
		return nil, NewConflictError(fmt.Sprintf(
			"payment amount %.2f does not match expected %.2f", input.Amount, expected))
	}

	updated, err := svc.Bookings.MarkPaidIfApproved(input.BookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark booking paid: %w", err)
	}
	if updated == nil {
		if bk.IsPaid {
			return nil, NewConflictError(fmt.Sprintf("booking %s is already paid", input.BookingID))
		}
		return nil, NewConflictError(fmt.Sprintf("booking %s is not approved for payment", input.BookingID))
	}

	pay := &models.Payment{
		ID:              uuid.New().String(),
		Email:           input.Email,
		BookingID:       input.BookingID,
		TransactionID:   input.TransactionID,
		Amount:          expected,
		OriginalPrice:   bk.Price,
		DiscountApplied: input.DiscountApplied,
		CourtName:       bk.CourtName,
		CourtType:       bk.CourtType,
		Date:            bk.Date,
		Slots:           bk.Slots,
		PaidAt:          time.Now(),
	}

	if err := svc.Payments.Create(pay); err != nil {
		if errors.Is(err, paymentRepo.ErrDuplicateBooking) {
			return nil, NewConflictError(fmt.Sprintf("payment already recorded for booking %s", input.BookingID))
		}
		// Back out the paid flag so the booking is not stuck paid with
		// no payment record.
		if revertErr := svc.Bookings.UnmarkPaid(input.BookingID); revertErr != nil {
			utils.GetLogger().Error("failed to revert paid flag after insert failure",
				zap.String("booking", input.BookingID),
				zap.Error(revertErr),
			)
		}
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	utils.GetLogger().Info("payment recorded",
		zap.String("booking", pay.BookingID),
		zap.String("transaction", pay.TransactionID),
		zap.Float64("amount", pay.Amount),
	)
	return pay, nil
}

// ListPayments returns the payment history for a payer.
func (svc *DefaultPaymentService) ListPayments(email string) ([]models.Payment, error) {
	return svc.Payments.ListByEmail(email)
}
