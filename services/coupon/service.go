package coupon

import (
	"fmt"

	couponRepo "courtside/database/repository/coupon"
	"courtside/models"

	"github.com/google/uuid"
)

// CouponService is the admin CRUD surface for discount coupons. Coupon
// application at payment time lives in the payment service.
type CouponService interface {
	ListCoupons() ([]models.Coupon, error)
	CreateCoupon(input models.CouponInput) (*models.Coupon, error)
	UpdateCoupon(id string, input models.CouponInput) (*models.Coupon, error)
	DeleteCoupon(id string) error
}

// DefaultCouponService is the production implementation.
type DefaultCouponService struct {
	Repo couponRepo.CouponRepository
}

func validateCouponInput(input models.CouponInput) error {
	if input.DiscountPercent <= 0 || input.DiscountPercent > 100 {
		return fmt.Errorf("discount percent must be in (0,100]")
	}
	return nil
}

// ListCoupons returns all coupons, including expired ones; expiry is
// enforced at application time.
func (svc *DefaultCouponService) ListCoupons() ([]models.Coupon, error) {
	return svc.Repo.GetAll()
}

// CreateCoupon adds a new coupon code.
func (svc *DefaultCouponService) CreateCoupon(input models.CouponInput) (*models.Coupon, error) {
	if err := validateCouponInput(input); err != nil {
		return nil, err
	}
	c := &models.Coupon{
		ID:              uuid.New().String(),
		Code:            input.Code,
		DiscountPercent: input.DiscountPercent,
		ExpiresAt:       input.ExpiresAt,
	}
	if err := svc.Repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateCoupon modifies an existing coupon.
func (svc *DefaultCouponService) UpdateCoupon(id string, input models.CouponInput) (*models.Coupon, error) {
	if err := validateCouponInput(input); err != nil {
		return nil, err
	}
	c := &models.Coupon{
		ID:              id,
		Code:            input.Code,
		DiscountPercent: input.DiscountPercent,
		ExpiresAt:       input.ExpiresAt,
	}
	if err := svc.Repo.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCoupon removes a coupon.
func (svc *DefaultCouponService) DeleteCoupon(id string) error {
	deleted, err := svc.Repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("coupon %s not found", id)
	}
	return nil
}
