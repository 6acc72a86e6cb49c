package couponRepo

import "courtside/models"

// CouponRepository persists discount coupons.
type CouponRepository interface {
	Create(coupon *models.Coupon) error
	Update(coupon *models.Coupon) error
	Delete(id string) (bool, error)
	GetByCode(code string) (*models.Coupon, error)
	GetAll() ([]models.Coupon, error)
}
