package booking

import "math"

// ComputePrice derives the booking price: one session fee per selected
// slot, independent of slot order.
func ComputePrice(slots []string, pricePerSession float64) float64 {
	return RoundCurrency(float64(len(slots)) * pricePerSession)
}

// ApplyDiscount applies a percentage discount and rounds to currency
// precision. A zero discount returns the price unchanged.
func ApplyDiscount(price, discountPercent float64) float64 {
	if discountPercent <= 0 {
		return RoundCurrency(price)
	}
	return RoundCurrency(price * (1 - discountPercent/100))
}

// RoundCurrency rounds to two decimal places.
func RoundCurrency(amount float64) float64 {
	return math.Round(amount*100) / 100
}
