package domain

import (
	"fmt"
	"math"
	"time"
)

// Settlement is the split of a paid amount between the platform and the caretaker
type Settlement struct {
	Amount          float64
	PlatformFee     float64
	CaretakerPayout float64
}

// RoundMoney rounds to 2 decimals, half away from zero
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// DurationDays returns the inclusive calendar-day count of [start, end], floored to 1
func DurationDays(start, end time.Time) int {
	days := daysApart(start, end) + 1
	if days < MinBookingDuration {
		return MinBookingDuration
	}
	return days
}

// TotalPrice computes the booking price from a per-day service rate
func TotalPrice(servicePrice float64, start, end time.Time) float64 {
	return RoundMoney(servicePrice * float64(DurationDays(start, end)))
}

// CalculateSettlement splits amount using the fixed platform commission rate
func CalculateSettlement(amount float64) (Settlement, error) {
	if math.IsNaN(amount) || amount <= 0 || amount > MaxPaymentAmount {
		return Settlement{}, fmt.Errorf("%w: must be in (0, %.2f], got %v", ErrInvalidAmount, MaxPaymentAmount, amount)
	}

	amount = RoundMoney(amount)
	fee := RoundMoney(amount * PlatformFeeRate)

	return Settlement{
		Amount:          amount,
		PlatformFee:     fee,
		CaretakerPayout: RoundMoney(amount - fee),
	}, nil
}
