package booking

import (
	"math"
	"time"
)

// StayQuote is the indicative price returned with a hotel booking inquiry.
// Amounts are whole currency units (KES).
type StayQuote struct {
	Nights         int
	EstimatedTotal int64
}

type PriceCalculator interface {
	QuoteStay(checkIn, checkOut time.Time, roomType RoomType) StayQuote
}

type RateCardCalculator struct {
	NightlyRates map[RoomType]int64
}

func NewRateCardCalculator() *RateCardCalculator {
	return &RateCardCalculator{
		NightlyRates: map[RoomType]int64{
			RoomStandard:     8500,
			RoomDeluxe:       12000,
			RoomExecutive:    18000,
			RoomPresidential: 35000,
		},
	}
}

func (pc *RateCardCalculator) QuoteStay(checkIn, checkOut time.Time, roomType RoomType) StayQuote {
	// Partial days count as a full night, same as the front desk would bill.
	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	return StayQuote{
		Nights:         nights,
		EstimatedTotal: int64(nights) * pc.NightlyRates[roomType],
	}
}
