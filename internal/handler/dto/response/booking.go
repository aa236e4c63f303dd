package response

import (
	"time"

	"delacream-park/internal/domain/booking"
)

const dateLayout = "2006-01-02"

type BookingResponse struct {
	ID     int    `json:"id"`
	Type   string `json:"type"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Status string `json:"status"`

	Date            string `json:"date,omitempty"`
	Time            string `json:"time,omitempty"`
	Guests          int    `json:"guests,omitempty"`
	SpecialRequests string `json:"specialRequests,omitempty"`

	CheckIn  string `json:"checkIn,omitempty"`
	CheckOut string `json:"checkOut,omitempty"`
	Adults   int    `json:"adults,omitempty"`
	Children int    `json:"children,omitempty"`
	RoomType string `json:"roomType,omitempty"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	res := &BookingResponse{
		ID:        b.ID,
		Type:      string(b.Type),
		Name:      b.Name,
		Email:     b.Email,
		Phone:     b.Phone,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}

	switch b.Type {
	case booking.TypeHotel:
		res.CheckIn = b.CheckIn.Format(dateLayout)
		res.CheckOut = b.CheckOut.Format(dateLayout)
		res.Adults = b.Adults
		res.Children = b.Children
		res.RoomType = string(b.RoomType)
	default:
		res.Date = b.Date.Format(dateLayout)
		res.Time = b.Time
		res.Guests = b.Guests
		res.SpecialRequests = b.SpecialRequests
	}

	return res
}

func FromBookingList(items []*booking.Booking) []*BookingResponse {
	res := make([]*BookingResponse, len(items))
	for i, b := range items {
		res[i] = FromBooking(b)
	}
	return res
}

// HotelBookingResponse adds the non-binding stay estimate returned on
// inquiry creation.
type HotelBookingResponse struct {
	BookingResponse
	Nights         int   `json:"nights"`
	EstimatedTotal int64 `json:"estimatedTotal"`
}

func FromHotelBooking(b *booking.Booking, quote booking.StayQuote) *HotelBookingResponse {
	return &HotelBookingResponse{
		BookingResponse: *FromBooking(b),
		Nights:          quote.Nights,
		EstimatedTotal:  quote.EstimatedTotal,
	}
}
