package booking

import "time"

// Booking covers both restaurant reservations and hotel booking inquiries.
// The two variants share identity, contact and status fields; the
// reservation fields used depend on Type.
type Booking struct {
	ID   int
	Type Type

	// Guest contact
	Name  string
	Email string
	Phone string

	// Restaurant reservation
	Date            time.Time
	Time            string // "15:04", validated at the boundary
	Guests          int
	SpecialRequests string

	// Hotel inquiry
	CheckIn  time.Time
	CheckOut time.Time
	Adults   int
	Children int
	RoomType RoomType

	Status    Status
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewRestaurantBooking(name, email, phone string, date time.Time, timeOfDay string, guests int, specialRequests string, now time.Time) *Booking {
	return &Booking{
		Type:            TypeRestaurant,
		Name:            name,
		Email:           email,
		Phone:           phone,
		Date:            date,
		Time:            timeOfDay,
		Guests:          guests,
		SpecialRequests: specialRequests,
		Status:          StatusPending,
		CreatedAt:       now,
	}
}

func NewHotelBooking(name, email, phone string, checkIn, checkOut time.Time, adults, children int, roomType RoomType, now time.Time) *Booking {
	return &Booking{
		Type:      TypeHotel,
		Name:      name,
		Email:     email,
		Phone:     phone,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Adults:    adults,
		Children:  children,
		RoomType:  roomType,
		Status:    StatusPending,
		CreatedAt: now,
	}
}
