package request

import (
	"time"

	"delacream-park/internal/domain/booking"
	"delacream-park/internal/usecase"
)

const dateLayout = "2006-01-02"

type RestaurantBookingRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"omitempty,email"`
	Phone           string `json:"phone" binding:"required"`
	Date            string `json:"date" binding:"required,datetime=2006-01-02"`
	Time            string `json:"time" binding:"required,datetime=15:04"`
	Guests          int    `json:"guests" binding:"required,min=1,max=20"`
	SpecialRequests string `json:"specialRequests" binding:"omitempty,max=500"`
}

func (r *RestaurantBookingRequest) ToInput() (usecase.RestaurantBookingInput, error) {
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return usecase.RestaurantBookingInput{}, err
	}

	return usecase.RestaurantBookingInput{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Date:            date,
		Time:            r.Time,
		Guests:          r.Guests,
		SpecialRequests: r.SpecialRequests,
	}, nil
}

type HotelBookingRequest struct {
	Name     string `json:"name" binding:"omitempty,max=100"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone" binding:"omitempty,max=30"`
	CheckIn  string `json:"checkIn" binding:"required,datetime=2006-01-02"`
	CheckOut string `json:"checkOut" binding:"required,datetime=2006-01-02"`
	Adults   int    `json:"adults" binding:"required,min=1,max=10"`
	Children int    `json:"children" binding:"omitempty,min=0,max=10"`
	RoomType string `json:"roomType" binding:"required,oneof=standard deluxe executive presidential"`
}

func (r *HotelBookingRequest) ToInput() (usecase.HotelBookingInput, error) {
	checkIn, err := time.Parse(dateLayout, r.CheckIn)
	if err != nil {
		return usecase.HotelBookingInput{}, err
	}
	checkOut, err := time.Parse(dateLayout, r.CheckOut)
	if err != nil {
		return usecase.HotelBookingInput{}, err
	}
	roomType, err := booking.NewRoomType(r.RoomType)
	if err != nil {
		return usecase.HotelBookingInput{}, err
	}

	return usecase.HotelBookingInput{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Adults:   r.Adults,
		Children: r.Children,
		RoomType: roomType,
	}, nil
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
}

type BookingListQuery struct {
	Type   string `form:"type" binding:"omitempty,oneof=restaurant hotel"`
	Status string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	Page   int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit  int    `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
}
