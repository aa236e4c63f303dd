package usecase

import (
	"context"
	"log/slog"
	"time"

	"delacream-park/internal/domain/booking"
	"delacream-park/internal/pkg/clock"
	"delacream-park/internal/pkg/errs"
)

type BookingFilter struct {
	Type   string
	Status string
}

type BookingRepository interface {
	Create(b *booking.Booking) *booking.Booking
	List(f BookingFilter, offset, limit int) ([]*booking.Booking, int)
	UpdateStatus(id int, status booking.Status, now time.Time) (*booking.Booking, error)
	Delete(id int) error
}

type RestaurantBookingInput struct {
	Name            string
	Email           string
	Phone           string
	Date            time.Time
	Time            string
	Guests          int
	SpecialRequests string
}

type HotelBookingInput struct {
	Name     string
	Email    string
	Phone    string
	CheckIn  time.Time
	CheckOut time.Time
	Adults   int
	Children int
	RoomType booking.RoomType
}

type HotelBookingResult struct {
	Booking *booking.Booking
	Quote   booking.StayQuote
}

type BookingList struct {
	Items []*booking.Booking
	PageInfo
}

type BookingUseCase interface {
	CreateRestaurantBooking(ctx context.Context, in RestaurantBookingInput) (*booking.Booking, error)
	CreateHotelBooking(ctx context.Context, in HotelBookingInput) (*HotelBookingResult, error)
	List(ctx context.Context, f BookingFilter, page, limit int) (*BookingList, error)
	UpdateStatus(ctx context.Context, id int, status booking.Status) (*booking.Booking, error)
	Delete(ctx context.Context, id int) error
}

type bookingUseCaseImpl struct {
	repo       BookingRepository
	notifier   Notifier
	calculator booking.PriceCalculator
	clock      clock.Clock
}

func NewBookingUseCase(repo BookingRepository, notifier Notifier, calculator booking.PriceCalculator, clock clock.Clock) BookingUseCase {
	return &bookingUseCaseImpl{
		repo:       repo,
		notifier:   notifier,
		calculator: calculator,
		clock:      clock,
	}
}

func (u *bookingUseCaseImpl) CreateRestaurantBooking(ctx context.Context, in RestaurantBookingInput) (*booking.Booking, error) {
	b := booking.NewRestaurantBooking(in.Name, in.Email, in.Phone, in.Date, in.Time, in.Guests, in.SpecialRequests, u.clock.Now())
	b = u.repo.Create(b)

	u.sendConfirmation(ctx, b)
	return b, nil
}

func (u *bookingUseCaseImpl) CreateHotelBooking(ctx context.Context, in HotelBookingInput) (*HotelBookingResult, error) {
	now := u.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if in.CheckIn.Before(today) {
		return nil, errs.ErrCheckInInPast
	}
	if !in.CheckOut.After(in.CheckIn) {
		return nil, errs.ErrCheckOutNotAfterIn
	}

	b := booking.NewHotelBooking(in.Name, in.Email, in.Phone, in.CheckIn, in.CheckOut, in.Adults, in.Children, in.RoomType, now)
	b = u.repo.Create(b)

	u.sendConfirmation(ctx, b)

	return &HotelBookingResult{
		Booking: b,
		Quote:   u.calculator.QuoteStay(in.CheckIn, in.CheckOut, in.RoomType),
	}, nil
}

// sendConfirmation is fire-and-forget: a transport failure never fails the
// booking that was already stored.
func (u *bookingUseCaseImpl) sendConfirmation(ctx context.Context, b *booking.Booking) {
	if b.Email == "" {
		return
	}
	if err := u.notifier.BookingConfirmation(ctx, b); err != nil {
		slog.Warn("booking confirmation email failed", "booking_id", b.ID, "error", err)
	}
}

func (u *bookingUseCaseImpl) List(_ context.Context, f BookingFilter, page, limit int) (*BookingList, error) {
	items, total := u.repo.List(f, Offset(page, limit), limit)
	return &BookingList{
		Items:    items,
		PageInfo: NewPageInfo(len(items), total, page, limit),
	}, nil
}

func (u *bookingUseCaseImpl) UpdateStatus(_ context.Context, id int, status booking.Status) (*booking.Booking, error) {
	return u.repo.UpdateStatus(id, status, u.clock.Now())
}

func (u *bookingUseCaseImpl) Delete(_ context.Context, id int) error {
	return u.repo.Delete(id)
}
