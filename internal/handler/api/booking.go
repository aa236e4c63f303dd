package api

import (
	"errors"
	"net/http"
	"strconv"

	"delacream-park/internal/domain/booking"
	reqdto "delacream-park/internal/handler/dto/request"
	resdto "delacream-park/internal/handler/dto/response"
	"delacream-park/internal/handler/httperr"
	"delacream-park/internal/pkg/errs"
	"delacream-park/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookings usecase.BookingUseCase
}

func NewBookingHandler(bookings usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// @Summary Create restaurant reservation
// @Description Book a table at the restaurant
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.RestaurantBookingRequest true "Reservation request"
// @Success 201 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Router /bookings/restaurant [post]
func (h *BookingHandler) CreateRestaurant(c *gin.Context) {
	var req reqdto.RestaurantBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindingError(c, err)
		return
	}

	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}

	b, err := h.bookings.CreateRestaurantBooking(c.Request.Context(), in)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.Msg("Reservation created successfully", resdto.FromBooking(b)))
}

// @Summary Create hotel booking inquiry
// @Description Submit a hotel stay inquiry and receive a price estimate
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.HotelBookingRequest true "Booking inquiry"
// @Success 201 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Router /bookings/hotel [post]
func (h *BookingHandler) CreateHotel(c *gin.Context) {
	var req reqdto.HotelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindingError(c, err)
		return
	}

	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}

	result, err := h.bookings.CreateHotelBooking(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCheckInInPast):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Check-in date cannot be in the past", nil)
		case errors.Is(err, errs.ErrCheckOutNotAfterIn):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Check-out date must be after check-in date", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.Msg("Booking inquiry received",
		resdto.FromHotelBooking(result.Booking, result.Quote)))
}

// @Summary List bookings
// @Description List all bookings with optional type/status filters
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param type query string false "Booking type" Enums(restaurant, hotel)
// @Param status query string false "Booking status" Enums(pending, confirmed, cancelled, completed)
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.ListEnvelope
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var q reqdto.BookingListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithBindingError(c, err)
		return
	}

	list, err := h.bookings.List(c.Request.Context(),
		usecase.BookingFilter{Type: q.Type, Status: q.Status}, q.Page, q.Limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.Paged(resdto.FromBookingList(list.Items), list.PageInfo))
}

// @Summary Update booking status
// @Description Set the status of one booking
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "Status update"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/status [put]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}

	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindingError(c, err)
		return
	}

	status, err := booking.NewStatus(req.Status)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking status", nil)
		return
	}

	b, err := h.bookings.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		if errors.Is(err, errs.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.Msg("Booking status updated", resdto.FromBooking(b)))
}

// @Summary Delete booking
// @Description Remove one booking
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}

	if err := h.bookings.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, errs.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.Msg("Booking deleted successfully", nil))
}
