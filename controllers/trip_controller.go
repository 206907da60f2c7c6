package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salahou-dine/hon-hon/models"
	"github.com/salahou-dine/hon-hon/services"
	"github.com/salahou-dine/hon-hon/services/recommender"
	"github.com/salahou-dine/hon-hon/services/scoring"
	"github.com/salahou-dine/hon-hon/services/timeline"
)

// TripController карточки после бронирования, таймлайн "Мои поездки" и памятки
type TripController struct {
	Bookings *services.BookingService
	Today    func() models.Date
}

func NewTripController(bookings *services.BookingService, today func() models.Date) *TripController {
	return &TripController{Bookings: bookings, Today: today}
}

// GET /recommendations/post-booking?booking_id=
func (tc *TripController) PostBooking(c *gin.Context) {
	bookingID := c.Query("booking_id")
	if bookingID == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "booking_id is required"})
		return
	}
	booking, err := tc.Bookings.GetOwned(c.Request.Context(), currentUserID(c), bookingID)
	if err != nil {
		respondError(c, err, "post-booking recommendations")
		return
	}

	// возрастная группа и лояльность пока не хранятся
	scores := scoring.ComputeScores(booking.DepartDate, booking.ReturnDate, booking.Cabin, nil, nil)

	c.JSON(http.StatusOK, recommender.PostBookingResponse{
		BookingID: booking.ID,
		Summary:   scores,
		Cards:     recommender.BuildPostBookingCards(scores, booking.Cabin),
	})
}

// GET /my-trips/timeline
func (tc *TripController) CurrentTimeline(c *gin.Context) {
	today := tc.Today()
	booking, err := tc.Bookings.NextOrLast(c.Request.Context(), currentUserID(c), today)
	if err != nil {
		respondError(c, err, "current timeline")
		return
	}
	c.JSON(http.StatusOK, timeline.BuildTimeline(booking, today))
}

// GET /my-trips/:id/timeline
func (tc *TripController) BookingTimeline(c *gin.Context) {
	booking, err := tc.Bookings.GetOwned(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "booking timeline")
		return
	}
	c.JSON(http.StatusOK, timeline.BuildTimeline(booking, tc.Today()))
}

// GET /travel-info/check-in?booking_id=
func (tc *TripController) CheckIn(c *gin.Context) {
	booking, ok := tc.optionalBooking(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, timeline.CheckInInfo(booking))
}

// GET /travel-info/departure-day?booking_id=
func (tc *TripController) DepartureDay(c *gin.Context) {
	booking, ok := tc.optionalBooking(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, timeline.DepartureDayInfo(booking))
}

// optionalBooking без booking_id памятка отдается без данных поездки
func (tc *TripController) optionalBooking(c *gin.Context) (*models.Booking, bool) {
	bookingID := c.Query("booking_id")
	if bookingID == "" {
		return nil, true
	}
	booking, err := tc.Bookings.GetOwned(c.Request.Context(), currentUserID(c), bookingID)
	if err != nil {
		respondError(c, err, "travel info")
		return nil, false
	}
	return booking, true
}
