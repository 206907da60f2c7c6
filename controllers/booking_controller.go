package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salahou-dine/hon-hon/models"
	"github.com/salahou-dine/hon-hon/services"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{Bookings: bookings}
}

// POST /bookings/
func (bc *BookingController) Create(c *gin.Context) {
	var req models.BookingRequest
	if !bindJSON(c, &req) {
		return
	}
	booking, err := bc.Bookings.Create(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		respondError(c, err, "create booking")
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// GET /bookings/
func (bc *BookingController) List(c *gin.Context) {
	bookings, err := bc.Bookings.ListOwned(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err, "list bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GET /bookings/:id
func (bc *BookingController) Get(c *gin.Context) {
	booking, err := bc.Bookings.GetOwned(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "get booking")
		return
	}
	c.JSON(http.StatusOK, booking)
}

// PUT /bookings/:id только данные пассажира
func (bc *BookingController) Update(c *gin.Context) {
	var req models.BookingRequest
	if !bindJSON(c, &req) {
		return
	}
	booking, err := bc.Bookings.UpdatePersonal(c.Request.Context(), currentUserID(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "update booking")
		return
	}
	c.JSON(http.StatusOK, booking)
}
