package services

import "errors"

var (
	ErrBookingNotFound    = errors.New("Booking not found")
	ErrNoBookings         = errors.New("No bookings found for this user")
	ErrForbidden          = errors.New("Forbidden")
	ErrDepartDateRequired = errors.New("depart_date is required")
	ErrReturnDateOneway   = errors.New("return_date must be null for oneway trips")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrEmailTaken         = errors.New("Email already registered")
)
