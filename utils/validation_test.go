package utils

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salahou-dine/hon-hon/models"
)

func validate(t *testing.T, obj interface{}) error {
	t.Helper()
	RegisterValidators()
	return binding.Validator.ValidateStruct(obj)
}

func TestBookingRequestValidation(t *testing.T) {
	depart, err := models.ParseDate("2026-11-16")
	require.NoError(t, err)
	ret := depart.AddDays(4)

	ok := models.BookingRequest{Destination: "Paris", DepartDate: depart, ReturnDate: &ret, Origin: "CMN"}
	assert.NoError(t, validate(t, ok))

	oneway := models.BookingRequest{Destination: "Paris", DepartDate: depart, ReturnDate: &ret, TripType: models.TripTypeOneway}
	err = validate(t, oneway)
	require.Error(t, err)
	assert.Equal(t, "return_date must be null for oneway trips", ValidationMessage(err))

	badOrigin := models.BookingRequest{Destination: "Paris", DepartDate: depart, Origin: "CM1"}
	err = validate(t, badOrigin)
	require.Error(t, err)
	assert.Equal(t, "origin must be a 3-letter IATA code", ValidationMessage(err))

	short := models.BookingRequest{Destination: "P", DepartDate: depart}
	err = validate(t, short)
	require.Error(t, err)
	assert.Equal(t, "destination is too short (min 2)", ValidationMessage(err))
}

func TestFeedbackRequestValidation(t *testing.T) {
	err := validate(t, models.FeedbackRequest{ItemID: "hotel_paris_x", Category: "museum", City: "Paris", Action: "like"})
	require.Error(t, err)
	assert.Equal(t, "category must be one of: hotel restaurant activity transport", ValidationMessage(err))

	err = validate(t, models.FeedbackRequest{Category: "hotel", City: "Paris", Action: "like"})
	require.Error(t, err)
	assert.Equal(t, "item_id is required", ValidationMessage(err))
}

func TestValidationMessageNonValidatorError(t *testing.T) {
	assert.Equal(t, "boom", ValidationMessage(errors.New("boom")))
}
