package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salahou-dine/hon-hon/middleware"
	"github.com/salahou-dine/hon-hon/services"
	"github.com/salahou-dine/hon-hon/services/destinations"
	"github.com/salahou-dine/hon-hon/utils"
)

// currentUserID subject токена (guest:... или user:...)
func currentUserID(c *gin.Context) string {
	return c.GetString(middleware.CtxUserID)
}

// bindJSON при ошибке отвечает 422 с понятным сообщением
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": utils.ValidationMessage(err)})
		return false
	}
	return true
}

func bindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": utils.ValidationMessage(err)})
		return false
	}
	return true
}

// respondError переводит ошибки сервисов в HTTP-коды
func respondError(c *gin.Context, err error, context string) {
	switch {
	case errors.Is(err, services.ErrBookingNotFound), errors.Is(err, services.ErrNoBookings):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, destinations.ErrConsentRequired):
		c.JSON(http.StatusForbidden, gin.H{"error": "Destination recommendations disabled (consent required)"})
	case errors.Is(err, services.ErrDepartDateRequired), errors.Is(err, services.ErrReturnDateOneway):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		utils.LogError(err, context)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
