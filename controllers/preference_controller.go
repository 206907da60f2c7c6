package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salahou-dine/hon-hon/models"
	"github.com/salahou-dine/hon-hon/services"
)

type PreferenceController struct {
	Preferences *services.PreferenceService
	Consents    *services.ConsentService
}

func NewPreferenceController(prefs *services.PreferenceService, consents *services.ConsentService) *PreferenceController {
	return &PreferenceController{Preferences: prefs, Consents: consents}
}

// GET /preferences
func (pc *PreferenceController) GetPreferences(c *gin.Context) {
	pref, err := pc.Preferences.GetOrCreateDefault(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err, "get preferences")
		return
	}
	c.JSON(http.StatusOK, pref.ToResponse())
}

// POST /preferences
func (pc *PreferenceController) UpsertPreferences(c *gin.Context) {
	req := models.PreferenceRequest{Budget: models.BudgetMid}
	if !bindJSON(c, &req) {
		return
	}
	pref, err := pc.Preferences.Upsert(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		respondError(c, err, "upsert preferences")
		return
	}
	c.JSON(http.StatusOK, pref.ToResponse())
}

// GET /privacy/consent
func (pc *PreferenceController) GetConsent(c *gin.Context) {
	consent, err := pc.Consents.GetOrCreateDefault(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err, "get consent")
		return
	}
	c.JSON(http.StatusOK, consent)
}

// POST /privacy/consent
func (pc *PreferenceController) UpsertConsent(c *gin.Context) {
	var req models.ConsentRequest
	if !bindJSON(c, &req) {
		return
	}
	consent, err := pc.Consents.Set(c.Request.Context(), currentUserID(c), *req.DestinationRecosEnabled)
	if err != nil {
		respondError(c, err, "upsert consent")
		return
	}
	c.JSON(http.StatusOK, consent)
}
