package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salahou-dine/hon-hon/models"
	"github.com/salahou-dine/hon-hon/services"
)

type FeedbackController struct {
	Feedback *services.FeedbackService
}

func NewFeedbackController(feedback *services.FeedbackService) *FeedbackController {
	return &FeedbackController{Feedback: feedback}
}

// POST /feedback
func (fc *FeedbackController) Upsert(c *gin.Context) {
	var req models.FeedbackRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := fc.Feedback.Upsert(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		respondError(c, err, "upsert feedback")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GET /feedback?city=&category=
func (fc *FeedbackController) List(c *gin.Context) {
	rows, err := fc.Feedback.List(c.Request.Context(), currentUserID(c), c.Query("city"), c.Query("category"))
	if err != nil {
		respondError(c, err, "list feedback")
		return
	}
	c.JSON(http.StatusOK, rows)
}
