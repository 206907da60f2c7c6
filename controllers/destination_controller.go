package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salahou-dine/hon-hon/services"
	"github.com/salahou-dine/hon-hon/services/destinations"
	"github.com/salahou-dine/hon-hon/utils"
)

type DestinationController struct {
	Ranker   *destinations.Ranker
	Searches *services.SearchHistoryService
}

func NewDestinationController(ranker *destinations.Ranker, history *services.SearchHistoryService) *DestinationController {
	return &DestinationController{Ranker: ranker, Searches: history}
}

type recommendationsQuery struct {
	City     string  `form:"city" json:"city" binding:"required,min=2"`
	Category string  `form:"category" json:"category" binding:"required"`
	Budget   *string `form:"budget" json:"budget"`
	Limit    *int    `form:"limit" json:"limit" binding:"omitempty,min=1,max=20"`
}

type arrivalQuery struct {
	City             string  `form:"city" json:"city" binding:"required,min=2"`
	Budget           *string `form:"budget" json:"budget"`
	LimitPerCategory *int    `form:"limit_per_category" json:"limit_per_category" binding:"omitempty,min=1,max=10"`
}

// GET /destinations/recommendations
func (dc *DestinationController) Recommendations(c *gin.Context) {
	var q recommendationsQuery
	if !bindQuery(c, &q) {
		return
	}
	limit := 10
	if q.Limit != nil {
		limit = *q.Limit
	}

	userID := currentUserID(c)
	resp, err := dc.Ranker.Rank(c.Request.Context(), destinations.RankRequest{
		UserID:   userID,
		City:     q.City,
		Category: q.Category,
		Budget:   q.Budget,
		Limit:    limit,
	})
	if err != nil {
		respondError(c, err, "destination recommendations")
		return
	}

	if dc.Searches != nil && resp.Count > 0 {
		if err := dc.Searches.Record(c.Request.Context(), userID, resp); err != nil {
			utils.LogError(err, "record destination search")
		}
	}
	c.JSON(http.StatusOK, resp)
}

// GET /destinations/arrival
func (dc *DestinationController) Arrival(c *gin.Context) {
	var q arrivalQuery
	if !bindQuery(c, &q) {
		return
	}
	limit := 4
	if q.LimitPerCategory != nil {
		limit = *q.LimitPerCategory
	}

	resp, err := dc.Ranker.RankArrival(c.Request.Context(), destinations.ArrivalRequest{
		UserID:           currentUserID(c),
		City:             q.City,
		Budget:           q.Budget,
		LimitPerCategory: limit,
	})
	if err != nil {
		respondError(c, err, "arrival recommendations")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GET /destinations/history
func (dc *DestinationController) History(c *gin.Context) {
	rows, err := dc.Searches.Recent(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err, "destination history")
		return
	}
	c.JSON(http.StatusOK, rows)
}
