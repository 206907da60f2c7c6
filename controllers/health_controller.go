package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salahou-dine/hon-hon/config"
)

type HealthController struct {
	Cfg *config.Config
}

func NewHealthController(cfg *config.Config) *HealthController {
	return &HealthController{Cfg: cfg}
}

// GET /api/v1/health
func (hc *HealthController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "app": hc.Cfg.AppName, "env": hc.Cfg.Env})
}

// GET /
func (hc *HealthController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": hc.Cfg.AppName + " is running"})
}
