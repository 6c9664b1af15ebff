package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type AlertController struct {
	Alerts *services.AlertBus
}

func NewAlertController(alerts *services.AlertBus) *AlertController {
	return &AlertController{Alerts: alerts}
}

// GET /alerts
func (a *AlertController) Recent(c *gin.Context) {
	uid := c.GetUint("userID")

	alerts, err := a.Alerts.Recent(c.Request.Context(), uid, queryLimit(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}
