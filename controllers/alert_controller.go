package controllers

import (
	"errors"
	"net/http"

	"github.com/shindepushkar677-sys/Disaster-management-alert-system/services"

	"github.com/gin-gonic/gin"
)

type AlertController struct {
	Svc *services.AlertService
}

func NewAlertController(svc *services.AlertService) *AlertController {
	return &AlertController{Svc: svc}
}

// GET /get_alerts — public; never returns an error body, only an array.
func (ac *AlertController) GetAlerts(c *gin.Context) {
	c.JSON(http.StatusOK, ac.Svc.List())
}

// POST /add_alert
func (ac *AlertController) AddAlert(c *gin.Context) {
	var input services.AlertInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid data format"})
		return
	}

	alert, err := ac.Svc.Create(input, c.GetString("email"))
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": ve.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to save alert"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "id": alert.ID})
}

type alertIDInput struct {
	ID string `json:"id"`
}

// POST /mark_resolved
func (ac *AlertController) MarkResolved(c *gin.Context) {
	var input alertIDInput
	if err := c.ShouldBindJSON(&input); err != nil || input.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "No alert ID"})
		return
	}

	if _, err := ac.Svc.Resolve(input.ID, c.GetString("email")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Alert not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "resolved"})
}

// POST /remove_alert
func (ac *AlertController) RemoveAlert(c *gin.Context) {
	var input alertIDInput
	if err := c.ShouldBindJSON(&input); err != nil || input.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "No alert ID"})
		return
	}

	if err := ac.Svc.Remove(input.ID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Alert not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}
