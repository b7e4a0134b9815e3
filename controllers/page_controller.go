package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type PageController struct{}

func NewPageController() *PageController {
	return &PageController{}
}

// GET / — authenticated users land on the dashboard, everyone else on the
// public map.
func (p *PageController) Home(c *gin.Context) {
	if c.GetString("email") != "" {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/map")
}

// GET /map — public map; guests see it read-only.
func (p *PageController) Map(c *gin.Context) {
	email := c.GetString("email")
	username := email
	if username == "" {
		username = "Guest"
	}
	c.HTML(http.StatusOK, "map.html", gin.H{
		"username":         username,
		"is_authenticated": email != "",
	})
}

// GET /dashboard — same map page, mutation controls enabled.
func (p *PageController) Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "map.html", gin.H{
		"username":         c.GetString("email"),
		"is_authenticated": true,
	})
}
