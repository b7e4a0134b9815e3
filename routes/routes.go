package routes

import (
	"github.com/shindepushkar677-sys/Disaster-management-alert-system/controllers"
	"github.com/shindepushkar677-sys/Disaster-management-alert-system/middlewares"
	"github.com/shindepushkar677-sys/Disaster-management-alert-system/services"
	"github.com/shindepushkar677-sys/Disaster-management-alert-system/storage"

	"github.com/gin-gonic/gin"
)

// Deps carries everything the router wires together.
type Deps struct {
	Users  *storage.UserStore
	Alerts *services.AlertService
	Hub    *services.RealtimeHub

	// TemplatesGlob is empty in handler tests, which only exercise the
	// JSON routes.
	TemplatesGlob string
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()
	if d.TemplatesGlob != "" {
		r.LoadHTMLGlob(d.TemplatesGlob)
	}

	pages := controllers.NewPageController()
	auth := controllers.NewAuthController(d.Users)
	alerts := controllers.NewAlertController(d.Alerts)
	realtime := controllers.NewRealtimeController(d.Hub)

	optional := middlewares.OptionalAuthMiddleware(d.Users)

	// Public routes
	r.GET("/", optional, pages.Home)
	r.GET("/map", optional, pages.Map)
	r.GET("/get_alerts", alerts.GetAlerts)
	r.GET("/check_auth", optional, auth.CheckAuth)
	r.GET("/ws", realtime.AlertsWS)

	// Authentication routes
	r.GET("/register", auth.ShowRegister)
	r.POST("/register", auth.Register)
	r.GET("/login", auth.ShowLogin)
	r.POST("/login", auth.Login)

	// Protected page routes
	pageAuth := middlewares.PageAuthMiddleware(d.Users)
	r.GET("/dashboard", pageAuth, pages.Dashboard)
	r.GET("/logout", pageAuth, auth.Logout)

	// Protected mutation routes
	mutate := r.Group("")
	mutate.Use(middlewares.AuthMiddleware(d.Users))
	{
		mutate.POST("/add_alert", alerts.AddAlert)
		mutate.POST("/mark_resolved", alerts.MarkResolved)
		mutate.POST("/remove_alert", alerts.RemoveAlert)
	}

	return r
}
