package main

import (
	"log"

	"github.com/shindepushkar677-sys/Disaster-management-alert-system/config"
	"github.com/shindepushkar677-sys/Disaster-management-alert-system/routes"
	"github.com/shindepushkar677-sys/Disaster-management-alert-system/services"
	"github.com/shindepushkar677-sys/Disaster-management-alert-system/storage"
	"github.com/shindepushkar677-sys/Disaster-management-alert-system/utils"
)

func main() {
	cfg := config.Load()

	users := storage.NewUserStore(cfg.UsersFile)
	alerts := storage.NewAlertStore(cfg.AlertsFile)
	if err := users.Init(); err != nil {
		log.Fatalf("failed to initialize %s: %v", cfg.UsersFile, err)
	}
	if err := alerts.Init(); err != nil {
		log.Fatalf("failed to initialize %s: %v", cfg.AlertsFile, err)
	}

	hub := services.NewRealtimeHub()

	var mailer services.Mailer
	if cfg.MailEnabled {
		sesMailer, err := utils.NewSESMailer(cfg.AWSRegion, cfg.SESEmail)
		if err != nil {
			log.Printf("mail disabled: %v", err)
		} else {
			mailer = sesMailer
		}
	}

	svc := services.NewAlertService(alerts, users, hub, mailer)

	r := routes.SetupRouter(routes.Deps{
		Users:         users,
		Alerts:        svc,
		Hub:           hub,
		TemplatesGlob: "templates/*.html",
	})

	log.Printf("disaster alert server listening on :%s (users=%s alerts=%s)",
		cfg.Port, cfg.UsersFile, cfg.AlertsFile)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
