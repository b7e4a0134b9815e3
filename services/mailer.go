package services

import (
	"fmt"
	"log"

	"github.com/shindepushkar677-sys/Disaster-management-alert-system/models"
	"github.com/shindepushkar677-sys/Disaster-management-alert-system/storage"
)

// Mailer sends a single plain-text message. utils.SESMailer is the
// production implementation.
type Mailer interface {
	Send(to, subject, body string) error
}

// EmailAllUsers sends one new-alert message per registered user,
// sequentially. The first failure aborts the remaining sends; errors are
// logged, never returned, so email can never fail a mutation.
func EmailAllUsers(mailer Mailer, users *storage.UserStore, alert models.Alert) {
	if mailer == nil {
		return
	}
	subject := fmt.Sprintf("🚨 New %s Alert", alert.Type)
	body := fmt.Sprintf("Alert Type: %s\nDescription: %s\nLocation: (%.4f, %.4f)\nTime: %s",
		alert.Type, alert.Desc, alert.Lat, alert.Lng, alert.Timestamp)

	for _, u := range users.LoadAll() {
		if err := mailer.Send(u.Email, subject, body); err != nil {
			log.Printf("email error: %v", err)
			return
		}
	}
}
