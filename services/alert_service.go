package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shindepushkar677-sys/Disaster-management-alert-system/models"
	"github.com/shindepushkar677-sys/Disaster-management-alert-system/storage"
)

var ErrNotFound = errors.New("Alert not found")

// ValidationError marks a rejected payload; its message goes to the client
// verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

const timestampLayout = "2006-01-02 15:04:05"

// AlertInput is the client payload for a new alert.
type AlertInput struct {
	Type string  `json:"type"`
	Desc string  `json:"desc"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

type notification struct {
	Title              string `json:"title"`
	Body               string `json:"body"`
	RequireInteraction bool   `json:"requireInteraction,omitempty"`
}

type newAlertEvent struct {
	models.Alert
	Notification notification `json:"notification"`
}

type alertIDEvent struct {
	ID           string       `json:"id"`
	Notification notification `json:"notification"`
}

// AlertService coordinates the store with realtime and email fan-out.
// Fan-out is best effort: once the store save succeeds the mutation has
// succeeded, whatever happens to broadcasts or email afterwards.
type AlertService struct {
	Alerts *storage.AlertStore
	Users  *storage.UserStore
	Hub    *RealtimeHub
	Mail   Mailer
}

func NewAlertService(alerts *storage.AlertStore, users *storage.UserStore, hub *RealtimeHub, mail Mailer) *AlertService {
	return &AlertService{Alerts: alerts, Users: users, Hub: hub, Mail: mail}
}

// List returns every alert on file; it never fails.
func (s *AlertService) List() []models.Alert {
	return s.Alerts.LoadAll()
}

// Create validates the payload, assigns a fresh id, persists, then fans out.
// Zero coordinates count as missing: the legacy system treated 0 as unset
// and that behavior is kept.
func (s *AlertService) Create(input AlertInput, user string) (models.Alert, error) {
	if input.Type == "" || input.Desc == "" {
		return models.Alert{}, &ValidationError{Message: "Missing type or description"}
	}
	if input.Lat == 0 || input.Lng == 0 {
		return models.Alert{}, &ValidationError{Message: "Missing coordinates"}
	}

	alert := models.Alert{
		ID:        uuid.NewString(),
		Type:      input.Type,
		Desc:      input.Desc,
		Lat:       input.Lat,
		Lng:       input.Lng,
		User:      user,
		Timestamp: time.Now().Format(timestampLayout),
		Resolved:  false,
	}

	err := s.Alerts.Mutate(func(alerts []models.Alert) ([]models.Alert, bool) {
		return append(alerts, alert), true
	})
	if err != nil {
		return models.Alert{}, fmt.Errorf("failed to save alert: %w", err)
	}

	if s.Hub != nil {
		s.Hub.Broadcast("new_alert", newAlertEvent{
			Alert: alert,
			Notification: notification{
				Title:              fmt.Sprintf("🚨 %s Alert", alert.Type),
				Body:               alert.Desc,
				RequireInteraction: true,
			},
		})
	}
	EmailAllUsers(s.Mail, s.Users, alert)

	return alert, nil
}

// Resolve marks the alert resolved. Repeat calls keep resolved=true and
// overwrite resolved_by/resolved_at with the latest caller.
func (s *AlertService) Resolve(id, user string) (models.Alert, error) {
	var resolved models.Alert
	found := false

	_ = s.Alerts.Mutate(func(alerts []models.Alert) ([]models.Alert, bool) {
		for i := range alerts {
			if alerts[i].ID == id {
				alerts[i].Resolved = true
				alerts[i].ResolvedBy = user
				alerts[i].ResolvedAt = time.Now().Format(timestampLayout)
				resolved = alerts[i]
				found = true
				return alerts, true
			}
		}
		return alerts, false
	})

	if !found {
		return models.Alert{}, ErrNotFound
	}

	if s.Hub != nil {
		s.Hub.Broadcast("alert_resolved", alertIDEvent{
			ID: id,
			Notification: notification{
				Title: fmt.Sprintf("✅ %s Resolved", resolved.Type),
				Body:  fmt.Sprintf("Alert has been resolved by %s", user),
			},
		})
	}
	return resolved, nil
}

// Remove deletes the alert from the store entirely; the id is gone afterwards.
func (s *AlertService) Remove(id string) error {
	removedType := ""
	found := false

	_ = s.Alerts.Mutate(func(alerts []models.Alert) ([]models.Alert, bool) {
		kept := alerts[:0]
		for _, a := range alerts {
			if a.ID == id {
				removedType = a.Type
				found = true
				continue
			}
			kept = append(kept, a)
		}
		return kept, found
	})

	if !found {
		return ErrNotFound
	}

	if removedType == "" {
		removedType = "Alert"
	}
	if s.Hub != nil {
		s.Hub.Broadcast("remove_alert", alertIDEvent{
			ID: id,
			Notification: notification{
				Title: "🗑️ Alert Removed",
				Body:  fmt.Sprintf("%s has been removed", removedType),
			},
		})
	}
	return nil
}
