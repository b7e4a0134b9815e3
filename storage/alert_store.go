package storage

import (
	"encoding/json"
	"log"
	"os"
	"sync"

	"github.com/shindepushkar677-sys/Disaster-management-alert-system/models"
)

// AlertStore persists the full alert list as a single JSON array file.
// Every mutation rewrites the whole file. A per-store mutex serializes
// read-modify-write cycles so two in-flight mutations cannot clobber each
// other's save.
type AlertStore struct {
	mu   sync.Mutex
	path string
}

func NewAlertStore(path string) *AlertStore {
	return &AlertStore{path: path}
}

// Init creates the backing file as an empty array if it does not exist yet.
func (s *AlertStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return s.save([]models.Alert{})
	}
	return nil
}

// LoadAll returns every alert on file. A missing file yields an empty list.
// A corrupt or non-array file logs a warning and self-heals to [].
func (s *AlertStore) LoadAll() []models.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// SaveAll replaces the file contents with the given list.
func (s *AlertStore) SaveAll(alerts []models.Alert) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(alerts)
}

// Mutate runs fn on the current list and, when fn reports a change, saves
// the result — all under the store lock, so concurrent mutations observe
// each other's writes instead of racing on the same snapshot.
func (s *AlertStore) Mutate(fn func(alerts []models.Alert) ([]models.Alert, bool)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, changed := fn(s.load())
	if !changed {
		return nil
	}
	return s.save(next)
}

func (s *AlertStore) load() []models.Alert {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("error loading alerts: %v", err)
		}
		return []models.Alert{}
	}

	var alerts []models.Alert
	if err := json.Unmarshal(data, &alerts); err != nil {
		log.Printf("WARNING: %s corrupted, resetting to empty list: %v", s.path, err)
		if saveErr := s.save([]models.Alert{}); saveErr != nil {
			log.Printf("error resetting alerts file: %v", saveErr)
		}
		return []models.Alert{}
	}
	if alerts == nil {
		alerts = []models.Alert{}
	}
	return alerts
}

func (s *AlertStore) save(alerts []models.Alert) error {
	if alerts == nil {
		alerts = []models.Alert{}
	}
	data, err := json.MarshalIndent(alerts, "", "  ")
	if err != nil {
		log.Printf("error encoding alerts: %v", err)
		return err
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		log.Printf("error saving alerts: %v", err)
		return err
	}
	log.Printf("successfully saved %d alerts", len(alerts))
	return nil
}
