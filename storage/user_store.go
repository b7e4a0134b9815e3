package storage

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"sync"

	"github.com/shindepushkar677-sys/Disaster-management-alert-system/models"
)

var ErrDuplicateEmail = errors.New("email already registered")

// UserStore persists registered accounts as a single JSON array file.
// Accounts are append-only; there is no update or delete.
type UserStore struct {
	mu   sync.Mutex
	path string
}

func NewUserStore(path string) *UserStore {
	return &UserStore{path: path}
}

func (s *UserStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return s.save([]models.User{})
	}
	return nil
}

func (s *UserStore) LoadAll() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *UserStore) SaveAll(users []models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(users)
}

// Register appends a new account unless the email (case-sensitive) is
// already taken.
func (s *UserStore) Register(email, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := s.load()
	for _, u := range users {
		if u.Email == email {
			return ErrDuplicateEmail
		}
	}
	return s.save(append(users, models.User{Email: email, Password: password}))
}

// FindByEmail scans for an account by exact email match.
func (s *UserStore) FindByEmail(email string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.load() {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *UserStore) load() []models.User {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("error loading users: %v", err)
		}
		return []models.User{}
	}

	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		log.Printf("WARNING: %s corrupted, resetting", s.path)
		return []models.User{}
	}
	if users == nil {
		users = []models.User{}
	}
	return users
}

func (s *UserStore) save(users []models.User) error {
	if users == nil {
		users = []models.User{}
	}
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		log.Printf("error encoding users: %v", err)
		return err
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		log.Printf("error saving users: %v", err)
		return err
	}
	return nil
}
