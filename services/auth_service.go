package services

import (
	"errors"

	"github.com/shindepushkar677-sys/Disaster-management-alert-system/storage"
	"github.com/shindepushkar677-sys/Disaster-management-alert-system/utils"
)

var ErrInvalidCredentials = errors.New("Invalid email or password")

func RegisterUser(users *storage.UserStore, email, password string) error {
	return users.Register(email, password)
}

// AuthenticateUser checks the credentials against the user store and mints
// a session token. Passwords in users.json are stored as entered, so the
// comparison is plain equality.
func AuthenticateUser(users *storage.UserStore, email, password string) (string, error) {
	user, ok := users.FindByEmail(email)
	if !ok || user.Password != password {
		return "", ErrInvalidCredentials
	}
	return utils.GenerateJWT(user.Email)
}
