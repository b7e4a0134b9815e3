package models

// User is one registered account in users.json. Email doubles as the login
// handle and the identity stamped on alerts. Passwords are kept as-is from
// the legacy data files, so comparison is plain equality.
type User struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
