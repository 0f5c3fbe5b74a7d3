package models

// User is an admin credential record. Users are provisioned out-of-band in
// users.json and never created or modified by this service.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
}
