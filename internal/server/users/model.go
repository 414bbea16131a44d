package users

import "time"

// DefaultRole is assigned to accounts created through registration.
const DefaultRole = "user"

// User is the persisted account record. PasswordHash and VerificationToken
// never leave the server; responses carry a reduced projection instead.
type User struct {
	ID                string
	Name              string
	Email             string
	PasswordHash      string
	PhoneNumber       string
	Role              string
	VerificationToken string
	CreatedAt         time.Time
}
