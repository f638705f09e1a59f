package user

import (
	"time"
)

// User is an admin account for the management dashboard. Kiosk punching
// does not require a user; users exist only for the authenticated surface.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
