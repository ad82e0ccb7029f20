package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is the registered user identity for SafePlace.
// Only the salted bcrypt digest is held; a plaintext password never
// leaves the HTTP boundary.
type Account struct {
	UserID       uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
