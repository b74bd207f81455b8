package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user in the system
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserRepository defines the interface for user read operations
type UserRepository interface {
	GetByID(id uuid.UUID) (*User, error)
	GetAll() ([]*User, error)
}
