package entity

import (
	"time"

	"github.com/google/uuid"
)

// Faculty represents a faculty member for data transfer between layers.
type Faculty struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
