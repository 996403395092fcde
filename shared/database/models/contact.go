package models

import (
	"time"

	"github.com/google/uuid"
)

// Contact is the terminal onboarding step. All three fields are required
// and enforced at the storage layer.
type Contact struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MapLocation string    `json:"map_location" gorm:"not null"`
	PhoneNumber string    `json:"phone_number" gorm:"size:20;not null"`
	Email       string    `json:"email" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
