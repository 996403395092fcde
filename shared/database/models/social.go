package models

import (
	"time"

	"github.com/google/uuid"
)

// Social links are all optional.
type Social struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Facebook  string    `json:"facebook"`
	Twitter   string    `json:"twitter"`
	Instagram string    `json:"instagram"`
	Youtube   string    `json:"youtube"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
