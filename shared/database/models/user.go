package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName     string    `json:"full_name" gorm:"size:100;not null"`
	Mobile       string    `json:"mobile" gorm:"size:20"`
	OrgEmail     string    `json:"org_email" gorm:"uniqueIndex;not null"`
	Gender       string    `json:"gender" gorm:"size:20"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
