package models

import (
	"time"

	"github.com/google/uuid"
)

type Founding struct {
	ID               uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationName string     `json:"organization_name" gorm:"size:200"`
	IndustryType     string     `json:"industry_type" gorm:"size:100"`
	Vision           string     `json:"vision"`
	Date             *time.Time `json:"date"`
	TeamSize         int        `json:"team_size"`
	CompanyWebsite   string     `json:"company_website"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
