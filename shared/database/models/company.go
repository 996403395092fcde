package models

import (
	"time"

	"github.com/google/uuid"
)

// Company holds the first onboarding step. Logo and banner are public URLs
// returned by the upload relay, not file contents.
type Company struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyLogo string    `json:"company_logo"`
	BannerImage string    `json:"banner_image"`
	CompanyName string    `json:"company_name" gorm:"size:200"`
	AboutUs     string    `json:"about_us"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
