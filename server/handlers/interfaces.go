package handlers

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"

	"jobpilot-backend/shared/database"
	"jobpilot-backend/shared/database/models"
)

// CredentialStore holds user identity records. Implemented by
// database.CredentialStore.
type CredentialStore interface {
	Register(ctx context.Context, in database.RegisterInput) (uuid.UUID, error)
	Verify(ctx context.Context, orgEmail, password string) (models.User, error)
}

// OnboardingStore persists the four independent step records. Implemented
// by database.OnboardingStore.
type OnboardingStore interface {
	CreateCompany(ctx context.Context, company *models.Company) error
	CreateFounding(ctx context.Context, founding *models.Founding) error
	CreateSocial(ctx context.Context, social *models.Social) error
	CreateContact(ctx context.Context, contact *models.Contact) error
}

// Uploader relays multipart image uploads to object storage and returns
// public URLs. Implemented by services.UploadService.
type Uploader interface {
	UploadImage(ctx context.Context, header *multipart.FileHeader, prefix string) (string, error)
}
