package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"jobpilot-backend/shared/database/models"
)

// ErrMissingField is returned when a required record field is empty.
var ErrMissingField = errors.New("required field missing")

// OnboardingStore persists the four independent onboarding records. Each
// record is a single-row insert; there are no cross-record relationships,
// so a failed step never affects records saved by earlier steps.
type OnboardingStore struct {
	db *gorm.DB
}

func NewOnboardingStore(db *gorm.DB) *OnboardingStore {
	return &OnboardingStore{db: db}
}

func (s *OnboardingStore) CreateCompany(ctx context.Context, company *models.Company) error {
	if err := s.db.WithContext(ctx).Create(company).Error; err != nil {
		return fmt.Errorf("create company: %w", err)
	}
	return nil
}

func (s *OnboardingStore) CreateFounding(ctx context.Context, founding *models.Founding) error {
	if err := s.db.WithContext(ctx).Create(founding).Error; err != nil {
		return fmt.Errorf("create founding: %w", err)
	}
	return nil
}

func (s *OnboardingStore) CreateSocial(ctx context.Context, social *models.Social) error {
	if err := s.db.WithContext(ctx).Create(social).Error; err != nil {
		return fmt.Errorf("create social: %w", err)
	}
	return nil
}

// CreateContact enforces the required fields before the insert so that a
// validation failure persists nothing.
func (s *OnboardingStore) CreateContact(ctx context.Context, contact *models.Contact) error {
	for field, value := range map[string]string{
		"map_location": contact.MapLocation,
		"phone_number": contact.PhoneNumber,
		"email":        contact.Email,
	} {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, field)
		}
	}

	if err := s.db.WithContext(ctx).Create(contact).Error; err != nil {
		return fmt.Errorf("create contact: %w", err)
	}
	return nil
}
