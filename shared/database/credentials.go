package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobpilot-backend/shared/database/models"
	utils "jobpilot-backend/shared/utils/auth"
)

var (
	// ErrDuplicateUser is returned when the org email is already registered.
	ErrDuplicateUser = errors.New("email already registered")
	// ErrUserNotFound is returned when no user exists for the given email or id.
	ErrUserNotFound = errors.New("user not found")
	// ErrBadCredential is returned when the password does not match.
	ErrBadCredential = errors.New("incorrect password")
)

// RegisterInput carries the registration form fields. The password arrives
// in plaintext and is hashed before it touches the database.
type RegisterInput struct {
	FullName string
	Mobile   string
	OrgEmail string
	Gender   string
	Password string
}

// CredentialStore holds user identity records and verifies passwords.
type CredentialStore struct {
	db *gorm.DB
}

func NewCredentialStore(db *gorm.DB) *CredentialStore {
	return &CredentialStore{db: db}
}

// Register hashes the password and persists a new user. The org email is the
// login key and must be unique.
func (s *CredentialStore) Register(ctx context.Context, in RegisterInput) (uuid.UUID, error) {
	var existing models.User
	if err := s.db.WithContext(ctx).Where("org_email = ?", in.OrgEmail).First(&existing).Error; err == nil {
		return uuid.Nil, ErrDuplicateUser
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, fmt.Errorf("lookup existing user: %w", err)
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return uuid.Nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		FullName:     in.FullName,
		Mobile:       in.Mobile,
		OrgEmail:     in.OrgEmail,
		Gender:       in.Gender,
		PasswordHash: hashed,
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return uuid.Nil, fmt.Errorf("create user: %w", err)
	}

	return user.ID, nil
}

// Verify looks the user up by org email and compares the password against
// the stored hash.
func (s *CredentialStore) Verify(ctx context.Context, orgEmail, password string) (models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("org_email = ?", orgEmail).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("lookup user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return models.User{}, ErrBadCredential
	}

	return user, nil
}

// FindUserByID loads a user row by primary key. Used by the auth gate to
// attach the session user to the request.
func (s *CredentialStore) FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("lookup user: %w", err)
	}
	return user, nil
}
