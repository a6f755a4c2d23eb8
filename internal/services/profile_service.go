package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/alimgiray/projectboard/internal/models"
	"github.com/alimgiray/projectboard/internal/repositories"
	"github.com/google/uuid"
)

type ProfileService struct {
	profileRepo *repositories.ProfileRepository
}

func NewProfileService(profileRepo *repositories.ProfileRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
	}
}

// GetProfile retrieves a profile by ID
func (s *ProfileService) GetProfile(id string) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return profile, nil
}

// UpsertFromIdentity creates the profile for a signed-in identity, or
// refreshes the name and twitter handle of an existing one with that email.
func (s *ProfileService) UpsertFromIdentity(identity *Identity) (*models.Profile, error) {
	if identity.Email == "" {
		return nil, errors.New("identity has no email address")
	}

	profile, err := s.profileRepo.GetByEmail(identity.Email)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		profile = &models.Profile{
			ID:       uuid.New().String(),
			Email:    identity.Email,
			FullName: optional(identity.Name),
			Twitter:  optional(identity.Twitter),
		}
		if err := s.profileRepo.Create(profile); err != nil {
			return nil, fmt.Errorf("failed to create profile: %w", err)
		}
		return profile, nil
	case err != nil:
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	if identity.Name != "" {
		profile.FullName = optional(identity.Name)
	}
	if identity.Twitter != "" {
		profile.Twitter = optional(identity.Twitter)
	}
	if err := s.profileRepo.Update(profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
