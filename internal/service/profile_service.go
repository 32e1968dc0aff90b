package service

import (
	"context"
	"errors"

	"github.com/cinestream/backend/internal/domain"
	"github.com/cinestream/backend/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrProfileNotFound   = errors.New("profile not found")
	ErrProfileNameExists = errors.New("profile name already exists")
)

type ProfileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

type ProfileInput struct {
	Name           string
	Avatar         string
	MaturityRating string
}

func (s *ProfileService) List(ctx context.Context, user *domain.User) ([]*domain.Profile, error) {
	return s.profileRepo.GetByUserID(ctx, user.ID)
}

func (s *ProfileService) Create(ctx context.Context, user *domain.User, input ProfileInput) (*domain.Profile, error) {
	if existing, err := s.profileRepo.GetByUserAndName(ctx, user.ID, input.Name); err == nil && existing != nil {
		return nil, ErrProfileNameExists
	}

	profile := &domain.Profile{
		UserID:         user.ID,
		Name:           input.Name,
		Avatar:         input.Avatar,
		MaturityRating: input.MaturityRating,
	}
	if profile.MaturityRating == "" {
		profile.MaturityRating = "PG-13"
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrProfileNameExists
		}
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) Update(ctx context.Context, user *domain.User, profileID uint, input ProfileInput) (*domain.Profile, error) {
	profile, err := s.ownedProfile(ctx, user, profileID)
	if err != nil {
		return nil, err
	}

	profile.Name = input.Name
	profile.Avatar = input.Avatar
	if input.MaturityRating != "" {
		profile.MaturityRating = input.MaturityRating
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrProfileNameExists
		}
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) Delete(ctx context.Context, user *domain.User, profileID uint) error {
	if _, err := s.ownedProfile(ctx, user, profileID); err != nil {
		return err
	}
	return s.profileRepo.Delete(ctx, profileID)
}

// ownedProfile loads a profile and hides other users' profiles behind the
// same not-found error as missing ones.
func (s *ProfileService) ownedProfile(ctx context.Context, user *domain.User, profileID uint) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	if profile.UserID != user.ID {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}
