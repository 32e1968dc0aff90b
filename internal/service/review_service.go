package service

import (
	"context"
	"errors"
	"time"

	"github.com/cinestream/backend/internal/domain"
	"github.com/cinestream/backend/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrReviewExists   = errors.New("profile has already reviewed this content")
)

type ReviewService struct {
	reviewRepo  repository.ReviewRepository
	contentRepo repository.ContentRepository
	profiles    *ProfileService
}

func NewReviewService(reviewRepo repository.ReviewRepository, contentRepo repository.ContentRepository, profiles *ProfileService) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		contentRepo: contentRepo,
		profiles:    profiles,
	}
}

type ReviewInput struct {
	Rating     int
	ReviewText string
}

func (s *ReviewService) ListForContent(ctx context.Context, contentID uint) ([]*domain.RatingReview, error) {
	if _, err := s.contentRepo.GetByID(ctx, contentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	return s.reviewRepo.GetByContentID(ctx, contentID)
}

func (s *ReviewService) Create(ctx context.Context, user *domain.User, profileID, contentID uint, input ReviewInput) (*domain.RatingReview, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domain.ErrInvalidRating
	}
	if _, err := s.profiles.ownedProfile(ctx, user, profileID); err != nil {
		return nil, err
	}
	if _, err := s.contentRepo.GetByID(ctx, contentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	if existing, err := s.reviewRepo.GetByProfileAndContent(ctx, profileID, contentID); err == nil && existing != nil {
		return nil, ErrReviewExists
	}

	review := &domain.RatingReview{
		ProfileID:  profileID,
		ContentID:  contentID,
		Rating:     input.Rating,
		ReviewText: input.ReviewText,
		CreatedAt:  time.Now(),
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrReviewExists
		}
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) Update(ctx context.Context, user *domain.User, reviewID uint, input ReviewInput) (*domain.RatingReview, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domain.ErrInvalidRating
	}

	review, err := s.ownedReview(ctx, user, reviewID)
	if err != nil {
		return nil, err
	}

	review.Rating = input.Rating
	review.ReviewText = input.ReviewText
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, user *domain.User, reviewID uint) error {
	review, err := s.ownedReview(ctx, user, reviewID)
	if err != nil {
		return err
	}
	return s.reviewRepo.Delete(ctx, review.ID)
}

func (s *ReviewService) ownedReview(ctx context.Context, user *domain.User, reviewID uint) (*domain.RatingReview, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	if _, err := s.profiles.ownedProfile(ctx, user, review.ProfileID); err != nil {
		return nil, ErrReviewNotFound
	}
	return review, nil
}
