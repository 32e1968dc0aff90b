package postgres

import (
	"context"

	"github.com/cinestream/backend/internal/domain"
	"gorm.io/gorm"
)

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *reviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *domain.RatingReview) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) GetByID(ctx context.Context, id uint) (*domain.RatingReview, error) {
	var review domain.RatingReview
	err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) GetByProfileAndContent(ctx context.Context, profileID, contentID uint) (*domain.RatingReview, error) {
	var review domain.RatingReview
	err := r.db.WithContext(ctx).
		First(&review, "profile_id = ? AND content_id = ?", profileID, contentID).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) GetByContentID(ctx context.Context, contentID uint) ([]*domain.RatingReview, error) {
	var reviews []*domain.RatingReview
	err := r.db.WithContext(ctx).
		Where("content_id = ?", contentID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *domain.RatingReview) error {
	return r.db.WithContext(ctx).Save(review).Error
}

func (r *reviewRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.RatingReview{}, id).Error
}
