package postgres

import (
	"context"

	"github.com/cinestream/backend/internal/domain"
	"gorm.io/gorm"
)

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *subscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Create(ctx context.Context, sub *domain.Subscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *subscriptionRepository) GetByUserID(ctx context.Context, userID uint) ([]*domain.Subscription, error) {
	var subs []*domain.Subscription
	err := r.db.WithContext(ctx).
		Preload("Plan").
		Where("user_id = ?", userID).
		Order("start_at DESC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *subscriptionRepository) CancelActiveByUserID(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Model(&domain.Subscription{}).
		Where("user_id = ? AND status = ?", userID, domain.SubscriptionActive).
		Update("status", domain.SubscriptionCancelled).Error
}

func (r *subscriptionRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Subscription{}).
		Where("status = ?", domain.SubscriptionActive).
		Count(&count).Error
	return count, err
}
