package postgres

import (
	"context"

	"github.com/cinestream/backend/internal/domain"
	"gorm.io/gorm"
)

type watchlistRepository struct {
	db *gorm.DB
}

func NewWatchlistRepository(db *gorm.DB) *watchlistRepository {
	return &watchlistRepository{db: db}
}

func (r *watchlistRepository) Create(ctx context.Context, item *domain.WatchlistItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *watchlistRepository) GetByProfileID(ctx context.Context, profileID uint) ([]*domain.WatchlistItem, error) {
	var items []*domain.WatchlistItem
	err := r.db.WithContext(ctx).
		Preload("Content").
		Where("profile_id = ?", profileID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *watchlistRepository) GetByProfileAndContent(ctx context.Context, profileID, contentID uint) (*domain.WatchlistItem, error) {
	var item domain.WatchlistItem
	err := r.db.WithContext(ctx).
		First(&item, "profile_id = ? AND content_id = ?", profileID, contentID).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *watchlistRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.WatchlistItem{}, id).Error
}
