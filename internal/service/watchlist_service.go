package service

import (
	"context"
	"errors"
	"time"

	"github.com/cinestream/backend/internal/domain"
	"github.com/cinestream/backend/internal/repository"
	"gorm.io/gorm"
)

var ErrWatchlistItemNotFound = errors.New("watchlist item not found")

type WatchlistService struct {
	watchlistRepo repository.WatchlistRepository
	contentRepo   repository.ContentRepository
	profiles      *ProfileService
}

func NewWatchlistService(watchlistRepo repository.WatchlistRepository, contentRepo repository.ContentRepository, profiles *ProfileService) *WatchlistService {
	return &WatchlistService{
		watchlistRepo: watchlistRepo,
		contentRepo:   contentRepo,
		profiles:      profiles,
	}
}

func (s *WatchlistService) List(ctx context.Context, user *domain.User, profileID uint) ([]*domain.WatchlistItem, error) {
	if _, err := s.profiles.ownedProfile(ctx, user, profileID); err != nil {
		return nil, err
	}
	return s.watchlistRepo.GetByProfileID(ctx, profileID)
}

// Add puts the content on the profile's watchlist. Adding something already
// listed returns the existing item rather than an error.
func (s *WatchlistService) Add(ctx context.Context, user *domain.User, profileID, contentID uint) (*domain.WatchlistItem, error) {
	if _, err := s.profiles.ownedProfile(ctx, user, profileID); err != nil {
		return nil, err
	}
	if _, err := s.contentRepo.GetByID(ctx, contentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}

	if existing, err := s.watchlistRepo.GetByProfileAndContent(ctx, profileID, contentID); err == nil {
		return existing, nil
	}

	item := &domain.WatchlistItem{
		ProfileID: profileID,
		ContentID: contentID,
		CreatedAt: time.Now(),
	}
	if err := s.watchlistRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *WatchlistService) Remove(ctx context.Context, user *domain.User, profileID, contentID uint) error {
	if _, err := s.profiles.ownedProfile(ctx, user, profileID); err != nil {
		return err
	}

	item, err := s.watchlistRepo.GetByProfileAndContent(ctx, profileID, contentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWatchlistItemNotFound
		}
		return err
	}
	return s.watchlistRepo.Delete(ctx, item.ID)
}
