package service

import (
	"github.com/cinestream/backend/internal/config"
	"github.com/cinestream/backend/internal/repository"
	"github.com/cinestream/backend/internal/token"
)

type Services struct {
	Auth         *AuthService
	Content      *ContentService
	Profile      *ProfileService
	Watchlist    *WatchlistService
	Review       *ReviewService
	Subscription *SubscriptionService
	Streaming    *StreamingService
	Admin        *AdminService
}

func NewServices(repos *repository.Repositories, codec *token.Codec, cfg *config.Config) *Services {
	profiles := NewProfileService(repos.Profile)

	return &Services{
		Auth:         NewAuthService(repos.User, codec, cfg),
		Content:      NewContentService(repos.Content),
		Profile:      profiles,
		Watchlist:    NewWatchlistService(repos.Watchlist, repos.Content, profiles),
		Review:       NewReviewService(repos.Review, repos.Content, profiles),
		Subscription: NewSubscriptionService(repos.Plan, repos.Subscription, repos.Payment, cfg),
		Streaming:    NewStreamingService(repos.Content, repos.Subscription, codec),
		Admin:        NewAdminService(repos.User, repos.Content, repos.Subscription, repos.Payment),
	}
}
