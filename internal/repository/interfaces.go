package repository

import (
	"context"

	"github.com/cinestream/backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	Count(ctx context.Context) (int64, error)
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id uint) (*domain.Profile, error)
	GetByUserID(ctx context.Context, userID uint) ([]*domain.Profile, error)
	GetByUserAndName(ctx context.Context, userID uint, name string) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
	Delete(ctx context.Context, id uint) error
}

// ContentFilter narrows catalog listings; zero values mean "no filter".
type ContentFilter struct {
	Query       string
	Genre       string
	Language    string
	Category    string
	ReleaseYear int
}

type ContentRepository interface {
	Create(ctx context.Context, content *domain.Content) error
	GetByID(ctx context.Context, id uint) (*domain.Content, error)
	List(ctx context.Context, filter ContentFilter) ([]*domain.Content, error)
	Update(ctx context.Context, content *domain.Content) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type WatchlistRepository interface {
	Create(ctx context.Context, item *domain.WatchlistItem) error
	GetByProfileID(ctx context.Context, profileID uint) ([]*domain.WatchlistItem, error)
	GetByProfileAndContent(ctx context.Context, profileID, contentID uint) (*domain.WatchlistItem, error)
	Delete(ctx context.Context, id uint) error
}

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.RatingReview) error
	GetByID(ctx context.Context, id uint) (*domain.RatingReview, error)
	GetByProfileAndContent(ctx context.Context, profileID, contentID uint) (*domain.RatingReview, error)
	GetByContentID(ctx context.Context, contentID uint) ([]*domain.RatingReview, error)
	Update(ctx context.Context, review *domain.RatingReview) error
	Delete(ctx context.Context, id uint) error
}

type PlanRepository interface {
	Create(ctx context.Context, plan *domain.SubscriptionPlan) error
	GetByID(ctx context.Context, id uint) (*domain.SubscriptionPlan, error)
	GetByName(ctx context.Context, name string) (*domain.SubscriptionPlan, error)
	ListActive(ctx context.Context) ([]*domain.SubscriptionPlan, error)
}

type SubscriptionRepository interface {
	Create(ctx context.Context, sub *domain.Subscription) error
	GetByUserID(ctx context.Context, userID uint) ([]*domain.Subscription, error)
	CancelActiveByUserID(ctx context.Context, userID uint) error
	CountActive(ctx context.Context) (int64, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	GetByUserID(ctx context.Context, userID uint) ([]*domain.Payment, error)
	SumSucceededCents(ctx context.Context) (int64, error)
}

type Repositories struct {
	User         UserRepository
	Profile      ProfileRepository
	Content      ContentRepository
	Watchlist    WatchlistRepository
	Review       ReviewRepository
	Plan         PlanRepository
	Subscription SubscriptionRepository
	Payment      PaymentRepository
}
