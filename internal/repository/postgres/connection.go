package postgres

import (
	"github.com/cinestream/backend/internal/domain"
	"github.com/cinestream/backend/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		// Surface unique-constraint violations as gorm.ErrDuplicatedKey so
		// registration races map to a conflict instead of a raw driver error.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables
	err = db.AutoMigrate(
		&domain.User{},
		&domain.Profile{},
		&domain.Content{},
		&domain.WatchlistItem{},
		&domain.RatingReview{},
		&domain.SubscriptionPlan{},
		&domain.Subscription{},
		&domain.Payment{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:         NewUserRepository(db),
		Profile:      NewProfileRepository(db),
		Content:      NewContentRepository(db),
		Watchlist:    NewWatchlistRepository(db),
		Review:       NewReviewRepository(db),
		Plan:         NewPlanRepository(db),
		Subscription: NewSubscriptionRepository(db),
		Payment:      NewPaymentRepository(db),
	}
}
