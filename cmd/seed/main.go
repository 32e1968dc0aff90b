// Seeds subscription plans and a demo catalog for local development. Safe to
// run repeatedly: rows are matched by their unique names/titles.
package main

import (
	"log"

	"github.com/cinestream/backend/internal/config"
	"github.com/cinestream/backend/internal/domain"
	"github.com/cinestream/backend/internal/repository/postgres"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	seedPlans(db)
	seedContent(db)

	log.Println("Seed complete")
}

func seedPlans(db *gorm.DB) {
	plans := []domain.SubscriptionPlan{
		{
			Name:         "Basic",
			PriceCents:   499,
			Currency:     "USD",
			QualityLimit: "720p",
			Screens:      1,
			Features:     datatypes.JSON([]byte(`["SD streaming"]`)),
			IsActive:     true,
		},
		{
			Name:         "Standard",
			PriceCents:   999,
			Currency:     "USD",
			QualityLimit: "1080p",
			Screens:      2,
			Features:     datatypes.JSON([]byte(`["HD streaming", "Downloads"]`)),
			IsActive:     true,
		},
		{
			Name:         "Premium",
			PriceCents:   1499,
			Currency:     "USD",
			QualityLimit: "4K",
			Screens:      4,
			Features:     datatypes.JSON([]byte(`["4K streaming", "HDR", "Downloads"]`)),
			IsActive:     true,
		},
	}

	for _, plan := range plans {
		var existing domain.SubscriptionPlan
		if err := db.First(&existing, "name = ?", plan.Name).Error; err == nil {
			continue
		}
		if err := db.Create(&plan).Error; err != nil {
			log.Fatalf("failed to seed plan %q: %v", plan.Name, err)
		}
		log.Printf("seeded plan %q", plan.Name)
	}
}

func seedContent(db *gorm.DB) {
	contents := []domain.Content{
		{
			Title:           "Midnight Harbor",
			Description:     "A detective returns to her hometown port city.",
			ReleaseYear:     2023,
			DurationMinutes: 118,
			Genre:           "Thriller",
			Language:        "English",
			Category:        domain.CategoryTrending,
			IsPremium:       true,
		},
		{
			Title:           "Paper Planets",
			Description:     "An animated journey through a handmade solar system.",
			ReleaseYear:     2024,
			DurationMinutes: 96,
			Genre:           "Animation",
			Language:        "English",
			Category:        domain.CategoryLatest,
			IsPremium:       false,
		},
		{
			Title:           "The Last Transmission",
			Description:     "A radio operator picks up a signal that should not exist.",
			ReleaseYear:     2022,
			DurationMinutes: 132,
			Genre:           "Sci-Fi",
			Language:        "English",
			Category:        domain.CategoryOriginals,
			IsPremium:       true,
		},
	}

	for _, content := range contents {
		var existing domain.Content
		if err := db.First(&existing, "title = ?", content.Title).Error; err == nil {
			continue
		}
		if err := db.Create(&content).Error; err != nil {
			log.Fatalf("failed to seed content %q: %v", content.Title, err)
		}
		log.Printf("seeded content %q", content.Title)
	}
}
