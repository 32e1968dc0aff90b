package domain

import "time"

type ContentCategory string

const (
	CategoryTrending    ContentCategory = "Trending"
	CategoryLatest      ContentCategory = "Latest"
	CategoryOriginals   ContentCategory = "Originals"
	CategoryRecommended ContentCategory = "Recommended"
)

type Content struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	Title           string          `json:"title" gorm:"size:255;not null;index"`
	Description     string          `json:"description" gorm:"type:text"`
	ReleaseYear     int             `json:"releaseYear"`
	DurationMinutes int             `json:"durationMinutes"`
	Genre           string          `json:"genre" gorm:"size:128;index"`
	Language        string          `json:"language" gorm:"size:64;index"`
	Category        ContentCategory `json:"category" gorm:"size:32;index"`
	IsPremium       bool            `json:"isPremium" gorm:"default:false"`
	VideoURL        string          `json:"videoUrl" gorm:"size:1024"`
	ThumbnailURL    string          `json:"thumbnailUrl" gorm:"size:1024"`
	CreatedAt       time.Time       `json:"createdAt"`
}

type WatchlistItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProfileID uint      `json:"profileId" gorm:"not null;index;uniqueIndex:uq_watchlist_profile_content"`
	ContentID uint      `json:"contentId" gorm:"not null;index;uniqueIndex:uq_watchlist_profile_content"`
	Content   *Content  `json:"content,omitempty" gorm:"foreignKey:ContentID"`
	CreatedAt time.Time `json:"createdAt"`
}

type RatingReview struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ProfileID  uint      `json:"profileId" gorm:"not null;index;uniqueIndex:uq_review_profile_content"`
	ContentID  uint      `json:"contentId" gorm:"not null;index;uniqueIndex:uq_review_profile_content"`
	Rating     int       `json:"rating" gorm:"not null"`
	ReviewText string    `json:"reviewText" gorm:"type:text"`
	CreatedAt  time.Time `json:"createdAt"`
}
