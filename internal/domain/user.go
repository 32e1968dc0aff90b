package domain

import "time"

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Phone        *string   `json:"phone" gorm:"size:32;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	IsActive     bool      `json:"isActive" gorm:"default:true"`
	IsAdmin      bool      `json:"isAdmin" gorm:"default:false"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Profile is one of the viewing profiles under a user account. Profile names
// are unique per account, not globally.
type Profile struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	UserID         uint   `json:"userId" gorm:"not null;index;uniqueIndex:uq_profile_user_name"`
	Name           string `json:"name" gorm:"size:100;not null;uniqueIndex:uq_profile_user_name"`
	Avatar         string `json:"avatar" gorm:"size:512"`
	MaturityRating string `json:"maturityRating" gorm:"size:32;default:PG-13"`
}
