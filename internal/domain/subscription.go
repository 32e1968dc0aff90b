package domain

import (
	"time"

	"gorm.io/datatypes"
)

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
	SubscriptionExpired   SubscriptionStatus = "expired"
)

type PaymentStatus string

const (
	PaymentSucceeded PaymentStatus = "succeeded"
	PaymentFailed    PaymentStatus = "failed"
	PaymentPending   PaymentStatus = "pending"
)

type SubscriptionPlan struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name" gorm:"size:64;uniqueIndex;not null"`
	PriceCents   int            `json:"priceCents" gorm:"not null"`
	Currency     string         `json:"currency" gorm:"size:8;default:USD;not null"`
	QualityLimit string         `json:"qualityLimit" gorm:"size:16;default:1080p;not null"`
	Screens      int            `json:"screens" gorm:"default:1;not null"`
	Features     datatypes.JSON `json:"features" gorm:"type:jsonb"` // ["HDR", "Downloads"]
	IsActive     bool           `json:"isActive" gorm:"default:true;not null"`
}

type Subscription struct {
	ID      uint               `json:"id" gorm:"primaryKey"`
	UserID  uint               `json:"userId" gorm:"not null;index"`
	PlanID  *uint              `json:"planId"`
	Plan    *SubscriptionPlan  `json:"plan,omitempty" gorm:"foreignKey:PlanID"`
	Status  SubscriptionStatus `json:"status" gorm:"size:32;default:active;not null"`
	StartAt time.Time          `json:"startAt" gorm:"not null"`
	EndAt   *time.Time         `json:"endAt"`
}

type Payment struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	UserID      uint          `json:"userId" gorm:"not null;index"`
	AmountCents int           `json:"amountCents" gorm:"not null;check:amount_cents >= 0"`
	Currency    string        `json:"currency" gorm:"size:8;default:USD;not null"`
	Provider    string        `json:"provider" gorm:"size:32;not null"`
	ProviderRef string        `json:"providerRef" gorm:"size:128"`
	Status      PaymentStatus `json:"status" gorm:"size:32;default:succeeded;not null"`
	CreatedAt   time.Time     `json:"createdAt"`
}
