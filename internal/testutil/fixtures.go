package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/cinestream/backend/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	email    string
	phone    string
	password string
	active   bool
	admin    bool
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		email:    fmt.Sprintf("testuser_%s@example.com", uuid.New().String()[:8]),
		password: "testpassword123",
		active:   true,
	}
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPhone sets the phone number
func (b *UserBuilder) WithPhone(phone string) *UserBuilder {
	b.phone = phone
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Inactive marks the account as deactivated
func (b *UserBuilder) Inactive() *UserBuilder {
	b.active = false
	return b
}

// AsAdmin grants the admin flag
func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.admin = true
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		IsActive:     b.active,
		IsAdmin:      b.admin,
		CreatedAt:    time.Now(),
	}
	if b.phone != "" {
		user.Phone = &b.phone
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// TokenResponse matches the API login response
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// BuildAndAuthenticate creates a user via the API, logs in, and returns the
// user and access token
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	regBody, _ := json.Marshal(map[string]string{
		"email":    b.email,
		"phone":    b.phone,
		"password": b.password,
	})

	resp, err := http.Post(ts.APIURL("/auth/register"), "application/json", bytes.NewBuffer(regBody))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("unexpected register status code: %d", resp.StatusCode)
	}

	var user domain.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		t.Fatalf("failed to decode register response: %v", err)
	}

	loginBody, _ := json.Marshal(map[string]string{
		"email":    b.email,
		"password": b.password,
	})

	loginResp, err := http.Post(ts.APIURL("/auth/login"), "application/json", bytes.NewBuffer(loginBody))
	if err != nil {
		t.Fatalf("failed to login: %v", err)
	}
	defer loginResp.Body.Close()

	if loginResp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected login status code: %d", loginResp.StatusCode)
	}

	var tokenResp TokenResponse
	if err := json.NewDecoder(loginResp.Body).Decode(&tokenResp); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}

	return &user, tokenResp.AccessToken
}

// ContentBuilder creates catalog entries with a builder pattern
type ContentBuilder struct {
	title    string
	premium  bool
	videoURL string
}

// NewContentBuilder creates a new ContentBuilder with default values
func NewContentBuilder() *ContentBuilder {
	return &ContentBuilder{
		title: fmt.Sprintf("Test Title %s", uuid.New().String()[:8]),
	}
}

// WithTitle sets the title
func (b *ContentBuilder) WithTitle(title string) *ContentBuilder {
	b.title = title
	return b
}

// Premium marks the content as premium
func (b *ContentBuilder) Premium() *ContentBuilder {
	b.premium = true
	return b
}

// WithVideoURL sets the stored playback base URL
func (b *ContentBuilder) WithVideoURL(videoURL string) *ContentBuilder {
	b.videoURL = videoURL
	return b
}

// Build creates the content row in the database
func (b *ContentBuilder) Build(t *testing.T, db *gorm.DB) *domain.Content {
	t.Helper()

	content := &domain.Content{
		Title:     b.title,
		Genre:     "Drama",
		Language:  "English",
		Category:  domain.CategoryTrending,
		IsPremium: b.premium,
		VideoURL:  b.videoURL,
		CreatedAt: time.Now(),
	}

	if err := db.Create(content).Error; err != nil {
		t.Fatalf("failed to create content: %v", err)
	}

	return content
}

// CreatePlan inserts a subscription plan
func CreatePlan(t *testing.T, db *gorm.DB, name string, priceCents int) *domain.SubscriptionPlan {
	t.Helper()

	plan := &domain.SubscriptionPlan{
		Name:         name,
		PriceCents:   priceCents,
		Currency:     "USD",
		QualityLimit: "1080p",
		Screens:      2,
		IsActive:     true,
	}
	if err := db.Create(plan).Error; err != nil {
		t.Fatalf("failed to create plan: %v", err)
	}
	return plan
}

// Subscribe inserts a subscription row with the given status for the user
func Subscribe(t *testing.T, db *gorm.DB, user *domain.User, plan *domain.SubscriptionPlan, status domain.SubscriptionStatus) *domain.Subscription {
	t.Helper()

	sub := &domain.Subscription{
		UserID:  user.ID,
		PlanID:  &plan.ID,
		Status:  status,
		StartAt: time.Now(),
	}
	if err := db.Create(sub).Error; err != nil {
		t.Fatalf("failed to create subscription: %v", err)
	}
	return sub
}
