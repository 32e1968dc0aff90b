package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/cinestream/backend/internal/config"
	"github.com/cinestream/backend/internal/domain"
	"github.com/cinestream/backend/internal/repository"
	"github.com/cinestream/backend/internal/token"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthorized covers every token-resolution failure. It is deliberately
	// generic so responses never reveal which check rejected the request.
	ErrUnauthorized       = errors.New("could not validate credentials")
	ErrEmailExists        = errors.New("email already registered")
	ErrPhoneExists        = errors.New("phone already registered")
	ErrAccountConflict    = errors.New("user with provided email/phone already exists")
	ErrUserNotFound       = errors.New("user not found")
)

// HashPassword hashes a plaintext password with bcrypt at the default cost.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether plaintext matches the stored digest. A
// malformed or foreign-format digest is a verification failure, never a panic.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

type AuthService struct {
	userRepo repository.UserRepository
	codec    *token.Codec
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, codec *token.Codec, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		codec:    codec,
		cfg:      cfg,
	}
}

type RegisterInput struct {
	Email    string
	Phone    string
	Password string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	// Friendly pre-checks; the unique indexes remain the source of truth
	if existing, err := s.userRepo.GetByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, ErrEmailExists
	}
	if input.Phone != "" {
		if owner, err := s.userRepo.GetByPhone(ctx, input.Phone); err == nil && owner != nil {
			return nil, ErrPhoneExists
		}
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if input.Phone != "" {
		user.Phone = &input.Phone
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Two concurrent registrations can both pass the pre-checks; the
		// constraint violation from the losing insert becomes a conflict.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAccountConflict
		}
		return nil, err
	}

	return user, nil
}

type LoginResult struct {
	User        *domain.User
	AccessToken string
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.codec.Encode(map[string]any{"user_id": user.ID}, 0)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, AccessToken: accessToken}, nil
}

// ResolveToken turns a bearer token into a validated, active user. It is a
// pure function of the token and store state: decode, extract the principal
// id ("user_id" claim preferred, "sub" as fallback), load the user, and
// reject missing or deactivated accounts.
func (s *AuthService) ResolveToken(ctx context.Context, tokenString string) (*domain.User, error) {
	claims, err := s.codec.Decode(tokenString)
	if err != nil {
		return nil, ErrUnauthorized
	}

	userID, ok := principalID(claims)
	if !ok {
		return nil, ErrUnauthorized
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrUnauthorized
	}

	return user, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id uint) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// principalID extracts the numeric user id from token claims. JSON numbers
// decode as float64; a string "sub" must parse as a positive integer.
func principalID(claims map[string]any) (uint, bool) {
	if v, ok := claims["user_id"]; ok {
		if f, ok := v.(float64); ok && f > 0 {
			return uint(f), true
		}
		return 0, false
	}
	if v, ok := claims["sub"]; ok {
		s, ok := v.(string)
		if !ok {
			return 0, false
		}
		id, err := strconv.Atoi(s)
		if err != nil || id <= 0 {
			return 0, false
		}
		return uint(id), true
	}
	return 0, false
}
