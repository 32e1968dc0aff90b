package service

import (
	"context"
	"errors"
	"time"

	"github.com/cinestream/backend/internal/config"
	"github.com/cinestream/backend/internal/domain"
	"github.com/cinestream/backend/internal/payment"
	"github.com/cinestream/backend/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrPlanNotFound   = errors.New("plan not found")
	ErrPlanNameExists = errors.New("plan name already exists")
	ErrPaymentFailed  = errors.New("payment failed")
)

type SubscriptionService struct {
	planRepo    repository.PlanRepository
	subRepo     repository.SubscriptionRepository
	paymentRepo repository.PaymentRepository
	cfg         *config.Config
}

func NewSubscriptionService(planRepo repository.PlanRepository, subRepo repository.SubscriptionRepository, paymentRepo repository.PaymentRepository, cfg *config.Config) *SubscriptionService {
	return &SubscriptionService{
		planRepo:    planRepo,
		subRepo:     subRepo,
		paymentRepo: paymentRepo,
		cfg:         cfg,
	}
}

func (s *SubscriptionService) Plans(ctx context.Context) ([]*domain.SubscriptionPlan, error) {
	return s.planRepo.ListActive(ctx)
}

type PlanInput struct {
	Name         string
	PriceCents   int
	Currency     string
	QualityLimit string
	Screens      int
	Features     []byte
}

func (s *SubscriptionService) CreatePlan(ctx context.Context, input PlanInput) (*domain.SubscriptionPlan, error) {
	if existing, err := s.planRepo.GetByName(ctx, input.Name); err == nil && existing != nil {
		return nil, ErrPlanNameExists
	}

	plan := &domain.SubscriptionPlan{
		Name:         input.Name,
		PriceCents:   input.PriceCents,
		Currency:     input.Currency,
		QualityLimit: input.QualityLimit,
		Screens:      input.Screens,
		Features:     input.Features,
		IsActive:     true,
	}
	if plan.Currency == "" {
		plan.Currency = "USD"
	}
	if plan.QualityLimit == "" {
		plan.QualityLimit = "1080p"
	}
	if plan.Screens == 0 {
		plan.Screens = 1
	}

	if err := s.planRepo.Create(ctx, plan); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrPlanNameExists
		}
		return nil, err
	}
	return plan, nil
}

// Subscribe moves the user onto the plan, cancelling any previously active
// subscriptions so at most one is active per user.
func (s *SubscriptionService) Subscribe(ctx context.Context, user *domain.User, planID uint) (*domain.Subscription, error) {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	if !plan.IsActive {
		return nil, ErrPlanNotFound
	}

	if err := s.subRepo.CancelActiveByUserID(ctx, user.ID); err != nil {
		return nil, err
	}

	sub := &domain.Subscription{
		UserID:  user.ID,
		PlanID:  &plan.ID,
		Plan:    plan,
		Status:  domain.SubscriptionActive,
		StartAt: time.Now(),
	}
	if err := s.subRepo.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *SubscriptionService) MySubscriptions(ctx context.Context, user *domain.User) ([]*domain.Subscription, error) {
	return s.subRepo.GetByUserID(ctx, user.ID)
}

type PayInput struct {
	Provider    string
	AmountCents int
	Currency    string
	Token       string
}

// Pay charges through the named provider and records the outcome. A declined
// charge is persisted with status "failed" and returned with ErrPaymentFailed
// so the handler can answer with a payment-required response.
func (s *SubscriptionService) Pay(ctx context.Context, user *domain.User, input PayInput) (*domain.Payment, error) {
	provider, err := payment.New(input.Provider, s.cfg)
	if err != nil {
		return nil, err
	}

	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}

	status, ref := provider.Charge(input.AmountCents, currency, input.Token)

	record := &domain.Payment{
		UserID:      user.ID,
		AmountCents: input.AmountCents,
		Currency:    currency,
		Provider:    input.Provider,
		ProviderRef: ref,
		Status:      domain.PaymentStatus(status),
		CreatedAt:   time.Now(),
	}
	if err := s.paymentRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	if status != payment.StatusSucceeded {
		return record, ErrPaymentFailed
	}
	return record, nil
}
