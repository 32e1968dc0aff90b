package service

import (
	"context"

	"github.com/cinestream/backend/internal/repository"
)

type AdminService struct {
	userRepo    repository.UserRepository
	contentRepo repository.ContentRepository
	subRepo     repository.SubscriptionRepository
	paymentRepo repository.PaymentRepository
}

func NewAdminService(userRepo repository.UserRepository, contentRepo repository.ContentRepository, subRepo repository.SubscriptionRepository, paymentRepo repository.PaymentRepository) *AdminService {
	return &AdminService{
		userRepo:    userRepo,
		contentRepo: contentRepo,
		subRepo:     subRepo,
		paymentRepo: paymentRepo,
	}
}

type AnalyticsSummary struct {
	Users               int64 `json:"users"`
	Content             int64 `json:"content"`
	ActiveSubscriptions int64 `json:"active_subscriptions"`
	RevenueCents        int64 `json:"revenue_cents"`
}

func (s *AdminService) Summary(ctx context.Context) (*AnalyticsSummary, error) {
	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	content, err := s.contentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	activeSubs, err := s.subRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.paymentRepo.SumSucceededCents(ctx)
	if err != nil {
		return nil, err
	}

	return &AnalyticsSummary{
		Users:               users,
		Content:             content,
		ActiveSubscriptions: activeSubs,
		RevenueCents:        revenue,
	}, nil
}
