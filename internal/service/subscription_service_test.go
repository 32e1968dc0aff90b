package service_test

import (
	"context"
	"testing"

	"github.com/cinestream/backend/internal/domain"
	"github.com/cinestream/backend/internal/payment"
	"github.com/cinestream/backend/internal/repository/postgres"
	"github.com/cinestream/backend/internal/service"
	"github.com/cinestream/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionService_Subscribe(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	subService := service.NewSubscriptionService(repos.Plan, repos.Subscription, repos.Payment, cfg)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().WithEmail("subscriber@example.com").Build(t, testDB.DB)
	basic := testutil.CreatePlan(t, testDB.DB, "Basic", 499)
	premium := testutil.CreatePlan(t, testDB.DB, "Premium", 1499)

	t.Run("unknown plan", func(t *testing.T) {
		_, err := subService.Subscribe(ctx, user, 999999)
		assert.ErrorIs(t, err, service.ErrPlanNotFound)
	})

	t.Run("subscribing cancels the previous active subscription", func(t *testing.T) {
		first, err := subService.Subscribe(ctx, user, basic.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.SubscriptionActive, first.Status)

		second, err := subService.Subscribe(ctx, user, premium.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.SubscriptionActive, second.Status)

		subs, err := subService.MySubscriptions(ctx, user)
		require.NoError(t, err)
		require.Len(t, subs, 2)

		var activeCount int
		for _, sub := range subs {
			if sub.Status == domain.SubscriptionActive {
				activeCount++
				require.NotNil(t, sub.PlanID)
				assert.Equal(t, premium.ID, *sub.PlanID)
			}
		}
		assert.Equal(t, 1, activeCount)
	})
}

func TestSubscriptionService_CreatePlan(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	subService := service.NewSubscriptionService(repos.Plan, repos.Subscription, repos.Payment, cfg)
	ctx := context.Background()

	plan, err := subService.CreatePlan(ctx, service.PlanInput{
		Name:       "Family",
		PriceCents: 1999,
		Features:   []byte(`["4 screens"]`),
	})
	require.NoError(t, err)
	assert.Equal(t, "USD", plan.Currency)
	assert.Equal(t, "1080p", plan.QualityLimit)
	assert.Equal(t, 1, plan.Screens)

	_, err = subService.CreatePlan(ctx, service.PlanInput{Name: "Family", PriceCents: 2999})
	assert.ErrorIs(t, err, service.ErrPlanNameExists)
}

func TestSubscriptionService_Pay(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	subService := service.NewSubscriptionService(repos.Plan, repos.Subscription, repos.Payment, cfg)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().WithEmail("payer@example.com").Build(t, testDB.DB)

	t.Run("unknown provider", func(t *testing.T) {
		_, err := subService.Pay(ctx, user, service.PayInput{Provider: "bitcoin", AmountCents: 999, Token: "tok_x"})
		assert.ErrorIs(t, err, payment.ErrUnknownProvider)
	})

	t.Run("successful charge is recorded", func(t *testing.T) {
		record, err := subService.Pay(ctx, user, service.PayInput{
			Provider:    "stripe",
			AmountCents: 999,
			Token:       "tok_abcdef123456",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentSucceeded, record.Status)
		assert.NotEmpty(t, record.ProviderRef)
		assert.Equal(t, "USD", record.Currency)
	})

	t.Run("declined charge is recorded and surfaced", func(t *testing.T) {
		record, err := subService.Pay(ctx, user, service.PayInput{
			Provider:    "stripe",
			AmountCents: 999,
			Token:       "bad_token",
		})
		assert.ErrorIs(t, err, service.ErrPaymentFailed)
		require.NotNil(t, record)
		assert.Equal(t, domain.PaymentFailed, record.Status)

		payments, err := repos.Payment.GetByUserID(ctx, user.ID)
		require.NoError(t, err)
		assert.Len(t, payments, 2)
	})
}
