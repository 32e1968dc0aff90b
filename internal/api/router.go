package api

import (
	"net/http"

	"github.com/cinestream/backend/internal/api/handlers"
	"github.com/cinestream/backend/internal/api/middleware"
	"github.com/cinestream/backend/internal/config"
	"github.com/cinestream/backend/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS(cfg.CORSAllowOrigins))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	contentHandler := handlers.NewContentHandler(services.Content)
	profileHandler := handlers.NewProfileHandler(services.Profile)
	watchlistHandler := handlers.NewWatchlistHandler(services.Watchlist)
	reviewHandler := handlers.NewReviewHandler(services.Review)
	subscriptionHandler := handlers.NewSubscriptionHandler(services.Subscription)
	streamingHandler := handlers.NewStreamingHandler(services.Streaming)
	adminHandler := handlers.NewAdminHandler(services.Admin)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public auth routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		// Public catalog routes
		r.Get("/content", contentHandler.List)
		r.Get("/content/{id}", contentHandler.Get)
		r.Get("/content/{id}/reviews", reviewHandler.ListForContent)
		r.Get("/subscriptions/plans", subscriptionHandler.ListPlans)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))

			r.Get("/users/me", authHandler.Me)

			// Profile routes
			r.Route("/profiles", func(r chi.Router) {
				r.Get("/", profileHandler.List)
				r.Post("/", profileHandler.Create)
				r.Put("/{id}", profileHandler.Update)
				r.Delete("/{id}", profileHandler.Delete)
			})

			// Watchlist routes
			r.Route("/watchlist/{profileID}", func(r chi.Router) {
				r.Get("/", watchlistHandler.List)
				r.Post("/add/{contentID}", watchlistHandler.Add)
				r.Delete("/remove/{contentID}", watchlistHandler.Remove)
			})

			// Review routes
			r.Post("/reviews/{profileID}/{contentID}", reviewHandler.Create)
			r.Put("/reviews/{id}", reviewHandler.Update)
			r.Delete("/reviews/{id}", reviewHandler.Delete)

			// Subscription routes
			r.Route("/subscriptions", func(r chi.Router) {
				r.Post("/subscribe/{planID}", subscriptionHandler.Subscribe)
				r.Post("/pay", subscriptionHandler.Pay)
				r.Get("/me", subscriptionHandler.MySubscriptions)
			})

			// Streaming
			r.Get("/stream/{contentID}", streamingHandler.Get)

			// Admin routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Post("/content", contentHandler.Create)
				r.Put("/content/{id}", contentHandler.Update)
				r.Delete("/content/{id}", contentHandler.Delete)
				r.Post("/subscriptions/plans", subscriptionHandler.CreatePlan)
				r.Get("/admin/analytics/summary", adminHandler.AnalyticsSummary)
			})
		})
	})

	return r
}
