package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/cinestream/backend/internal/api/middleware"
	"github.com/cinestream/backend/internal/payment"
	"github.com/cinestream/backend/internal/service"
)

type SubscriptionHandler struct {
	subscriptionService *service.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

func (h *SubscriptionHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.subscriptionService.Plans(r.Context())
	if err != nil {
		log.Printf("ERROR [subscription.ListPlans]: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, plans)
}

type PlanRequest struct {
	Name         string          `json:"name"`
	PriceCents   int             `json:"priceCents"`
	Currency     string          `json:"currency"`
	QualityLimit string          `json:"qualityLimit"`
	Screens      int             `json:"screens"`
	Features     json.RawMessage `json:"features"`
}

func (h *SubscriptionHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.PriceCents < 0 {
		http.Error(w, "Plan name and a non-negative price are required", http.StatusBadRequest)
		return
	}

	plan, err := h.subscriptionService.CreatePlan(r.Context(), service.PlanInput{
		Name:         req.Name,
		PriceCents:   req.PriceCents,
		Currency:     req.Currency,
		QualityLimit: req.QualityLimit,
		Screens:      req.Screens,
		Features:     req.Features,
	})
	if err != nil {
		if errors.Is(err, service.ErrPlanNameExists) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		log.Printf("ERROR [subscription.CreatePlan]: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, plan)
}

func (h *SubscriptionHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r.Context())

	planID, err := pathID(r, "planID")
	if err != nil {
		http.Error(w, "Invalid plan id", http.StatusBadRequest)
		return
	}

	sub, err := h.subscriptionService.Subscribe(r.Context(), user, planID)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			http.Error(w, "Plan not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [subscription.Subscribe]: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, sub)
}

type PaymentRequest struct {
	Provider    string `json:"provider"`
	AmountCents int    `json:"amountCents"`
	Currency    string `json:"currency"`
	Token       string `json:"token"`
}

func (h *SubscriptionHandler) Pay(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r.Context())

	var req PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Provider == "" || req.AmountCents < 0 {
		http.Error(w, "Provider and a non-negative amount are required", http.StatusBadRequest)
		return
	}

	record, err := h.subscriptionService.Pay(r.Context(), user, service.PayInput{
		Provider:    req.Provider,
		AmountCents: req.AmountCents,
		Currency:    req.Currency,
		Token:       req.Token,
	})
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrUnknownProvider):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrPaymentFailed):
			http.Error(w, "Payment failed", http.StatusPaymentRequired)
		default:
			log.Printf("ERROR [subscription.Pay]: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, record)
}

func (h *SubscriptionHandler) MySubscriptions(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r.Context())

	subs, err := h.subscriptionService.MySubscriptions(r.Context(), user)
	if err != nil {
		log.Printf("ERROR [subscription.MySubscriptions]: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, subs)
}
