package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/cinestream/backend/internal/api/middleware"
	"github.com/cinestream/backend/internal/domain"
	"github.com/cinestream/backend/internal/service"
)

type ReviewHandler struct {
	reviewService *service.ReviewService
}

func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

type ReviewRequest struct {
	Rating     int    `json:"rating"`
	ReviewText string `json:"reviewText"`
}

func (h *ReviewHandler) ListForContent(w http.ResponseWriter, r *http.Request) {
	contentID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid content id", http.StatusBadRequest)
		return
	}

	reviews, err := h.reviewService.ListForContent(r.Context(), contentID)
	if err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			http.Error(w, "Content not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [review.ListForContent]: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, reviews)
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r.Context())

	profileID, err := pathID(r, "profileID")
	if err != nil {
		http.Error(w, "Invalid profile id", http.StatusBadRequest)
		return
	}
	contentID, err := pathID(r, "contentID")
	if err != nil {
		http.Error(w, "Invalid content id", http.StatusBadRequest)
		return
	}

	var req ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	review, err := h.reviewService.Create(r.Context(), user, profileID, contentID, service.ReviewInput{
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRating):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrProfileNotFound):
			http.Error(w, "Profile not found", http.StatusNotFound)
		case errors.Is(err, service.ErrContentNotFound):
			http.Error(w, "Content not found", http.StatusNotFound)
		case errors.Is(err, service.ErrReviewExists):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			log.Printf("ERROR [review.Create]: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, review)
}

func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r.Context())

	reviewID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid review id", http.StatusBadRequest)
		return
	}

	var req ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	review, err := h.reviewService.Update(r.Context(), user, reviewID, service.ReviewInput{
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRating):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrReviewNotFound):
			http.Error(w, "Review not found", http.StatusNotFound)
		default:
			log.Printf("ERROR [review.Update]: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, review)
}

func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r.Context())

	reviewID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid review id", http.StatusBadRequest)
		return
	}

	if err := h.reviewService.Delete(r.Context(), user, reviewID); err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			http.Error(w, "Review not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [review.Delete]: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
