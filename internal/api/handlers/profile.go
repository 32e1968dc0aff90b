package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/cinestream/backend/internal/api/middleware"
	"github.com/cinestream/backend/internal/service"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

type ProfileRequest struct {
	Name           string `json:"name"`
	Avatar         string `json:"avatar"`
	MaturityRating string `json:"maturityRating"`
}

func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r.Context())

	profiles, err := h.profileService.List(r.Context(), user)
	if err != nil {
		log.Printf("ERROR [profile.List]: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, profiles)
}

func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r.Context())

	var req ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "Profile name is required", http.StatusBadRequest)
		return
	}

	profile, err := h.profileService.Create(r.Context(), user, service.ProfileInput{
		Name:           req.Name,
		Avatar:         req.Avatar,
		MaturityRating: req.MaturityRating,
	})
	if err != nil {
		if errors.Is(err, service.ErrProfileNameExists) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		log.Printf("ERROR [profile.Create]: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, profile)
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r.Context())

	profileID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid profile id", http.StatusBadRequest)
		return
	}

	var req ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "Profile name is required", http.StatusBadRequest)
		return
	}

	profile, err := h.profileService.Update(r.Context(), user, profileID, service.ProfileInput{
		Name:           req.Name,
		Avatar:         req.Avatar,
		MaturityRating: req.MaturityRating,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileNotFound):
			http.Error(w, "Profile not found", http.StatusNotFound)
		case errors.Is(err, service.ErrProfileNameExists):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			log.Printf("ERROR [profile.Update]: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r.Context())

	profileID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid profile id", http.StatusBadRequest)
		return
	}

	if err := h.profileService.Delete(r.Context(), user, profileID); err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			http.Error(w, "Profile not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [profile.Delete]: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
