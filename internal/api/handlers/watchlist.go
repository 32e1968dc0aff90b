package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/cinestream/backend/internal/api/middleware"
	"github.com/cinestream/backend/internal/service"
)

type WatchlistHandler struct {
	watchlistService *service.WatchlistService
}

func NewWatchlistHandler(watchlistService *service.WatchlistService) *WatchlistHandler {
	return &WatchlistHandler{watchlistService: watchlistService}
}

func (h *WatchlistHandler) List(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r.Context())

	profileID, err := pathID(r, "profileID")
	if err != nil {
		http.Error(w, "Invalid profile id", http.StatusBadRequest)
		return
	}

	items, err := h.watchlistService.List(r.Context(), user, profileID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			http.Error(w, "Profile not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [watchlist.List]: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *WatchlistHandler) Add(w http.ResponseWriter, r *http.Request) {
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

	item, err := h.watchlistService.Add(r.Context(), user, profileID, contentID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileNotFound):
			http.Error(w, "Profile not found", http.StatusNotFound)
		case errors.Is(err, service.ErrContentNotFound):
			http.Error(w, "Content not found", http.StatusNotFound)
		default:
			log.Printf("ERROR [watchlist.Add]: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (h *WatchlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
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

	if err := h.watchlistService.Remove(r.Context(), user, profileID, contentID); err != nil {
		switch {
		case errors.Is(err, service.ErrProfileNotFound):
			http.Error(w, "Profile not found", http.StatusNotFound)
		case errors.Is(err, service.ErrWatchlistItemNotFound):
			http.Error(w, "Item not found", http.StatusNotFound)
		default:
			log.Printf("ERROR [watchlist.Remove]: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
