package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/cinestream/backend/internal/domain"
	"github.com/cinestream/backend/internal/repository"
	"github.com/cinestream/backend/internal/service"
	"github.com/go-chi/chi/v5"
)

type ContentHandler struct {
	contentService *service.ContentService
}

func NewContentHandler(contentService *service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

type ContentRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	ReleaseYear     int    `json:"releaseYear"`
	DurationMinutes int    `json:"durationMinutes"`
	Genre           string `json:"genre"`
	Language        string `json:"language"`
	Category        string `json:"category"`
	IsPremium       bool   `json:"isPremium"`
	VideoURL        string `json:"videoUrl"`
	ThumbnailURL    string `json:"thumbnailUrl"`
}

func (req ContentRequest) toInput() service.ContentInput {
	return service.ContentInput{
		Title:           req.Title,
		Description:     req.Description,
		ReleaseYear:     req.ReleaseYear,
		DurationMinutes: req.DurationMinutes,
		Genre:           req.Genre,
		Language:        req.Language,
		Category:        domain.ContentCategory(req.Category),
		IsPremium:       req.IsPremium,
		VideoURL:        req.VideoURL,
		ThumbnailURL:    req.ThumbnailURL,
	}
}

func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repository.ContentFilter{
		Query:    query.Get("q"),
		Genre:    query.Get("genre"),
		Language: query.Get("language"),
		Category: query.Get("category"),
	}
	if year := query.Get("release_year"); year != "" {
		if parsed, err := strconv.Atoi(year); err == nil {
			filter.ReleaseYear = parsed
		}
	}

	contents, err := h.contentService.List(r.Context(), filter)
	if err != nil {
		log.Printf("ERROR [content.List]: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, contents)
}

func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid content id", http.StatusBadRequest)
		return
	}

	content, err := h.contentService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			http.Error(w, "Content not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, content)
}

func (h *ContentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	content, err := h.contentService.Create(r.Context(), req.toInput())
	if err != nil {
		if errors.Is(err, domain.ErrEmptyTitle) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("ERROR [content.Create]: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, content)
}

func (h *ContentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid content id", http.StatusBadRequest)
		return
	}

	var req ContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	content, err := h.contentService.Update(r.Context(), id, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContentNotFound):
			http.Error(w, "Content not found", http.StatusNotFound)
		case errors.Is(err, domain.ErrEmptyTitle):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.Printf("ERROR [content.Update]: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, content)
}

func (h *ContentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid content id", http.StatusBadRequest)
		return
	}

	if err := h.contentService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			http.Error(w, "Content not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [content.Delete]: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request, key string) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, key), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
