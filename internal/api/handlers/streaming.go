package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/cinestream/backend/internal/api/middleware"
	"github.com/cinestream/backend/internal/service"
)

type StreamingHandler struct {
	streamingService *service.StreamingService
}

func NewStreamingHandler(streamingService *service.StreamingService) *StreamingHandler {
	return &StreamingHandler{streamingService: streamingService}
}

// Get issues a signed playback URL for the content, gated on entitlement.
func (h *StreamingHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r.Context())

	contentID, err := pathID(r, "contentID")
	if err != nil {
		http.Error(w, "Invalid content id", http.StatusBadRequest)
		return
	}

	grant, err := h.streamingService.StreamURL(r.Context(), user, contentID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContentNotFound):
			http.Error(w, "Content not found", http.StatusNotFound)
		case errors.Is(err, service.ErrSubscriptionRequired):
			http.Error(w, "Subscription required to stream premium content", http.StatusPaymentRequired)
		default:
			log.Printf("ERROR [streaming.Get]: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, grant)
}
