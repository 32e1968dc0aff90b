package handlers

import (
	"log"
	"net/http"

	"github.com/cinestream/backend/internal/service"
)

type AdminHandler struct {
	adminService *service.AdminService
}

func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

func (h *AdminHandler) AnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.adminService.Summary(r.Context())
	if err != nil {
		log.Printf("ERROR [admin.AnalyticsSummary]: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
