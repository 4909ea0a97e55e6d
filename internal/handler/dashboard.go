package handler

import (
	"net/http"

	"github.com/inioluwa/atelier/internal/service"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) Counts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.dashboardService.Counts()
	if err != nil {
		handleError(w, err, http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, counts)
}
