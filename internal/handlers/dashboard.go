package handlers

import (
	"net/http"

	"github.com/Abdelrahman0111/managment-arkaan-issues-bookings/internal/httpx"
	"github.com/Abdelrahman0111/managment-arkaan-issues-bookings/internal/models"
	"github.com/Abdelrahman0111/managment-arkaan-issues-bookings/internal/services"
)

type DashboardHandler struct {
	Svc *services.LedgerService
}

func NewDashboardHandler(svc *services.LedgerService) *DashboardHandler {
	return &DashboardHandler{Svc: svc}
}

// Home: GET / – dashboard stats plus the last 5 issues, most recent first.
// A failed store degrades to an empty dashboard rather than an error.
func (h *DashboardHandler) Home(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Svc.Stats(r.Context())
	if err != nil {
		if degraded(err) {
			httpx.Success(w, http.StatusOK, map[string]any{
				"stats":         services.DashboardStats{},
				"recent_issues": []models.Issue{},
			})
			return
		}
		writeError(w, err)
		return
	}
	recent, err := h.Svc.RecentIssues(r.Context(), 5)
	if err != nil {
		writeError(w, err)
		return
	}
	httpx.Success(w, http.StatusOK, map[string]any{
		"stats":         stats,
		"recent_issues": recent,
	})
}
