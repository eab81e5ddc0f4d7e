package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Abdelrahman0111/managment-arkaan-issues-bookings/internal/httpx"
	"github.com/Abdelrahman0111/managment-arkaan-issues-bookings/internal/models"
	"github.com/Abdelrahman0111/managment-arkaan-issues-bookings/internal/services"
)

type IssueHandler struct {
	Svc *services.LedgerService
}

func NewIssueHandler(svc *services.LedgerService) *IssueHandler {
	return &IssueHandler{Svc: svc}
}

// FormAgents: GET /issues – the agent-name list the add-issue form needs.
func (h *IssueHandler) FormAgents(w http.ResponseWriter, r *http.Request) {
	agents, err := h.Svc.Agents(r.Context())
	if err != nil {
		if degraded(err) {
			httpx.Success(w, http.StatusOK, map[string]any{"agents": []string{}})
			return
		}
		writeError(w, err)
		return
	}
	names := make([]string, 0, len(agents))
	for _, a := range agents {
		names = append(names, a.Name)
	}
	httpx.Success(w, http.StatusOK, map[string]any{"agents": names})
}

// Create: POST /add_issue
func (h *IssueHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req services.CreateIssueInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", "", nil)
		return
	}
	issue, err := h.Svc.CreateIssue(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	httpx.Success(w, http.StatusOK, map[string]any{"issue": issue})
}

// List: GET /view_issues
func (h *IssueHandler) List(w http.ResponseWriter, r *http.Request) {
	issues, err := h.Svc.Issues(r.Context())
	if err != nil {
		if degraded(err) {
			httpx.Success(w, http.StatusOK, map[string]any{"issues": []models.Issue{}})
			return
		}
		writeError(w, err)
		return
	}
	httpx.Success(w, http.StatusOK, map[string]any{"issues": issues})
}
