package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Abdelrahman0111/managment-arkaan-issues-bookings/internal/httpx"
	"github.com/Abdelrahman0111/managment-arkaan-issues-bookings/internal/models"
	"github.com/Abdelrahman0111/managment-arkaan-issues-bookings/internal/services"
)

type AgentHandler struct {
	Svc *services.LedgerService
}

func NewAgentHandler(svc *services.LedgerService) *AgentHandler {
	return &AgentHandler{Svc: svc}
}

// List: GET /agents
func (h *AgentHandler) List(w http.ResponseWriter, r *http.Request) {
	agents, err := h.Svc.Agents(r.Context())
	if err != nil {
		if degraded(err) {
			httpx.Success(w, http.StatusOK, map[string]any{"agents": []models.Agent{}})
			return
		}
		writeError(w, err)
		return
	}
	httpx.Success(w, http.StatusOK, map[string]any{"agents": agents})
}

// Add: POST /add_agent {agent_name}
func (h *AgentHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AgentName string `json:"agent_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", "", nil)
		return
	}
	agent, err := h.Svc.AddAgent(r.Context(), req.AgentName)
	if err != nil {
		writeError(w, err)
		return
	}
	httpx.Success(w, http.StatusOK, map[string]any{"agent": agent})
}
