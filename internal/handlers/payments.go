package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Abdelrahman0111/managment-arkaan-issues-bookings/internal/httpx"
	"github.com/Abdelrahman0111/managment-arkaan-issues-bookings/internal/models"
	"github.com/Abdelrahman0111/managment-arkaan-issues-bookings/internal/services"
)

type PaymentHandler struct {
	Svc *services.LedgerService
}

func NewPaymentHandler(svc *services.LedgerService) *PaymentHandler {
	return &PaymentHandler{Svc: svc}
}

// List: GET /payments – the issue list the payments form works against.
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
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

// Record: POST /record_payment {booking_number, payment_amount}
func (h *PaymentHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BookingNumber string  `json:"booking_number"`
		PaymentAmount float64 `json:"payment_amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", "", nil)
		return
	}
	issue, err := h.Svc.RecordPayment(r.Context(), req.BookingNumber, req.PaymentAmount)
	if err != nil {
		writeError(w, err)
		return
	}
	httpx.Success(w, http.StatusOK, map[string]any{"issue": issue})
}
