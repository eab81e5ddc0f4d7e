package httpx

import (
	"encoding/json"
	"net/http"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	var body []byte
	var err error
	if payload != nil {
		body, err = json.Marshal(payload)
		if err != nil {
			// best-effort error response; avoid writing partial JSON
			http.Error(w, `{"success":false,"error":"encode_error"}`, http.StatusInternalServerError)
			return
		}
	} else {
		body = []byte("null")
	}
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		// nothing we can do at this point
		_ = err
	}
}

// JSONError writes the failure envelope: success=false plus a stable error
// code, a human message, and optional structured details (field violations).
func JSONError(w http.ResponseWriter, status int, code, msg string, details any) {
	JSON(w, status, ErrorResponse{Success: false, Error: code, Message: msg, Details: details})
}

// Success writes success=true merged with extra top-level fields.
func Success(w http.ResponseWriter, status int, extra map[string]any) {
	payload := map[string]any{"success": true}
	for k, v := range extra {
		payload[k] = v
	}
	JSON(w, status, payload)
}
