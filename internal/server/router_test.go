package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Abdelrahman0111/managment-arkaan-issues-bookings/internal/config"
	"github.com/Abdelrahman0111/managment-arkaan-issues-bookings/internal/store"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := config.Config{ReportPrefix: "detailed_report"}
	return New(store.NewMemory(), cfg)
}

func TestHealthEndpoints(t *testing.T) {
	h := newTestRouter(t)
	for _, path := range []string{"/health", "/healthz"} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d", path, w.Code)
		}
		if !strings.Contains(w.Body.String(), `"ok"`) {
			t.Fatalf("%s: body = %s", path, w.Body.String())
		}
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestRouter(t)
	cases := map[string]string{
		"/add_agent":      http.MethodGet,
		"/add_issue":      http.MethodGet,
		"/record_payment": http.MethodGet,
		"/export_excel":   http.MethodGet,
		"/agents":         http.MethodPost,
		"/view_issues":    http.MethodPost,
	}
	for path, wrongMethod := range cases {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(wrongMethod, path, nil))
		if w.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s %s: expected 405 got %d", wrongMethod, path, w.Code)
		}
		if w.Header().Get("Allow") == "" {
			t.Fatalf("%s: missing Allow header", path)
		}
	}
}

func TestUnknownPathIs404(t *testing.T) {
	h := newTestRouter(t)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
}

func TestEndToEndIssueAndPaymentFlow(t *testing.T) {
	h := newTestRouter(t)

	post := func(path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w
	}

	if w := post("/add_agent", `{"agent_name":"ليلى"}`); w.Code != http.StatusOK {
		t.Fatalf("add_agent: %d %s", w.Code, w.Body.String())
	}
	issue := `{"agent_name":"ليلى","booking_number":"BK-55","discount":200,"check_in":"2024-05-01","check_out":"2024-05-03","issue_type":"major","payment_type":"partial","monthly_amount":50}`
	if w := post("/add_issue", issue); w.Code != http.StatusOK {
		t.Fatalf("add_issue: %d %s", w.Code, w.Body.String())
	}
	if w := post("/record_payment", `{"booking_number":"BK-55","payment_amount":200}`); w.Code != http.StatusOK {
		t.Fatalf("record_payment: %d %s", w.Code, w.Body.String())
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/view_issues", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"payment_status":"complete"`) {
		t.Fatalf("view_issues: %d %s", w.Code, w.Body.String())
	}

	if w := post("/export_pdf", ""); w.Code != http.StatusOK {
		t.Fatalf("export_pdf: %d", w.Code)
	}
	if w := post("/export_excel", ""); w.Code != http.StatusOK {
		t.Fatalf("export_excel: %d", w.Code)
	}
	if w := post("/admin/store/reset", ""); w.Code != http.StatusOK {
		t.Fatalf("store reset: %d", w.Code)
	}
}
