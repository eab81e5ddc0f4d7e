package server

import (
	"log"
	"net/http"
	"time"

	"github.com/Abdelrahman0111/managment-arkaan-issues-bookings/internal/config"
	"github.com/Abdelrahman0111/managment-arkaan-issues-bookings/internal/handlers"
	"github.com/Abdelrahman0111/managment-arkaan-issues-bookings/internal/httpx"
	"github.com/Abdelrahman0111/managment-arkaan-issues-bookings/internal/services"
	"github.com/Abdelrahman0111/managment-arkaan-issues-bookings/internal/store"
)

// New constructs the root http.Handler with all routes and middlewares applied.
func New(st store.TableStore, cfg config.Config) http.Handler {
	mux := http.NewServeMux()
	svc := services.NewLedgerService(st)

	// --- Health endpoints ---
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		// Lightweight store check – a degraded store answers 503.
		if _, err := st.Rows(r.Context(), store.TableAgents); err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	dash := handlers.NewDashboardHandler(svc)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			httpx.JSONError(w, http.StatusNotFound, "not_found", "", nil)
			return
		}
		requireMethod(w, r, http.MethodGet, dash.Home)
	})

	ah := handlers.NewAgentHandler(svc)
	mux.HandleFunc("/agents", method(http.MethodGet, ah.List))
	mux.HandleFunc("/add_agent", method(http.MethodPost, ah.Add))

	ih := handlers.NewIssueHandler(svc)
	mux.HandleFunc("/issues", method(http.MethodGet, ih.FormAgents))
	mux.HandleFunc("/add_issue", method(http.MethodPost, ih.Create))
	mux.HandleFunc("/view_issues", method(http.MethodGet, ih.List))

	ph := handlers.NewPaymentHandler(svc)
	mux.HandleFunc("/payments", method(http.MethodGet, ph.List))
	mux.HandleFunc("/record_payment", method(http.MethodPost, ph.Record))

	rh := handlers.NewReportHandler(svc, cfg.ReportPrefix, cfg.ReportFontPath)
	mux.HandleFunc("/reports", method(http.MethodGet, rh.AgentNames))
	mux.HandleFunc("/export_excel", method(http.MethodPost, rh.ExportExcel))
	mux.HandleFunc("/export_pdf", method(http.MethodPost, rh.ExportPDF))

	sa := handlers.NewStoreAdminHandler(st)
	mux.HandleFunc("/admin/store/reset", method(http.MethodPost, sa.Reset))

	return withRecover(withLogging(mux))
}

func method(m string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requireMethod(w, r, m, h)
	}
}

func requireMethod(w http.ResponseWriter, r *http.Request, m string, h http.HandlerFunc) {
	if r.Method != m {
		w.Header().Set("Allow", m)
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "", nil)
		return
	}
	h(w, r)
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic serving %s %s: %v", r.Method, r.URL.Path, rec)
				httpx.JSONError(w, http.StatusInternalServerError, "internal_error", "", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
