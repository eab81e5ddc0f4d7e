package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Abdelrahman0111/managment-arkaan-issues-bookings/internal/httpx"
	"github.com/Abdelrahman0111/managment-arkaan-issues-bookings/internal/reports"
	"github.com/Abdelrahman0111/managment-arkaan-issues-bookings/internal/services"
)

type ReportHandler struct {
	Svc      *services.LedgerService
	Prefix   string
	FontPath string
}

func NewReportHandler(svc *services.LedgerService, prefix, fontPath string) *ReportHandler {
	return &ReportHandler{Svc: svc, Prefix: prefix, FontPath: fontPath}
}

// AgentNames: GET /reports – distinct agent names for the report form.
func (h *ReportHandler) AgentNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.Svc.AgentNames(r.Context())
	if err != nil {
		if degraded(err) {
			httpx.Success(w, http.StatusOK, map[string]any{"agents": []string{}})
			return
		}
		writeError(w, err)
		return
	}
	httpx.Success(w, http.StatusOK, map[string]any{"agents": names})
}

func (h *ReportHandler) build(w http.ResponseWriter, r *http.Request, now time.Time) (*reports.Report, bool) {
	issues, err := h.Svc.Issues(r.Context())
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	rep, err := reports.Build(issues, now)
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	return rep, true
}

// ExportExcel: POST /export_excel – xlsx workbook download.
func (h *ReportHandler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	rep, ok := h.build(w, r, now)
	if !ok {
		return
	}
	data, err := reports.Excel(rep)
	if err != nil {
		writeError(w, err)
		return
	}
	sendFile(w, data,
		reports.Filename(h.Prefix, now, "xlsx"),
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

// ExportPDF: POST /export_pdf – paginated document download.
func (h *ReportHandler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	rep, ok := h.build(w, r, now)
	if !ok {
		return
	}
	data, err := reports.PDF(rep, h.FontPath)
	if err != nil {
		writeError(w, err)
		return
	}
	sendFile(w, data, reports.Filename(h.Prefix, now, "pdf"), "application/pdf")
}

func sendFile(w http.ResponseWriter, data []byte, name, contentType string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
