package reports

import (
	"bytes"
	"fmt"
	"log"
	"sync"

	"github.com/go-pdf/fpdf"
)

// Truncation limits for the detail table, in characters, so rows fit the
// fixed column widths.
const (
	truncAgent   = 15
	truncBooking = 12
	truncType    = 12
	truncDate    = 15
)

var warnNoFont sync.Once

// PDF renders the paginated document: title block, global summary table,
// per-agent table, page break, detail table. fontPath names a TTF carrying
// Arabic glyphs; without one the core font is used and Arabic text will not
// render (logged once).
func PDF(r *Report, fontPath string) ([]byte, error) {
	if r == nil || len(r.Issues) == 0 {
		return nil, ErrNoData
	}
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.SetAutoPageBreak(true, 12)

	family := "Helvetica"
	if fontPath != "" {
		pdf.AddUTF8Font("report", "", fontPath)
		family = "report"
	} else {
		warnNoFont.Do(func() {
			log.Printf("reports: REPORT_FONT_PATH not set, PDF falls back to core font without Arabic glyphs")
		})
	}
	pdf.AddPage()

	pdf.SetFont(family, "", 20)
	pdf.CellFormat(0, 12, Shape(reportTitle), "", 1, "C", false, 0, "")
	pdf.SetFont(family, "", 14)
	pdf.CellFormat(0, 10, Shape("تاريخ التقرير: "+r.GeneratedAt), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	summaryRows := [][]string{
		{Shape("إجمالي المشاكل"), fmt.Sprint(r.TotalIssues)},
		{Shape("مشاكل بسيطة"), fmt.Sprint(r.SimpleCount)},
		{Shape("مشاكل متوسطة"), fmt.Sprint(r.MediumCount)},
		{Shape("مشاكل كبيرة"), fmt.Sprint(r.MajorCount)},
		{Shape("إجمالي الخصومات"), fmt.Sprintf("%.2f", r.TotalDiscount)},
	}
	drawTable(pdf, family,
		[]string{Shape("البيان"), Shape("العدد")},
		summaryRows,
		[]float64{76, 50})
	pdf.Ln(10)

	agentRows := make([][]string, 0, len(r.Agents))
	for _, a := range r.Agents {
		agentRows = append(agentRows, []string{
			Shape(a.AgentName),
			fmt.Sprint(a.IssueCount),
			fmt.Sprintf("%.2f", a.DiscountSum),
		})
	}
	drawTable(pdf, family,
		[]string{Shape("اسم الوكيل"), Shape("عدد المشاكل"), Shape("إجمالي الخصومات")},
		agentRows,
		[]float64{76, 50, 50})

	pdf.AddPage()
	pdf.SetFont(family, "", 20)
	pdf.CellFormat(0, 12, Shape("تفاصيل المشاكل"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	detailRows := make([][]string, 0, len(r.Issues))
	for _, is := range r.Issues {
		detailRows = append(detailRows, []string{
			Shape(truncate(is.AgentName, truncAgent)),
			truncate(is.BookingNumber, truncBooking),
			Shape(truncate(IssueTypeLabel(is.IssueType), truncType)),
			fmt.Sprintf("%.2f", is.Discount),
			Shape(truncate(is.CreatedAt, truncDate)),
		})
	}
	drawTable(pdf, family,
		[]string{Shape("الوكيل"), Shape("رقم الحجز"), Shape("نوع المشكلة"), Shape("الخصم"), Shape("تاريخ الإنشاء")},
		detailRows,
		[]float64{40, 34, 40, 26, 40})

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func drawTable(pdf *fpdf.Fpdf, family string, headers []string, rows [][]string, widths []float64) {
	pdf.SetFont(family, "", 11)
	pdf.SetFillColor(59, 130, 246)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 9, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(family, "", 9)
	pdf.SetTextColor(0, 0, 0)
	for n, row := range rows {
		if n%2 == 1 {
			pdf.SetFillColor(230, 230, 230)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		for i, cell := range row {
			pdf.CellFormat(widths[i], 8, cell, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
