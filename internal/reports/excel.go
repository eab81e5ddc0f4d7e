package reports

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	sheetDetails = "تفاصيل المشاكل"
	sheetSummary = "الملخص العام"
	sheetAgents  = "ملخص الوكلاء"

	reportTitle = "تقرير المشاكل التفصيلي"
)

var detailHeaders = []string{
	"اسم الوكيل", "رقم الحجز", "نوع المشكلة", "الخصم",
	"الملاحظات", "تسجيل الدخول", "تسجيل الخروج", "تاريخ الإنشاء",
}

type excelStyles struct {
	title  int
	date   int
	header int
	data   int
	number int
}

func newExcelStyles(f *excelize.File) (excelStyles, error) {
	var s excelStyles
	var err error

	thin := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}

	if s.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 16, Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"1E3A8A"}, Pattern: 1},
		Alignment: center,
	}); err != nil {
		return s, err
	}
	if s.date, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 12, Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	}); err != nil {
		return s, err
	}
	if s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 12, Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"3B82F6"}, Pattern: 1},
		Alignment: center,
		Border:    thin,
	}); err != nil {
		return s, err
	}
	if s.data, err = f.NewStyle(&excelize.Style{
		Alignment: center,
		Border:    thin,
	}); err != nil {
		return s, err
	}
	moneyFmt := "#,##0.00"
	if s.number, err = f.NewStyle(&excelize.Style{
		Alignment:    center,
		Border:       thin,
		CustomNumFmt: &moneyFmt,
	}); err != nil {
		return s, err
	}
	return s, nil
}

// Excel renders the three-sheet workbook: detail, global summary, per-agent.
func Excel(r *Report) ([]byte, error) {
	if r == nil || len(r.Issues) == 0 {
		return nil, ErrNoData
	}
	f := excelize.NewFile()
	defer f.Close()

	styles, err := newExcelStyles(f)
	if err != nil {
		return nil, fmt.Errorf("styles: %w", err)
	}
	if err := writeDetailSheet(f, r, styles); err != nil {
		return nil, err
	}
	if err := writeSummarySheet(f, r, styles); err != nil {
		return nil, err
	}
	if err := writeAgentSheet(f, r, styles); err != nil {
		return nil, err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	idx, err := f.GetSheetIndex(sheetDetails)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeTitleBand(f *excelize.File, sheet, lastCol string, r *Report, styles excelStyles, withDate bool) error {
	if err := f.SetCellValue(sheet, "A1", reportTitle); err != nil {
		return err
	}
	if err := f.MergeCell(sheet, "A1", lastCol+"1"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", styles.title); err != nil {
		return err
	}
	if !withDate {
		return nil
	}
	if err := f.SetCellValue(sheet, "A2", "تاريخ التقرير: "+r.GeneratedAt); err != nil {
		return err
	}
	if err := f.MergeCell(sheet, "A2", lastCol+"2"); err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A2", lastCol+"2", styles.date)
}

func writeDetailSheet(f *excelize.File, r *Report, styles excelStyles) error {
	if _, err := f.NewSheet(sheetDetails); err != nil {
		return err
	}
	if err := writeTitleBand(f, sheetDetails, "H", r, styles, true); err != nil {
		return err
	}
	for i, h := range detailHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 4)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetDetails, cell, h); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(sheetDetails, "A4", "H4", styles.header); err != nil {
		return err
	}
	for i, is := range r.Issues {
		row := i + 5
		values := []any{
			is.AgentName, is.BookingNumber, IssueTypeLabel(is.IssueType), is.Discount,
			is.Notes, is.CheckIn, is.CheckOut, is.CreatedAt,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetDetails, cell, v); err != nil {
				return err
			}
		}
		if err := f.SetCellStyle(sheetDetails, fmt.Sprintf("A%d", row), fmt.Sprintf("H%d", row), styles.data); err != nil {
			return err
		}
		// Discount column carries the money format.
		if err := f.SetCellStyle(sheetDetails, fmt.Sprintf("D%d", row), fmt.Sprintf("D%d", row), styles.number); err != nil {
			return err
		}
	}
	widths := map[string]float64{"A": 20, "B": 15, "C": 15, "D": 12, "E": 30, "F": 18, "G": 18, "H": 18}
	for col, w := range widths {
		if err := f.SetColWidth(sheetDetails, col, col, w); err != nil {
			return err
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, r *Report, styles excelStyles) error {
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return err
	}
	if err := f.SetCellValue(sheetSummary, "A1", sheetSummary); err != nil {
		return err
	}
	if err := f.MergeCell(sheetSummary, "A1", "B1"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetSummary, "A1", "B1", styles.title); err != nil {
		return err
	}
	rows := [][]any{
		{"البيان", "العدد"},
		{"إجمالي المشاكل", r.TotalIssues},
		{"مشاكل بسيطة", r.SimpleCount},
		{"مشاكل متوسطة", r.MediumCount},
		{"مشاكل كبيرة", r.MajorCount},
		{"إجمالي الخصومات", r.TotalDiscount},
	}
	for i, pair := range rows {
		row := i + 3
		if err := f.SetCellValue(sheetSummary, fmt.Sprintf("A%d", row), pair[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetSummary, fmt.Sprintf("B%d", row), pair[1]); err != nil {
			return err
		}
		style := styles.data
		if i == 0 {
			style = styles.header
		}
		if err := f.SetCellStyle(sheetSummary, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), style); err != nil {
			return err
		}
	}
	// Total-discounts value cell carries the money format.
	if err := f.SetCellStyle(sheetSummary, "B8", "B8", styles.number); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetSummary, "A", "A", 25); err != nil {
		return err
	}
	return f.SetColWidth(sheetSummary, "B", "B", 15)
}

func writeAgentSheet(f *excelize.File, r *Report, styles excelStyles) error {
	if _, err := f.NewSheet(sheetAgents); err != nil {
		return err
	}
	if err := f.SetCellValue(sheetAgents, "A1", "ملخص الخصومات حسب الوكيل"); err != nil {
		return err
	}
	if err := f.MergeCell(sheetAgents, "A1", "C1"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetAgents, "A1", "C1", styles.title); err != nil {
		return err
	}
	headers := []string{"اسم الوكيل", "عدد المشاكل", "إجمالي الخصومات"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 3)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetAgents, cell, h); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(sheetAgents, "A3", "C3", styles.header); err != nil {
		return err
	}
	for i, a := range r.Agents {
		row := i + 4
		if err := f.SetCellValue(sheetAgents, fmt.Sprintf("A%d", row), a.AgentName); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetAgents, fmt.Sprintf("B%d", row), a.IssueCount); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetAgents, fmt.Sprintf("C%d", row), a.DiscountSum); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetAgents, fmt.Sprintf("A%d", row), fmt.Sprintf("C%d", row), styles.data); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetAgents, fmt.Sprintf("C%d", row), fmt.Sprintf("C%d", row), styles.number); err != nil {
			return err
		}
	}
	for col, w := range map[string]float64{"A": 25, "B": 15, "C": 20} {
		if err := f.SetColWidth(sheetAgents, col, col, w); err != nil {
			return err
		}
	}
	return nil
}
