package reports

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExcelEmptyReportFails(t *testing.T) {
	if _, err := Excel(&Report{}); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestExcelWorkbookContent(t *testing.T) {
	r, err := Build(testIssues(), testNow)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	data, err := Excel(r)
	if err != nil {
		t.Fatalf("excel: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := map[string]bool{sheetDetails: false, sheetSummary: false, sheetAgents: false}
	for _, s := range sheets {
		if _, ok := want[s]; ok {
			want[s] = true
		}
		if s == "Sheet1" {
			t.Fatal("default sheet not removed")
		}
	}
	for s, seen := range want {
		if !seen {
			t.Fatalf("missing sheet %q in %v", s, sheets)
		}
	}

	// Detail sheet: title band, header row 4, data from row 5.
	if v, _ := f.GetCellValue(sheetDetails, "A1"); v != reportTitle {
		t.Fatalf("detail title = %q", v)
	}
	if v, _ := f.GetCellValue(sheetDetails, "A4"); v != "اسم الوكيل" {
		t.Fatalf("detail header A4 = %q", v)
	}
	if v, _ := f.GetCellValue(sheetDetails, "A5"); v != "A" {
		t.Fatalf("detail A5 = %q", v)
	}
	if v, _ := f.GetCellValue(sheetDetails, "B5"); v != "BK-1" {
		t.Fatalf("detail B5 = %q", v)
	}
	if v, _ := f.GetCellValue(sheetDetails, "C5"); v != "مشكلة بسيطة" {
		t.Fatalf("detail C5 = %q", v)
	}
	if v, _ := f.GetCellValue(sheetDetails, "H5"); v != "5 مارس 2024" {
		t.Fatalf("detail H5 = %q", v)
	}

	// Summary sheet: fixed 6-row statistic table from row 3.
	if v, _ := f.GetCellValue(sheetSummary, "A3"); v != "البيان" {
		t.Fatalf("summary A3 = %q", v)
	}
	if v, _ := f.GetCellValue(sheetSummary, "B4"); v != "3" {
		t.Fatalf("total issues cell = %q", v)
	}
	if v, _ := f.GetCellValue(sheetSummary, "B8"); v != "18.00" && v != "18" {
		t.Fatalf("total discount cell = %q", v)
	}

	// Agent sheet: sorted rows from row 4.
	if v, _ := f.GetCellValue(sheetAgents, "A4"); v != "A" {
		t.Fatalf("agent A4 = %q", v)
	}
	if v, _ := f.GetCellValue(sheetAgents, "B4"); v != "2" {
		t.Fatalf("agent issue count = %q", v)
	}
	if v, _ := f.GetCellValue(sheetAgents, "A5"); v != "B" {
		t.Fatalf("agent A5 = %q", v)
	}
}
