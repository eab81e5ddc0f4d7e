package reports

import (
	"bytes"
	"errors"
	"testing"
)

func TestPDFEmptyReportFails(t *testing.T) {
	if _, err := PDF(&Report{}, ""); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestPDFProducesDocument(t *testing.T) {
	r, err := Build(testIssues(), testNow)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	data, err := PDF(r, "")
	if err != nil {
		t.Fatalf("pdf: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty output")
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("missing PDF magic bytes: %q", data[:8])
	}
}

func TestPDFManyRowsPaginates(t *testing.T) {
	issues := testIssues()
	for len(issues) < 120 {
		issues = append(issues, issues[0])
	}
	r, err := Build(issues, testNow)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	data, err := PDF(r, "")
	if err != nil {
		t.Fatalf("pdf: %v", err)
	}
	// 120 detail rows cannot fit two pages; auto page break must kick in.
	pages := bytes.Count(data, []byte("/Type /Page")) - bytes.Count(data, []byte("/Type /Pages"))
	if pages < 3 {
		t.Fatalf("expected at least 3 pages, found %d", pages)
	}
}
