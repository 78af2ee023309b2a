package exports

import (
	"strings"
	"testing"
	"time"

	"thochu/models"
)

func TestVisitorsCSV(t *testing.T) {
	v := models.Visitor{TemporaryAddress: "Khách sạn Biển Xanh", Note: `ghi chú có "quote"`, CheckInTime: "2025-01-30T08:00:00Z"}
	v.CCCD = "012345678901"
	v.CMND = "123456789"
	v.FullName = "Nguyễn Văn A"
	v.Sex = "Nam"
	v.DateOfBirth = "01/01/1990"
	v.PermanentAddress = "Hà Nội"
	v.IssueDate = "15/03/2022"

	out := string(VisitorsCSV([]models.Visitor{v}))

	if !strings.HasPrefix(out, "\uFEFF") {
		t.Fatal("missing BOM prefix")
	}
	lines := strings.Split(strings.TrimPrefix(out, "\uFEFF"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	if lines[0] != strings.Join(models.VisitorCSVHeaders, ",") {
		t.Fatalf("unexpected header row: %s", lines[0])
	}
	if !strings.Contains(lines[1], `"Nguyễn Văn A"`) {
		t.Fatalf("full name not quoted: %s", lines[1])
	}
	if !strings.Contains(lines[1], `"ghi chú có ""quote"""`) {
		t.Fatalf("inner quotes not doubled: %s", lines[1])
	}
	if !strings.HasPrefix(lines[1], "012345678901,123456789,") {
		t.Fatalf("id columns should be bare: %s", lines[1])
	}
}

func TestVisitorsCSVEmptyLog(t *testing.T) {
	out := string(VisitorsCSV(nil))
	if out != "\uFEFF"+strings.Join(models.VisitorCSVHeaders, ",") {
		t.Fatalf("empty log should produce header only, got %q", out)
	}
}

func TestFilenames(t *testing.T) {
	at := time.Date(2025, 1, 30, 15, 4, 5, 0, time.UTC)
	if got := CSVFilename(at); got != "danh-sach-du-khach-2025-01-30.csv" {
		t.Fatalf("csv filename: %s", got)
	}
	if got := PDFFilename(at); got != "danh-sach-du-khach-2025-01-30.pdf" {
		t.Fatalf("pdf filename: %s", got)
	}
}

func TestVisitorsPDF(t *testing.T) {
	v := models.Visitor{CheckInTime: "2025-01-30T08:00:00Z"}
	v.FullName = "Nguyen Van A"
	data, err := VisitorsPDF([]models.Visitor{v})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(data) == 0 || string(data[:4]) != "%PDF" {
		t.Fatal("output is not a PDF document")
	}
}
