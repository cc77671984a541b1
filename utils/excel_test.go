package utils

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}
	return buf.Bytes()
}

func TestParseWorkbook(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"name", "email", "allocatedSeats"},
		{"Juan", "juan@example.com", "2"},
		{"Maria", "", "1"},
	})

	rows, err := ParseWorkbook(data)
	if err != nil {
		t.Fatalf("ParseWorkbook: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0]["name"] != "Juan" || rows[0]["allocatedSeats"] != "2" {
		t.Errorf("row 0 = %v", rows[0])
	}
	if rows[1]["email"] != "" {
		t.Errorf("row 1 email = %q, want empty", rows[1]["email"])
	}
}

func TestParseWorkbookHeaderOnly(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"name", "email"},
	})

	rows, err := ParseWorkbook(data)
	if err != nil {
		t.Fatalf("ParseWorkbook: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("rows = %d, want 0 for header-only sheet", len(rows))
	}
}

func TestParseWorkbookShortRows(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"name", "email", "notes"},
		{"Juan"},
	})

	rows, err := ParseWorkbook(data)
	if err != nil {
		t.Fatalf("ParseWorkbook: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0]["email"] != "" || rows[0]["notes"] != "" {
		t.Errorf("missing cells should map to empty strings, got %v", rows[0])
	}
}

func TestParseWorkbookRejectsGarbage(t *testing.T) {
	if _, err := ParseWorkbook([]byte("this is not a workbook")); err == nil {
		t.Error("want error for non-workbook bytes")
	}
}

func TestRowField(t *testing.T) {
	row := map[string]string{"Name": "Juan", "allocatedSeats": "2"}

	if got := RowField(row, "allocatedSeats"); got != "2" {
		t.Errorf("exact match = %q, want %q", got, "2")
	}
	if got := RowField(row, "name"); got != "Juan" {
		t.Errorf("case-insensitive match = %q, want %q", got, "Juan")
	}
	if got := RowField(row, "email"); got != "" {
		t.Errorf("missing column = %q, want empty", got)
	}
}
