package utils

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"wedding_rsvp/model"
)

// ParseWorkbook decodes an uploaded workbook into header-keyed row maps.
// Only the first sheet is read; the first row is the header. An empty sheet
// (or a sheet with only a header) yields an empty slice, not an error.
func ParseWorkbook(data []byte) ([]map[string]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return []map[string]string{}, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return []map[string]string{}, nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	out := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(map[string]string, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(row) {
				record[header] = row[i]
			} else {
				record[header] = ""
			}
		}
		out = append(out, record)
	}
	return out, nil
}

// RowField looks a column up by name, falling back to a case-insensitive
// match so hand-edited templates with retyped headers still import.
func RowField(row map[string]string, key string) string {
	if v, ok := row[key]; ok {
		return v
	}
	for k, v := range row {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}

var guestExportHeader = []interface{}{"name", "email", "invitationCode", "allocatedSeats", "notes"}

func BuildGuestWorkbook(guests []model.GuestInvitation) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &guestExportHeader); err != nil {
		return nil, err
	}
	for i, g := range guests {
		email := ""
		if g.Email != nil {
			email = *g.Email
		}
		notes := ""
		if g.Notes != nil {
			notes = *g.Notes
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{g.Name, email, g.InvitationCode, g.AllocatedSeats, notes}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}
	return f.WriteToBuffer()
}

var rsvpExportHeader = []interface{}{
	"name", "willAttend", "email", "phone", "numberOfGuests",
	"dietaryRequirements", "songRequest", "message", "invitationCode", "submittedAt",
}

func BuildRSVPWorkbook(entries []model.RSVPEntry) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &rsvpExportHeader); err != nil {
		return nil, err
	}
	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}
	for i, e := range entries {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			e.Name, e.WillAttend, deref(e.Email), deref(e.Phone), e.NumberOfGuests,
			deref(e.DietaryRequirements), deref(e.SongRequest), deref(e.Message),
			deref(e.InvitationCode), e.CreatedAt.Format("2006-01-02 15:04"),
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}
	return f.WriteToBuffer()
}
