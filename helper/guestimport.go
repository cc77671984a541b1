package helper

import (
	"fmt"
	"strconv"
	"strings"
	"wedding_rsvp/model"
	"wedding_rsvp/utils"
)

// GuestValidation is the outcome of validating one uploaded guest sheet.
// The batch is all-or-nothing: when any row fails, Records is empty and
// Processed reports how many rows would have passed.
type GuestValidation struct {
	Records   []model.GuestRecord
	Errors    []string
	Processed int
	TotalRows int
}

// ValidateGuestRows checks each row against the guest template rules in
// order, reporting only the first failing rule per row. Row numbers in the
// error messages are offset by 2: one for the header row and one because
// spreadsheets count from 1.
func ValidateGuestRows(rows []map[string]string) GuestValidation {
	result := GuestValidation{TotalRows: len(rows)}
	var records []model.GuestRecord

	for i, row := range rows {
		rowNum := i + 2

		name := strings.TrimSpace(utils.RowField(row, "name"))
		if name == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: Name is required", rowNum))
			continue
		}

		seats, ok := parseSeats(utils.RowField(row, "allocatedSeats"))
		if !ok {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: Allocated seats must be a number greater than 0", rowNum))
			continue
		}

		email := strings.TrimSpace(utils.RowField(row, "email"))
		if email != "" && !utils.IsValidEmail(email) {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: Invalid email format", rowNum))
			continue
		}

		notes := strings.TrimSpace(utils.RowField(row, "notes"))
		records = append(records, model.GuestRecord{
			Name:           name,
			Email:          utils.StringPtr(email),
			AllocatedSeats: seats,
			Notes:          utils.StringPtr(notes),
		})
	}

	result.Processed = len(records)
	if len(result.Errors) == 0 {
		result.Records = records
	}
	return result
}

// AssignInvitationCodes gives every record a fresh code, excluding the
// caller-supplied set and everything generated earlier in the batch.
func AssignInvitationCodes(records []model.GuestRecord, existing map[string]bool) []model.GuestRecord {
	if existing == nil {
		existing = make(map[string]bool)
	}
	for i := range records {
		code := GenerateInvitationCode(existing)
		existing[code] = true
		records[i].InvitationCode = code
	}
	return records
}

func parseSeats(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 1 {
		return 0, false
	}
	return int(f), true
}
