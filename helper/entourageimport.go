package helper

import (
	"fmt"
	"strconv"
	"strings"
	"wedding_rsvp/constants"
	"wedding_rsvp/model"
	"wedding_rsvp/utils"
)

// ValidateEntourageRows checks each row against the entourage template rules
// in order, reporting only the first failing rule per row. Rows that pass
// are returned alongside the errors; the caller decides whether errors abort
// the batch. Row numbers carry the same +2 offset as the guest sheet.
func ValidateEntourageRows(rows []map[string]string) ([]model.EntourageRecord, []string) {
	var records []model.EntourageRecord
	var errs []string

	for i, row := range rows {
		rowNum := i + 2

		name := strings.TrimSpace(utils.RowField(row, "name"))
		if name == "" {
			errs = append(errs, fmt.Sprintf("Row %d: Name is required", rowNum))
			continue
		}

		role := strings.TrimSpace(utils.RowField(row, "role"))
		if role == "" {
			errs = append(errs, fmt.Sprintf("Row %d: Role is required", rowNum))
			continue
		}

		category := strings.ToLower(strings.TrimSpace(utils.RowField(row, "category")))
		if category == "" {
			category = constants.CategoryOther
		}
		allowed, ok := constants.AllowedSides[category]
		if !ok {
			errs = append(errs, fmt.Sprintf("Row %d: Category must be one of: parents, sponsors, other", rowNum))
			continue
		}

		side := strings.ToLower(strings.TrimSpace(utils.RowField(row, "side")))
		if !contains(allowed, side) {
			errs = append(errs, fmt.Sprintf("Row %d: Side for category '%s' must be one of: %s", rowNum, category, strings.Join(allowed, ", ")))
			continue
		}

		sortOrder, ok := parseSortOrder(utils.RowField(row, "sortOrder"))
		if !ok {
			errs = append(errs, fmt.Sprintf("Row %d: Sort order must be a number", rowNum))
			continue
		}

		records = append(records, model.EntourageRecord{
			Name:        name,
			Role:        role,
			Category:    category,
			Side:        side,
			Description: strings.TrimSpace(utils.RowField(row, "description")),
			SortOrder:   sortOrder,
		})
	}

	return records, errs
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func parseSortOrder(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}
