package helper

import (
	"testing"
)

func TestValidateEntourageRows(t *testing.T) {
	tests := []struct {
		name      string
		rows      []map[string]string
		wantErrs  []string
		wantCount int
	}{
		{
			name: "valid rows",
			rows: []map[string]string{
				{"name": "Jose Rizal", "role": "Principal Sponsor", "category": "sponsors", "side": "male", "sortOrder": "1"},
				{"name": "Gabriela Silang", "role": "Maid of Honor", "category": "other", "side": "bride", "sortOrder": "2"},
			},
			wantCount: 2,
		},
		{
			name: "missing name",
			rows: []map[string]string{
				{"name": "", "role": "Best Man", "category": "other", "side": "groom", "sortOrder": "1"},
			},
			wantErrs: []string{"Row 2: Name is required"},
		},
		{
			name: "missing role",
			rows: []map[string]string{
				{"name": "Jose", "role": " ", "category": "other", "side": "groom", "sortOrder": "1"},
			},
			wantErrs: []string{"Row 2: Role is required"},
		},
		{
			name: "parents cannot be male side",
			rows: []map[string]string{
				{"name": "Jose", "role": "Father of the Bride", "category": "parents", "side": "male", "sortOrder": "1"},
			},
			wantErrs: []string{"Row 2: Side for category 'parents' must be one of: bride, groom"},
		},
		{
			name: "sponsors cannot be bride side",
			rows: []map[string]string{
				{"name": "Jose", "role": "Sponsor", "category": "sponsors", "side": "bride", "sortOrder": "1"},
			},
			wantErrs: []string{"Row 2: Side for category 'sponsors' must be one of: male, female"},
		},
		{
			name: "unknown category",
			rows: []map[string]string{
				{"name": "Jose", "role": "Usher", "category": "crew", "side": "both", "sortOrder": "1"},
			},
			wantErrs: []string{"Row 2: Category must be one of: parents, sponsors, other"},
		},
		{
			name: "non-numeric sort order",
			rows: []map[string]string{
				{"name": "Jose", "role": "Usher", "category": "other", "side": "both", "sortOrder": "first"},
			},
			wantErrs: []string{"Row 2: Sort order must be a number"},
		},
		{
			name: "valid rows survive alongside errors",
			rows: []map[string]string{
				{"name": "Jose", "role": "Best Man", "category": "other", "side": "groom", "sortOrder": "1"},
				{"name": "", "role": "Usher", "category": "other", "side": "both", "sortOrder": "2"},
			},
			wantErrs:  []string{"Row 3: Name is required"},
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, errs := ValidateEntourageRows(tt.rows)

			if len(errs) != len(tt.wantErrs) {
				t.Fatalf("errors = %v, want %v", errs, tt.wantErrs)
			}
			for i, want := range tt.wantErrs {
				if errs[i] != want {
					t.Errorf("error[%d] = %q, want %q", i, errs[i], want)
				}
			}
			if len(records) != tt.wantCount {
				t.Errorf("record count = %d, want %d", len(records), tt.wantCount)
			}
		})
	}
}

func TestValidateEntourageRowsDefaultsCategory(t *testing.T) {
	records, errs := ValidateEntourageRows([]map[string]string{
		{"name": "Jose", "role": "Usher", "side": "both", "sortOrder": "1"},
	})
	if len(errs) != 0 {
		t.Fatalf("errors = %v", errs)
	}
	if records[0].Category != "other" {
		t.Errorf("category = %q, want %q when blank", records[0].Category, "other")
	}
}

func TestValidateEntourageRowsNormalizesCase(t *testing.T) {
	records, errs := ValidateEntourageRows([]map[string]string{
		{"name": "Jose", "role": "Sponsor", "category": " Sponsors ", "side": " MALE ", "sortOrder": "3"},
	})
	if len(errs) != 0 {
		t.Fatalf("errors = %v", errs)
	}
	if records[0].Category != "sponsors" || records[0].Side != "male" {
		t.Errorf("got category=%q side=%q, want lowercased trimmed values", records[0].Category, records[0].Side)
	}
	if records[0].SortOrder != 3 {
		t.Errorf("sortOrder = %d, want 3", records[0].SortOrder)
	}
}
