package helper

import (
	"testing"
)

func TestValidateGuestRows(t *testing.T) {
	tests := []struct {
		name       string
		rows       []map[string]string
		wantErrs   []string
		wantCount  int
		wantPassed int
	}{
		{
			name: "valid rows",
			rows: []map[string]string{
				{"name": "Juan Dela Cruz", "email": "juan@example.com", "allocatedSeats": "2", "notes": "college friend"},
				{"name": "Maria Clara", "email": "", "allocatedSeats": "1"},
			},
			wantCount:  2,
			wantPassed: 2,
		},
		{
			name: "missing name",
			rows: []map[string]string{
				{"name": "   ", "allocatedSeats": "2"},
			},
			wantErrs: []string{"Row 2: Name is required"},
		},
		{
			name: "zero seats",
			rows: []map[string]string{
				{"name": "Juan", "allocatedSeats": "0"},
			},
			wantErrs: []string{"Row 2: Allocated seats must be a number greater than 0"},
		},
		{
			name: "non-numeric seats",
			rows: []map[string]string{
				{"name": "Juan", "allocatedSeats": "two"},
			},
			wantErrs: []string{"Row 2: Allocated seats must be a number greater than 0"},
		},
		{
			name: "bad email",
			rows: []map[string]string{
				{"name": "Juan", "allocatedSeats": "1", "email": "not-an-email"},
			},
			wantErrs: []string{"Row 2: Invalid email format"},
		},
		{
			name: "one bad row empties the batch",
			rows: []map[string]string{
				{"name": "Juan", "allocatedSeats": "2"},
				{"name": "", "allocatedSeats": "1"},
				{"name": "Maria", "allocatedSeats": "3"},
			},
			wantErrs:   []string{"Row 3: Name is required"},
			wantPassed: 2,
		},
		{
			name: "only first failing rule is reported",
			rows: []map[string]string{
				{"name": "", "allocatedSeats": "zero", "email": "nope"},
			},
			wantErrs: []string{"Row 2: Name is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateGuestRows(tt.rows)

			if len(got.Errors) != len(tt.wantErrs) {
				t.Fatalf("errors = %v, want %v", got.Errors, tt.wantErrs)
			}
			for i, want := range tt.wantErrs {
				if got.Errors[i] != want {
					t.Errorf("error[%d] = %q, want %q", i, got.Errors[i], want)
				}
			}

			if len(tt.wantErrs) > 0 && got.Records != nil {
				t.Errorf("records = %v, want none when any row fails", got.Records)
			}
			if len(got.Records) != tt.wantCount {
				t.Errorf("record count = %d, want %d", len(got.Records), tt.wantCount)
			}
			if got.Processed != tt.wantPassed {
				t.Errorf("processed = %d, want %d", got.Processed, tt.wantPassed)
			}
			if got.TotalRows != len(tt.rows) {
				t.Errorf("totalRows = %d, want %d", got.TotalRows, len(tt.rows))
			}
		})
	}
}

func TestValidateGuestRowsNormalizes(t *testing.T) {
	got := ValidateGuestRows([]map[string]string{
		{"name": "  Juan Dela Cruz  ", "email": " juan@example.com ", "allocatedSeats": "2.0", "notes": " vip "},
	})
	if len(got.Records) != 1 {
		t.Fatalf("record count = %d, want 1", len(got.Records))
	}
	r := got.Records[0]
	if r.Name != "Juan Dela Cruz" {
		t.Errorf("name = %q", r.Name)
	}
	if r.Email == nil || *r.Email != "juan@example.com" {
		t.Errorf("email = %v", r.Email)
	}
	if r.AllocatedSeats != 2 {
		t.Errorf("allocatedSeats = %d, want 2", r.AllocatedSeats)
	}
	if r.Notes == nil || *r.Notes != "vip" {
		t.Errorf("notes = %v", r.Notes)
	}
}

func TestValidateGuestRowsOptionalFieldsNil(t *testing.T) {
	got := ValidateGuestRows([]map[string]string{
		{"name": "Maria", "allocatedSeats": "1"},
	})
	if len(got.Records) != 1 {
		t.Fatalf("record count = %d, want 1", len(got.Records))
	}
	if got.Records[0].Email != nil {
		t.Errorf("email = %v, want nil for blank cell", *got.Records[0].Email)
	}
	if got.Records[0].Notes != nil {
		t.Errorf("notes = %v, want nil for blank cell", *got.Records[0].Notes)
	}
}

func TestAssignInvitationCodes(t *testing.T) {
	records := ValidateGuestRows([]map[string]string{
		{"name": "A", "allocatedSeats": "1"},
		{"name": "B", "allocatedSeats": "1"},
		{"name": "C", "allocatedSeats": "1"},
	}).Records

	existing := map[string]bool{"AAAAAAAA": true}
	records = AssignInvitationCodes(records, existing)

	seen := map[string]bool{}
	for _, r := range records {
		if len(r.InvitationCode) != 8 {
			t.Errorf("code %q: length = %d, want 8", r.InvitationCode, len(r.InvitationCode))
		}
		if r.InvitationCode == "AAAAAAAA" {
			t.Errorf("code collided with exclusion set")
		}
		if seen[r.InvitationCode] {
			t.Errorf("duplicate code %q within batch", r.InvitationCode)
		}
		seen[r.InvitationCode] = true
		if !existing[r.InvitationCode] {
			t.Errorf("code %q not added to exclusion set", r.InvitationCode)
		}
	}
}
