package utils

import "testing"

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"juan@example.com", true},
		{"juan.delacruz+wedding@mail.example.ph", true},
		{"not-an-email", false},
		{"missing@tld", false},
		{"@example.com", false},
		{"juan@", false},
		{"two words@example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidEmail(tt.email); got != tt.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}
