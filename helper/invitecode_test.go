package helper

import (
	"strings"
	"testing"
	"wedding_rsvp/constants"
)

func TestGenerateInvitationCodeShape(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := GenerateInvitationCode(nil)
		if len(code) != constants.InvitationCodeLength {
			t.Fatalf("length = %d, want %d", len(code), constants.InvitationCodeLength)
		}
		for _, r := range code {
			if !strings.ContainsRune(constants.InvitationCodeAlphabet, r) {
				t.Fatalf("code %q contains %q outside the alphabet", code, r)
			}
		}
	}
}

func TestGenerateInvitationCodeRespectsExclusions(t *testing.T) {
	existing := make(map[string]bool)
	for i := 0; i < 500; i++ {
		code := GenerateInvitationCode(existing)
		if existing[code] {
			t.Fatalf("code %q was already in the exclusion set", code)
		}
		existing[code] = true
	}
	if len(existing) != 500 {
		t.Errorf("generated %d unique codes, want 500", len(existing))
	}
}
