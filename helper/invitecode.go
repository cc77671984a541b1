package helper

import (
	"math/rand"
	"wedding_rsvp/constants"
	"wedding_rsvp/model"

	"gorm.io/gorm"
)

// GenerateInvitationCode returns an 8-character uppercase alphanumeric code
// that is not present in existing. The exclusion set is owned by the caller:
// add each accepted code to it before requesting the next one, which keeps a
// batch free of duplicates. Collisions are resolved by resampling; with a
// 36^8 space the loop terminates immediately in practice.
func GenerateInvitationCode(existing map[string]bool) string {
	for {
		code := randomCode()
		if !existing[code] {
			return code
		}
	}
}

func randomCode() string {
	b := make([]byte, constants.InvitationCodeLength)
	for i := range b {
		b[i] = constants.InvitationCodeAlphabet[rand.Intn(len(constants.InvitationCodeAlphabet))]
	}
	return string(b)
}

// LoadExistingCodes seeds an exclusion set with every code already persisted.
// Only used when IMPORT_CHECK_DB_CODES is enabled; by default batches are
// checked against themselves only, matching the original upload behavior.
func LoadExistingCodes(db *gorm.DB) (map[string]bool, error) {
	var codes []string
	if err := db.Model(&model.GuestInvitation{}).Pluck("invitation_code", &codes).Error; err != nil {
		return nil, err
	}
	existing := make(map[string]bool, len(codes))
	for _, code := range codes {
		existing[code] = true
	}
	return existing, nil
}
