package utils

import "regexp"

// Deliberately loose: anything shaped like x@y.z passes. Admin imports carry
// addresses collected by hand and a strict RFC check rejects too many of them.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
