package auth

import "crypto/subtle"

// PasswordsMatch reports whether a supplied pre-hashed credential equals
// the stored one. The service never hashes anything itself; callers send
// the hash and we only compare.
//
// Length mismatches return immediately, equal lengths are compared in
// constant time. The early return leaks the stored credential's length
// through timing.
func PasswordsMatch(supplied, stored string) bool {
	a, b := []byte(supplied), []byte(stored)
	if len(a) != len(b) {
		return false
	}

	return subtle.ConstantTimeCompare(a, b) == 1
}
