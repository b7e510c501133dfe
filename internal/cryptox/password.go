// Package cryptox wraps the password-hashing primitive used by the account
// service.
package cryptox

import "golang.org/x/crypto/bcrypt"

// bcryptCost is the fixed work factor. Raising it only affects hashes created
// afterwards; stored hashes keep verifying with the cost they were created at.
const bcryptCost = 10

// HashPassword returns a salted bcrypt digest of plain. Two calls with the
// same input produce different digests, so hashes must never be compared for
// equality; use VerifyPassword.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword reports whether plain matches the stored bcrypt digest.
// A mismatch is not an error, just false.
func VerifyPassword(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
