package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashStaffPassword derives the bcrypt hash stored on a staff user row.
func HashStaffPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	return string(hash), err
}

// VerifyStaffPassword reports whether plaintext matches the stored hash.
func VerifyStaffPassword(plaintext, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plaintext)) == nil
}
