// Package security handles password hashing and verification for admin
// accounts using the bcrypt algorithm.
package security

import (
	"log"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password with bcrypt at the default cost.
// A hashing error is logged and the (empty) hash returned as a string.
func HashPassword(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Print(err.Error())
	}
	return string(hash)
}

// CheckPassword compares a stored bcrypt hash against a plaintext candidate.
// It returns nil on a match and bcrypt's mismatch error otherwise.
func CheckPassword(hashedPassword, candidate string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(candidate))
}
