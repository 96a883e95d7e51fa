package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Lifetimes for the one-time tokens sent by email.
const (
	EmailVerificationTokenTTL = 24 * time.Hour
	PasswordResetTokenTTL     = 30 * time.Minute
	PasswordSetTokenTTL       = 7 * 24 * time.Hour
)

// GenerateSecureToken returns a random hex token and its sha256 hash.
// The raw token goes to the user by email; only the hash is stored.
func GenerateSecureToken() (raw string, hashed string, err error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", "", err
	}
	raw = hex.EncodeToString(buf)
	return raw, HashToken(raw), nil
}

// HashToken derives the stored form of a raw token.
func HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
