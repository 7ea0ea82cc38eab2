package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/pbkdf2"
)

// DefaultHashIterations is the PBKDF2 iteration count used when no
// override is configured.
const DefaultHashIterations = 100000

const keyLength = sha256.Size

// Hash derives a PBKDF2-HMAC-SHA256 digest for the password under a fresh
// random salt. Both salt and digest are returned hex encoded.
func Hash(password string, iterations int) (saltHex, digestHex string) {
	if iterations <= 0 {
		iterations = DefaultHashIterations
	}

	salt := uuid.New()
	digest := pbkdf2.Key([]byte(password), salt[:], iterations, keyLength, sha256.New)
	return hex.EncodeToString(salt[:]), hex.EncodeToString(digest)
}

// Verify recomputes the digest for the provided password and compares it
// against the stored one in constant time.
func Verify(saltHex, digestHex, password string, iterations int) (bool, error) {
	if iterations <= 0 {
		iterations = DefaultHashIterations
	}

	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false, fmt.Errorf("unable to decode salt: %w", err)
	}

	stored, err := hex.DecodeString(digestHex)
	if err != nil {
		return false, fmt.Errorf("unable to decode password hash: %w", err)
	}

	computed := pbkdf2.Key([]byte(password), salt, iterations, len(stored), sha256.New)
	return hmac.Equal(computed, stored), nil
}

// NewID generates a unique identifier as 32 lowercase hex characters.
func NewID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}
