package crypto

import (
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"

	"picipher/internal/domain"
)

// Digest returns the hex BLAKE2b-256 digest of an artifact.
func Digest(artifact []byte) string {
	sum := blake2b.Sum256(artifact)
	return hex.EncodeToString(sum[:])
}

// VerifyDigest reports whether want (hex, surrounding whitespace ignored)
// matches the digest of artifact.
func VerifyDigest(artifact []byte, want string) bool {
	got := Digest(artifact)
	want = strings.ToLower(strings.TrimSpace(want))
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}

// Fingerprint returns a short hex fingerprint of a digit string.
//
// It hashes with BLAKE2b-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(d domain.DigitString) domain.Fingerprint {
	sum := blake2b.Sum256([]byte(d.String()))
	return domain.Fingerprint(hex.EncodeToString(sum[:10]))
}
