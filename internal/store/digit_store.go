package store

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"picipher/internal/crypto"
	"picipher/internal/domain"
)

const (
	// DigitsFilename is the cached 1,000,000-digit artifact.
	DigitsFilename = "pi1000000.txt"
	digestSuffix   = ".b2sum"
)

// ErrDigestMismatch is returned when the cached artifact does not match its
// recorded digest.
var ErrDigestMismatch = errors.New("cached digits do not match recorded digest")

// DigitFileStore caches the raw digit artifact on disk together with a
// BLAKE2b sidecar.
type DigitFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewDigitFileStore returns a DigitFileStore rooted at dir.
func NewDigitFileStore(dir string) *DigitFileStore {
	return &DigitFileStore{dir: dir}
}

// Path returns the artifact location.
func (s *DigitFileStore) Path() string { return filepath.Join(s.dir, DigitsFilename) }

// LoadDigits returns the stored artifact. A file without a sidecar is
// accepted as-is so a hand-placed artifact still counts as a cache hit.
func (s *DigitFileStore) LoadDigits() (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := readFile(s.Path())
	if err != nil || !ok {
		return "", false, err
	}
	sum, hasSum, err := readFile(s.Path() + digestSuffix)
	if err != nil {
		return "", false, err
	}
	if hasSum && !crypto.VerifyDigest(raw, string(sum)) {
		return "", false, fmt.Errorf("%s: %w", s.Path(), ErrDigestMismatch)
	}
	return string(raw), true, nil
}

// SaveDigits writes the artifact, then its digest.
func (s *DigitFileStore) SaveDigits(raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeFile(s.Path(), []byte(raw), 0o644); err != nil {
		return err
	}
	return writeFile(s.Path()+digestSuffix, []byte(crypto.Digest([]byte(raw))+"\n"), 0o644)
}

// Compile-time assertion that DigitFileStore implements domain.DigitCache.
var _ domain.DigitCache = (*DigitFileStore)(nil)
