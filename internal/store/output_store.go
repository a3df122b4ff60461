package store

import (
	"fmt"
	"path/filepath"
	"sync"
	"unicode/utf8"

	"picipher/internal/domain"
)

// TranslationFilename receives the most recent translated message.
const TranslationFilename = "translated_message.txt"

// TranslationFileStore writes translated messages as UTF-8 text.
type TranslationFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewTranslationFileStore returns a TranslationFileStore rooted at dir.
func NewTranslationFileStore(dir string) *TranslationFileStore {
	return &TranslationFileStore{dir: dir}
}

// Path returns the output location.
func (s *TranslationFileStore) Path() string { return filepath.Join(s.dir, TranslationFilename) }

// SaveTranslation replaces the output file with message. Messages holding
// codepoints UTF-8 cannot encode are refused with ErrUnrepresentableOutput
// and leave the previous file untouched.
func (s *TranslationFileStore) SaveTranslation(message domain.TranslatedMessage) error {
	for i, r := range message {
		if !utf8.ValidRune(r) {
			return fmt.Errorf("%w: U+%04X at position %d", domain.ErrUnrepresentableOutput, r, i)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return writeFile(s.Path(), []byte(message.String()), 0o600)
}

// Compile-time assertion that TranslationFileStore implements domain.OutputSink.
var _ domain.OutputSink = (*TranslationFileStore)(nil)
