package interfaces

import domaintypes "picipher/internal/domain/types"

// DigitCache persists the raw 1,000,000-digit artifact between runs.
type DigitCache interface {
	// LoadDigits returns the stored artifact text. ok is false when nothing
	// usable is stored.
	LoadDigits() (raw string, ok bool, err error)
	SaveDigits(raw string) error
}

// OutputSink persists a translated message after a successful transform.
type OutputSink interface {
	SaveTranslation(message domaintypes.TranslatedMessage) error
}
