package interfaces

import (
	"context"

	domaintypes "picipher/internal/domain/types"
)

// DigitComputer produces pi digits without any external resource.
type DigitComputer interface {
	ComputeDigits(n int) (domaintypes.DigitString, error)
}

// DigitSource yields the keystream for a run.
type DigitSource interface {
	Digits(ctx context.Context) (domaintypes.Digits, error)
}

// Translator is the core entry contract used by the CLI. A failed save is
// reported in the Translation, not as an error.
type Translator interface {
	Translate(
		ctx context.Context,
		mode domaintypes.Mode,
		message string,
		key domaintypes.Key,
	) (domaintypes.Translation, error)
}
