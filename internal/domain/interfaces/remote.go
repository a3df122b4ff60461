package interfaces

import "context"

// DigitFetcher retrieves the canonical digit artifact from a remote source.
type DigitFetcher interface {
	FetchDigits(ctx context.Context) (string, error)
}
