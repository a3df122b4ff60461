// Package remote provides an HTTP implementation of the domain.DigitFetcher
// interface used by picipher.
//
// The canonical artifact is a plain-text file holding the first million
// digits of pi. The fetcher performs one GET per call; it does not retry and
// does not interpret the body. Non-2xx statuses are returned as errors with
// the URL and status text to aid diagnostics, so the digit source can fall
// through to local computation.
package remote
