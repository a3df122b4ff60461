// Package store provides file-based persistence for picipher.
//
// It contains concrete implementations of the domain storage interfaces.
// Writes go to a temp file in the same directory and are renamed over the
// target, so readers never see a half-written artifact. All methods are
// concurrency-safe within a process via internal locking; nothing guards
// against a second process writing the same home directory.
//
// The package includes stores for:
//   - The cached pi digit artifact and its BLAKE2b sidecar (DigitFileStore)
//   - The last translated message (TranslationFileStore)
package store
