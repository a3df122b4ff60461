// Package crypto exposes the hashing primitives used by picipher.
//
// Contents
//
//   - Full BLAKE2b-256 digests of digit artifacts, stored as a sidecar next to
//     the cache so a truncated or edited file is treated as a miss (Digest,
//     VerifyDigest)
//   - Short digit-string fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// None of this makes the keystream cipher secure: pi's digits are public.
// The digests only detect accidental corruption.
package crypto
