// Package digitsource acquires the pi keystream.
//
// Tiers are tried in order of cost:
//
//  1. the cached 1,000,000-digit artifact on disk;
//  2. the canonical artifact over the network, saved to the cache on success;
//  3. local Chudnovsky computation of 100,000 digits.
//
// A failing tier is logged and the next one is tried. Only when the last
// tier fails does Digits return ErrDigitSourceUnavailable.
package digitsource
