package types

// Fingerprint is a short hex identifier for a digit artifact, shown to users
// and stored next to cached artifacts.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// Tier names the acquisition path that produced a DigitString.
type Tier string

const (
	// TierCache is a previously stored artifact on local disk.
	TierCache Tier = "cache"
	// TierNetwork is an artifact fetched from the canonical remote source.
	TierNetwork Tier = "network"
	// TierCompute is a locally computed Chudnovsky expansion.
	TierCompute Tier = "compute"
)

// String returns the string form of the tier.
func (t Tier) String() string { return string(t) }

const (
	// MaxCodepoint is the largest valid Unicode codepoint (0x10FFFF).
	MaxCodepoint = 1114111

	// ArtifactDigits is the length of the cached and fetched artifacts.
	ArtifactDigits = 1_000_000

	// ComputedDigits is the length produced by local computation.
	ComputedDigits = 100_000
)
