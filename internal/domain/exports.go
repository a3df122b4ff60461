package domain

import (
	interfaces "picipher/internal/domain/interfaces"
	types "picipher/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Fingerprint       = types.Fingerprint
	Tier              = types.Tier
	Mode              = types.Mode
	Key               = types.Key
	DigitString       = types.DigitString
	Digits            = types.Digits
	TranslatedMessage = types.TranslatedMessage
	Translation       = types.Translation
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	DigitCache    = interfaces.DigitCache
	OutputSink    = interfaces.OutputSink
	DigitFetcher  = interfaces.DigitFetcher
	DigitComputer = interfaces.DigitComputer
	DigitSource   = interfaces.DigitSource
	Translator    = interfaces.Translator
)

const (
	Encrypt = types.Encrypt
	Decrypt = types.Decrypt

	TierCache   = types.TierCache
	TierNetwork = types.TierNetwork
	TierCompute = types.TierCompute

	MaxCodepoint   = types.MaxCodepoint
	ArtifactDigits = types.ArtifactDigits
	ComputedDigits = types.ComputedDigits
)

var (
	ErrDigitSourceUnavailable = types.ErrDigitSourceUnavailable
	ErrInvalidKey             = types.ErrInvalidKey
	ErrInvalidMode            = types.ErrInvalidMode
	ErrMalformedDigits        = types.ErrMalformedDigits
	ErrUnrepresentableOutput  = types.ErrUnrepresentableOutput
)

// ParseMode and ParseKey validate user input once at the boundary.
var (
	ParseMode      = types.ParseMode
	ParseKey       = types.ParseKey
	NewDigitString = types.NewDigitString
)
