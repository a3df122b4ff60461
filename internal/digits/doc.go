// Package digits turns raw pi text into a validated domain.DigitString.
//
// Input comes from two places: a downloaded or cached artifact, which may
// read "3.14159..." and carry trailing whitespace, and a computed fixed-point
// integer whose decimal rendering is "314159...". Both are normalized to
// exactly the requested number of digits; short input is an error, never
// padded.
package digits
