// Package translate is the entry point for encrypting or decrypting one
// message.
//
// It obtains the keystream from a DigitSource, runs the keystream transform
// and, when an OutputSink is configured, persists the result. A sink failure
// is logged and never hides the translated message from the caller.
package translate
