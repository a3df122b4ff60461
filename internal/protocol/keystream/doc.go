// Package keystream implements the pi keystream transform.
//
// Each codepoint at message position i is shifted by the digit at index
// (key + i) mod len(digits): up when encrypting, down when decrypting. A
// result that leaves [0, 0x10FFFF] is brought back with a single addition or
// subtraction of the codepoint-space size. Since a shift is at most 9, one
// correction always suffices and decryption inverts encryption for every
// codepoint, surrogates included.
//
// The transform keeps no state between calls; the position counter is local
// to one message.
package keystream
