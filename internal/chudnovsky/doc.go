// Package chudnovsky computes decimal digits of pi with the Chudnovsky series
// in fixed-point integer arithmetic.
//
// The series is summed term by term as a_k = a_{k-1} * -(6k-5)(2k-1)(6k-1) /
// (k^3 * 640320^3/24) until truncating division drives a_k to exactly zero.
// There is no fixed iteration count: the working precision alone decides when
// the loop ends, each term contributing about 14.18 digits. Pi is then
// assembled as
//
//	pi = 426880 * sqrt(10005) / (13591409*a_sum + 545140134*b_sum)
//
// where b_sum accumulates k*a_k.
//
// Calculator wraps this with guard digits, progress reporting and logging,
// and is the terminal tier of the digit source: it needs nothing but CPU.
package chudnovsky
