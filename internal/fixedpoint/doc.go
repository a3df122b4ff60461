// Package fixedpoint implements decimal fixed-point arithmetic over math/big
// integers.
//
// A value v represents the real number v/one, where one = 10^P and P is the
// working precision in digits. Every value taking part in one expression must
// share the same one. All divisions truncate toward zero.
package fixedpoint
