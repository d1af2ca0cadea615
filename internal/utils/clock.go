// Package utils provides general-purpose helper utilities used across
// different parts of the application: the CSPRNG helper and the
// Unix-second clock.
package utils

import "time"

// Clock yields Unix-second timestamps for persistence and expiry math.
// The indirection exists so tests can substitute a fixed or advancing
// clock; production code uses [SystemClock].
type Clock interface {
	// Now returns the current time as Unix seconds.
	Now() int64
}

// SystemClock is the wall-clock implementation of [Clock].
type SystemClock struct{}

// Now implements [Clock] using the system wall clock.
func (SystemClock) Now() int64 {
	return time.Now().Unix()
}
