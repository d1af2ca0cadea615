// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"io"
)

// RandomBytes reads n cryptographically random bytes from the OS CSPRNG
// and returns them as a fresh slice. Returns an error if the random read
// fails, which on supported platforms only happens when the OS entropy
// source is unavailable.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}
