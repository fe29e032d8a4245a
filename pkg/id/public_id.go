package id

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID32 returns the opaque public identifier used in API paths:
// 32 lowercase hex characters, 16 bytes of entropy, no separators.
func NewID32() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
