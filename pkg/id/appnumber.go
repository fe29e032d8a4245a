package id

import (
	"crypto/rand"
	"strconv"
	"strings"
	"time"
)

const base36Upper = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewApplicationNumber builds a human-facing application number:
// prefix + base36 nanosecond timestamp + 4 random base36 chars, uppercased.
// Nanosecond resolution keeps burst generation collision-free; the random
// suffix covers clocks that tick coarser than the call rate.
func NewApplicationNumber(prefix string) string {
	ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixNano(), 36))

	b := make([]byte, 4)
	_, _ = rand.Read(b)
	suffix := make([]byte, 4)
	for i, v := range b {
		suffix[i] = base36Upper[int(v)%len(base36Upper)]
	}

	return prefix + ts + string(suffix)
}
