package services

import (
	"crypto/rand"
	"encoding/hex"
)

// idempotencyKeySize is the number of random bytes behind each key.
const idempotencyKeySize = 45

// NewIdempotencyKey returns a fresh random key for one mutating API call.
// Keys are never reused: every order update, payment, account creation,
// reward and point accumulation gets its own, so a client-initiated retry
// of the same logical action stays safe to submit.
func NewIdempotencyKey() string {
	b := make([]byte, idempotencyKeySize)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}

	return hex.EncodeToString(b)
}
