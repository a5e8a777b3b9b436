package services

import (
	"github.com/google/uuid"
)

// IDFunc produces collection entry ids.
type IDFunc func() string

// NewID returns a UUIDv7: a millisecond timestamp followed by random bits.
// Uniqueness is probabilistic; the collection store still rejects repeats.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
