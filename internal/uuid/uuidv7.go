// Package uuid generates identifiers for new ledger rows.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// Generator produces a fresh identifier on each call.
type Generator func() string

// New generates a new UUIDv7. UUIDv7 is time-ordered, so entries inserted in
// one save sort together in primary-key indexes.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// Fall back to a random UUIDv4 if the entropy source fails
		return googleuuid.New().String()
	}
	return id.String()
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
