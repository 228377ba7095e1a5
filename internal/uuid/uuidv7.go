// Package uuid generates time-ordered identifiers for database records.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a UUIDv7 string. UUIDv7 front-loads a millisecond timestamp,
// so freshly created rows sort by insertion order under a b-tree primary
// key. Falls back to a random UUIDv4 if the system entropy source fails.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.New().String()
	}
	return id.String()
}
