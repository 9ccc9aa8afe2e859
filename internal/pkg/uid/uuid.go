package uid

import "github.com/google/uuid"

// UUID produces RFC 4122 UUID strings, preferring the time-ordered v7
// layout so generated identifiers sort by creation time.
type UUID struct{}

// NewUUID returns a UUID generator.
func NewUUID() *UUID {
	return &UUID{}
}

// Generate returns a new UUID string, falling back to a random v4
// when the v7 source fails.
func (u *UUID) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
