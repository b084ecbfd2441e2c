package pkguid

import "github.com/google/uuid"

// UUID generates correlation ids. Ids are UUIDv7 so they sort by creation
// time in logs; a random v4 is used if the v7 clock sequence cannot be read.
type UUID struct{}

func NewUUID() *UUID {
	return &UUID{}
}

func (u *UUID) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
