// Package uuid wraps google/uuid with the UnmarshalParam method gin
// needs to bind UUIDs from URI and query parameters.
package uuid

import (
	google_uuid "github.com/google/uuid"
	"github.com/raisket/advisor/internal/httputil"
)

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

func NewString() string {
	return google_uuid.NewString()
}

// UnmarshalParam parses a UUID from a request parameter. An empty
// parameter parses to the Nil UUID, anything that is not a UUID
// returns httputil.ErrInvalidUUID.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := google_uuid.Parse(p)
	if err != nil {
		return httputil.ErrInvalidUUID
	}

	*u = UUID{parsed}
	return nil
}
