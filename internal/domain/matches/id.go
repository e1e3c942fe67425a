package matches

import (
	"strings"

	"github.com/google/uuid"
)

// ID identifies a match. The zero value is the absent id and is never
// produced by NewID.
type ID struct {
	uuid.UUID
}

// NewID returns a fresh random id.
func NewID() ID {
	return ID{UUID: uuid.New()}
}

// IDFrom wraps an existing UUID.
func IDFrom(u uuid.UUID) ID {
	return ID{UUID: u}
}

// IsZero reports whether the id is absent.
func (id ID) IsZero() bool {
	return id.UUID == uuid.Nil
}

// ParseID parses the textual form of an id. Blank input yields the absent
// id without error so callers can apply their own emptiness rule.
func ParseID(raw string) (ID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ID{}, nil
	}
	u, err := uuid.Parse(raw)
	if err != nil {
		return ID{}, InvalidArgument(FieldMatchID, "invalid match id: "+raw)
	}
	return ID{UUID: u}, nil
}
