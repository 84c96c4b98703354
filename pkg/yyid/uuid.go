package yyid

import (
	"fmt"

	"github.com/google/uuid"
)

// FromUUID reinterprets a standard UUID's bytes as a YYID. Both types are 16
// raw bytes, so the conversion is a lossless copy.
func FromUUID(u uuid.UUID) YYID { return YYID(u) }

// UUID converts the identifier to a standard UUID. Not every 128-bit
// pattern is a valid RFC 4122 value, so the conversion fails unless the
// version and variant bits already hold plausible values (version 1-8,
// RFC 4122 variant).
func (id YYID) UUID() (uuid.UUID, error) {
	u := uuid.UUID(id)
	if v := u.Version(); v < 1 || v > 8 {
		return uuid.Nil, fmt.Errorf("yyid: %s has no valid UUID version", id)
	}
	if u.Variant() != uuid.RFC4122 {
		return uuid.Nil, fmt.Errorf("yyid: variant bits of %s are not RFC 4122", id)
	}
	return u, nil
}
