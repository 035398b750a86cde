package util

import (
	"github.com/google/uuid"

	"github.com/meshwallet/sdk-go/core/types"
)

// ValidateOperationID checks that id is a canonical 8-4-4-4-12 hexadecimal
// UUID. It runs before any network call; anything else fails fast with a
// format error and no request is sent.
//
// uuid.Parse alone is not enough: it also accepts braced, urn-prefixed and
// dashless flavors the API rejects, so the grouped shape is gated first.
func ValidateOperationID(id string) error {
	if !canonicalUUIDShape(id) {
		return types.NewFormatError("invalid operation id %q: must be a canonical UUID", id)
	}
	if _, err := uuid.Parse(id); err != nil {
		return types.NewFormatError("invalid operation id %q: must be a canonical UUID", id)
	}
	return nil
}

// canonicalUUIDShape reports whether s has the exact 8-4-4-4-12 layout.
func canonicalUUIDShape(s string) bool {
	if len(s) != 36 {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch i {
		case 8, 13, 18, 23:
			if s[i] != '-' {
				return false
			}
		default:
			if !isHexDigit(s[i]) {
				return false
			}
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
