// Package lei validates Legal Entity Identifier candidates.
//
// An identifier is accepted when it is exactly Length characters long. No
// checksum or charset rules are applied.
package lei

import (
	"errors"
	"unicode/utf8"
)

// Length is the number of characters in a valid LEI.
const Length = 20

var (
	// ErrEmptyIdentifier is returned for an empty identifier.
	ErrEmptyIdentifier = errors.New("identifier is empty")
	// ErrInvalidLength is returned for a non-empty identifier that is not Length characters long.
	ErrInvalidLength = errors.New("identifier must be exactly 20 characters")
)

// Validate checks id. Characters are counted as Unicode code points and the
// input is never trimmed.
func Validate(id string) error {
	if id == "" {
		return ErrEmptyIdentifier
	}
	if utf8.RuneCountInString(id) != Length {
		return ErrInvalidLength
	}
	return nil
}
