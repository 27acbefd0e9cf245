// Package book implements the in-memory address book: validated phone
// numbers, per-contact records, and the name-keyed collection.
package book

import (
	"errors"
	"fmt"
)

// ErrInvalidPhone indicates a phone number that is not exactly 10 decimal digits.
var ErrInvalidPhone = errors.New("book: phone must be 10 digits")

// Phone is a validated 10-digit phone number.
// The zero value is invalid; construct via NewPhone.
type Phone struct {
	value string
}

// NewPhone validates value and returns it as a Phone.
// Validation happens here, at construction, never at insertion.
func NewPhone(value string) (Phone, error) {
	if len(value) != 10 {
		return Phone{}, fmt.Errorf("%w: %q has %d characters", ErrInvalidPhone, value, len(value))
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return Phone{}, fmt.Errorf("%w: %q contains %q", ErrInvalidPhone, value, r)
		}
	}
	return Phone{value: value}, nil
}

// String returns the digits of the phone number.
func (p Phone) String() string {
	return p.value
}
