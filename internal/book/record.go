package book

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for caller-checkable conditions.
var (
	ErrEmptyName     = errors.New("book: contact name cannot be empty")
	ErrPhoneNotFound = errors.New("book: phone not found")
)

// Record is one contact: a name plus an ordered list of phone numbers.
// Duplicate phones are permitted until explicitly removed.
type Record struct {
	Name   string
	Phones []Phone
}

// NewRecord creates a Record for the given contact name.
func NewRecord(name string) (*Record, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	return &Record{Name: name}, nil
}

// AddPhone validates value and appends it to the record's phones.
func (r *Record) AddPhone(value string) error {
	p, err := NewPhone(value)
	if err != nil {
		return err
	}
	r.Phones = append(r.Phones, p)
	return nil
}

// RemovePhone removes every phone matching the literal value.
// Removing an absent value is a no-op.
func (r *Record) RemovePhone(value string) {
	kept := r.Phones[:0]
	for _, p := range r.Phones {
		if p.value != value {
			kept = append(kept, p)
		}
	}
	r.Phones = kept
}

// EditPhone replaces the first occurrence of old with new.
// The replacement is validated before the lookup, so a malformed new
// value never mutates the record. Returns ErrPhoneNotFound if old is absent.
func (r *Record) EditPhone(old, new string) error {
	p, err := NewPhone(new)
	if err != nil {
		return err
	}
	for i := range r.Phones {
		if r.Phones[i].value == old {
			r.Phones[i] = p
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrPhoneNotFound, old)
}

// FindPhone returns the phone matching the literal value, if present.
func (r *Record) FindPhone(value string) (Phone, bool) {
	for _, p := range r.Phones {
		if p.value == value {
			return p, true
		}
	}
	return Phone{}, false
}

// String renders the record as "Contact name: X, phones: a; b".
func (r *Record) String() string {
	phones := make([]string, len(r.Phones))
	for i, p := range r.Phones {
		phones[i] = p.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s", r.Name, strings.Join(phones, "; "))
}
