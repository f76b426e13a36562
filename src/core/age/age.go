// Package age computes whole-years ages from birth dates.
//
// The reference time is always passed in by the caller, so the same input
// yields the same result regardless of the wall clock.
package age

import (
	"errors"
	"time"

	"registration/src/core/domain"
)

var (
	// ErrMissingPerson is returned when no person is given.
	ErrMissingPerson = errors.New("missing person")

	// ErrMissingBirth is returned when the person has no birth date.
	ErrMissingBirth = errors.New("missing birth date")

	// ErrInvalidBirth is returned when the birth date is not a representable calendar date.
	ErrInvalidBirth = errors.New("invalid birth date")
)

const (
	minYear = 1
	maxYear = 9999
)

// InYears returns the age of p in whole years at the reference time now.
//
// Calendar dates are compared in the location each time carries, so a birth
// date parsed as UTC midnight is not shifted by the caller's time zone.
// A birth date after now yields 0.
func InYears(p *domain.Person, now time.Time) (int, error) {
	if p == nil {
		return 0, ErrMissingPerson
	}
	if p.Birth.IsZero() {
		return 0, ErrMissingBirth
	}

	by, bm, bd := p.Birth.Date()
	if by < minYear || by > maxYear {
		return 0, ErrInvalidBirth
	}
	ny, nm, nd := now.Date()

	years := ny - by
	// Birthday not reached yet this year. Feb 29 needs no special case:
	// in a non-leap year it is reached on Mar 1.
	if bm > nm || (bm == nm && bd > nd) {
		years--
	}

	if years < 0 {
		return 0, nil
	}
	return years, nil
}
