// Package validation holds the registration rules.
//
// Every validator is a pure function that returns nil on success or an *Error
// tagged with a Code. ValidateUser runs them in a fixed order and stops at the
// first failure, so a given record always surfaces the same single code.
//
//	if err := validation.ValidateUser(&candidate, time.Now()); err != nil {
//	    code, _ := validation.CodeOf(err)
//	    switch code {
//	    case validation.CodeAgeUnder18:
//	        // ...
//	    }
//	}
package validation

import (
	"regexp"
	"time"
	"unicode/utf8"

	"registration/src/core/age"
	"registration/src/core/domain"
)

var (
	postalCodePattern = regexp.MustCompile(`^[0-9]{5}$`)

	// Coarse syntactic check: local@domain.tld with no spaces and a single @.
	// It accepts many addresses RFC 5322 rejects and the reverse.
	emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

	// ASCII letters, the Latin-1 letters À-Ö Ø-ö ø-ÿ, and hyphen.
	identityPattern = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿ-]+$`)
)

// rule is one step of an ordered validation chain.
type rule func() error

// first runs rules in order and returns the first failure.
func first(rules ...rule) error {
	for _, r := range rules {
		if err := r(); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAge rejects a missing person or birth date with CodeInvalidUser and
// a person younger than domain.MinimumAge at now with CodeAgeUnder18.
func ValidateAge(p *domain.Person, now time.Time) error {
	if p == nil {
		return reject(CodeInvalidUser, "", age.ErrMissingPerson)
	}
	if p.Birth.IsZero() {
		return reject(CodeInvalidUser, FieldBirth, age.ErrMissingBirth)
	}

	years, err := age.InYears(p, now)
	if err != nil {
		return reject(CodeInvalidUser, FieldBirth, err)
	}
	if years < domain.MinimumAge {
		return reject(CodeAgeUnder18, FieldBirth, nil)
	}
	return nil
}

// ValidatePostalCode accepts exactly five decimal digits.
func ValidatePostalCode(code string) error {
	if !postalCodePattern.MatchString(code) {
		return reject(CodeInvalidPostalCode, FieldPostalCode, nil)
	}
	return nil
}

// ValidateEmail accepts strings shaped like local@domain.tld.
// Invalid UTF-8 is rejected before matching.
func ValidateEmail(email string) error {
	if !utf8.ValidString(email) || !emailPattern.MatchString(email) {
		return reject(CodeInvalidEmail, FieldEmail, nil)
	}
	return nil
}

// ValidateIdentity accepts a non-empty first or last name made of letters
// (ASCII or Latin-1 accented) and hyphens.
func ValidateIdentity(value string) error {
	return identity("", value)
}

func identity(field, value string) error {
	if value == "" || !identityPattern.MatchString(value) {
		return reject(CodeInvalidIdentity, field, nil)
	}
	return nil
}

// ValidateUser checks age, postal code, email, first name and last name, in
// that order, and returns the first failure. A nil result means the record
// may be stored.
func ValidateUser(u *domain.User, now time.Time) error {
	if u == nil {
		return reject(CodeInvalidUser, "", nil)
	}

	return first(
		func() error { return ValidateAge(u.Person(), now) },
		func() error { return ValidatePostalCode(u.PostalCode) },
		func() error { return ValidateEmail(u.Email) },
		func() error { return identity(FieldFirstName, u.FirstName) },
		func() error { return identity(FieldLastName, u.LastName) },
	)
}
