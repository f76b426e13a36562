package domain

import (
	"time"

	"github.com/google/uuid"
)

// Person is the input of the age check.
// A zero Birth means the birth date is missing.
type Person struct {
	Birth time.Time
}

// User is a registered user, or a candidate record before it is stored.
// Candidates have no ID and no CreatedAt; the repository assigns both.
type User struct {
	ID         uuid.UUID
	FirstName  string
	LastName   string
	Email      string
	Birth      time.Time
	PostalCode string
	City       string
	CreatedAt  time.Time
}

// Person returns the age-check view of the user.
func (u *User) Person() *Person {
	return &Person{Birth: u.Birth}
}

// IsComplete reports whether the record carries both names.
// Incomplete records are counted but never listed.
func (u *User) IsComplete() bool {
	return u.FirstName != "" && u.LastName != ""
}

// Directory is the listing view of the stored user list.
type Directory struct {
	// Count is the number of stored records, complete or not.
	Count int

	// Users holds the complete records in insertion order.
	Users []User
}
