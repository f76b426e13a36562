// Package domain contains the core domain model for the registration service.
//
// This package defines:
//   - Entities: Person (input of the age check), User (candidate and stored record)
//   - Views: Directory (user counter plus listing)
//   - Domain Errors: sentinel errors and DomainError for business rule violations
//
// Rules for this package:
//   - No infrastructure concerns (database, HTTP, etc.)
//   - Entities are plain values; validation lives in src/core/validation
//
// Example:
//
//	candidate := domain.User{
//	    FirstName:  "Jean",
//	    LastName:   "Dupont",
//	    Email:      "jean.dupont@example.com",
//	    Birth:      time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
//	    PostalCode: "75001",
//	    City:       "Paris",
//	}
package domain
