package ports

import (
	"time"
)

// Clock supplies the reference time for the age rule.
type Clock func() time.Time

// RegistrationMetrics records the outcome of registration attempts.
type RegistrationMetrics interface {
	// ObserveRegistration records one attempt. outcome is "accepted" or a
	// validation code.
	ObserveRegistration(outcome string)

	// SetStoredUsers records the size of the stored list.
	SetStoredUsers(n int)
}
