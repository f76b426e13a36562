package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"registration/src/core/domain"
	"registration/src/core/ports"
	"registration/src/core/validation"
)

// Metrics outcomes besides the rejection codes.
const (
	OutcomeAccepted   = "accepted"
	OutcomeStoreError = "store_error"
)

// RegistrationService validates candidate records and manages the stored list.
type RegistrationService struct {
	repo    ports.UserRepository
	log     *slog.Logger
	now     ports.Clock
	metrics ports.RegistrationMetrics
}

// RegistrationOption configures a RegistrationService.
type RegistrationOption func(*RegistrationService)

// WithClock sets the clock used as the reference time of the age rule.
func WithClock(clock ports.Clock) RegistrationOption {
	return func(s *RegistrationService) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m ports.RegistrationMetrics) RegistrationOption {
	return func(s *RegistrationService) {
		if m != nil {
			s.metrics = m
		}
	}
}

func NewRegistrationService(repo ports.UserRepository, log *slog.Logger, opts ...RegistrationOption) *RegistrationService {
	s := &RegistrationService{
		repo:    repo,
		log:     componentLogger(log, "registration"),
		now:     time.Now,
		metrics: noopMetrics{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register validates the candidate and, if every rule passes, appends it to
// the stored list. A rejected candidate is never stored.
func (s *RegistrationService) Register(ctx context.Context, candidate domain.User) (*domain.User, error) {
	if err := validation.ValidateUser(&candidate, s.now()); err != nil {
		code, _ := validation.CodeOf(err)
		s.metrics.ObserveRegistration(string(code))
		s.log.Info("registration rejected",
			"code", code,
			"field", validation.FieldOf(err),
		)
		return nil, err
	}

	stored, err := s.repo.Append(ctx, candidate)
	if err != nil {
		s.metrics.ObserveRegistration(OutcomeStoreError)
		s.log.Error("failed to store user", "error", err)
		return nil, err
	}

	s.metrics.ObserveRegistration(OutcomeAccepted)
	if n, err := s.repo.Count(ctx); err == nil {
		s.metrics.SetStoredUsers(n)
	}

	s.log.Info("user registered", "user_id", stored.ID)
	return stored, nil
}

// CheckField validates a single form field while the form is being filled.
// Birth dates are expected in domain.BirthLayout.
func (s *RegistrationService) CheckField(_ context.Context, field, value string) error {
	switch field {
	case validation.FieldEmail:
		return validation.ValidateEmail(value)
	case validation.FieldPostalCode:
		return validation.ValidatePostalCode(value)
	case validation.FieldFirstName, validation.FieldLastName:
		if err := validation.ValidateIdentity(value); err != nil {
			return &validation.Error{Code: validation.CodeInvalidIdentity, Field: field}
		}
		return nil
	case validation.FieldBirth:
		birth, err := ParseBirth(value)
		if err != nil {
			return err
		}
		return validation.ValidateAge(&domain.Person{Birth: birth}, s.now())
	default:
		return domain.NewValidationError(field, "unknown field")
	}
}

// Directory returns the user counter and the complete records.
func (s *RegistrationService) Directory(ctx context.Context) (*domain.Directory, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	dir := &domain.Directory{
		Count: len(users),
		Users: make([]domain.User, 0, len(users)),
	}
	for _, u := range users {
		if u.IsComplete() {
			dir.Users = append(dir.Users, u)
		}
	}
	return dir, nil
}

// Get returns one stored record.
func (s *RegistrationService) Get(ctx context.Context, id string) (*domain.User, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.NewValidationError("id", "must be a UUID")
	}
	return s.repo.Get(ctx, uid)
}

// ParseBirth parses a birth date in domain.BirthLayout. An empty or
// malformed value is rejected with CodeInvalidUser on the birth field.
func ParseBirth(value string) (time.Time, error) {
	birth, err := time.Parse(domain.BirthLayout, value)
	if err != nil {
		return time.Time{}, &validation.Error{
			Code:  validation.CodeInvalidUser,
			Field: validation.FieldBirth,
			Err:   err,
		}
	}
	return birth, nil
}

type noopMetrics struct{}

func (noopMetrics) ObserveRegistration(string) {}
func (noopMetrics) SetStoredUsers(int)         {}

// componentLogger tags log with the component name; a nil logger discards.
func componentLogger(log *slog.Logger, component string) *slog.Logger {
	if log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return log.With("component", component)
}
