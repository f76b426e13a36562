package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"registration/src/core/domain"
	"registration/src/core/usecase"
	"registration/src/core/validation"
	"registration/src/infra/repo"
)

var fixedNow = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

type recordingMetrics struct {
	outcomes []string
	stored   int
}

func (m *recordingMetrics) ObserveRegistration(outcome string) { m.outcomes = append(m.outcomes, outcome) }
func (m *recordingMetrics) SetStoredUsers(n int)               { m.stored = n }

type RegistrationServiceSuite struct {
	suite.Suite
	repo    *repo.MemoryRepository
	metrics *recordingMetrics
	svc     *usecase.RegistrationService
}

func TestRegistrationServiceSuite(t *testing.T) {
	suite.Run(t, new(RegistrationServiceSuite))
}

func (s *RegistrationServiceSuite) SetupTest() {
	s.repo = repo.NewMemoryRepository()
	s.metrics = &recordingMetrics{}
	s.svc = usecase.NewRegistrationService(s.repo, nil,
		usecase.WithClock(func() time.Time { return fixedNow }),
		usecase.WithMetrics(s.metrics),
	)
}

func adult() domain.User {
	return domain.User{
		FirstName:  "Alice",
		LastName:   "Dupont",
		Email:      "alice.dupont@example.com",
		Birth:      time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
		PostalCode: "75000",
		City:       "Paris",
	}
}

func (s *RegistrationServiceSuite) TestRegisterStoresValidUser() {
	ctx := context.Background()

	stored, err := s.svc.Register(ctx, adult())
	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, stored.ID)
	s.Equal("Paris", stored.City)

	n, err := s.repo.Count(ctx)
	s.Require().NoError(err)
	s.Equal(1, n)
	s.Equal([]string{usecase.OutcomeAccepted}, s.metrics.outcomes)
	s.Equal(1, s.metrics.stored)
}

func (s *RegistrationServiceSuite) TestRegisterRejectsWithoutStoring() {
	ctx := context.Background()

	cases := map[validation.Code]func(*domain.User){
		validation.CodeInvalidUser:       func(u *domain.User) { u.Birth = time.Time{} },
		validation.CodeAgeUnder18:        func(u *domain.User) { u.Birth = fixedNow.AddDate(-10, 0, 0) },
		validation.CodeInvalidPostalCode: func(u *domain.User) { u.PostalCode = "75A01" },
		validation.CodeInvalidEmail:      func(u *domain.User) { u.Email = "invalid" },
		validation.CodeInvalidIdentity:   func(u *domain.User) { u.LastName = "<script>" },
	}

	for code, mutate := range cases {
		s.Run(string(code), func() {
			u := adult()
			mutate(&u)

			_, err := s.svc.Register(ctx, u)
			got, ok := validation.CodeOf(err)
			s.Require().True(ok)
			s.Equal(code, got)
		})
	}

	n, err := s.repo.Count(ctx)
	s.Require().NoError(err)
	s.Zero(n)
	s.Len(s.metrics.outcomes, len(cases))
	s.NotContains(s.metrics.outcomes, usecase.OutcomeAccepted)
}

func (s *RegistrationServiceSuite) TestRegisterUsesInjectedClock() {
	u := adult()
	// Eighteen on the day after the fixed clock.
	u.Birth = time.Date(2007, time.March, 11, 0, 0, 0, 0, time.UTC)

	_, err := s.svc.Register(context.Background(), u)
	s.ErrorIs(err, validation.ErrAgeUnder18)

	later := usecase.NewRegistrationService(s.repo, nil,
		usecase.WithClock(func() time.Time { return fixedNow.AddDate(0, 0, 1) }),
	)
	_, err = later.Register(context.Background(), u)
	s.NoError(err)
}

func (s *RegistrationServiceSuite) TestCheckField() {
	ctx := context.Background()

	s.NoError(s.svc.CheckField(ctx, "email", "test@mail.com"))
	s.NoError(s.svc.CheckField(ctx, "postalCode", "75001"))
	s.NoError(s.svc.CheckField(ctx, "firstName", "Jean-Éric"))
	s.NoError(s.svc.CheckField(ctx, "birth", "2000-01-01"))

	s.ErrorIs(s.svc.CheckField(ctx, "email", "testmail.com"), validation.ErrInvalidEmail)
	s.ErrorIs(s.svc.CheckField(ctx, "postalCode", "123"), validation.ErrInvalidPostalCode)
	s.ErrorIs(s.svc.CheckField(ctx, "birth", "2020-01-01"), validation.ErrAgeUnder18)
	s.ErrorIs(s.svc.CheckField(ctx, "birth", "01/01/2000"), validation.ErrInvalidUser)

	err := s.svc.CheckField(ctx, "lastName", "")
	s.ErrorIs(err, validation.ErrInvalidIdentity)
	s.Equal("lastName", validation.FieldOf(err))

	err = s.svc.CheckField(ctx, "city", "Paris")
	s.True(domain.IsValidationError(err))
	_, tagged := validation.CodeOf(err)
	s.False(tagged)
}

func (s *RegistrationServiceSuite) TestDirectoryListsCompleteUsers() {
	ctx := context.Background()

	_, err := s.svc.Register(ctx, adult())
	s.Require().NoError(err)

	// Stores may hold records written outside the service.
	_, err = s.repo.Append(ctx, domain.User{Email: "orphan@example.com"})
	s.Require().NoError(err)

	bob := adult()
	bob.FirstName = "Bob"
	_, err = s.svc.Register(ctx, bob)
	s.Require().NoError(err)

	dir, err := s.svc.Directory(ctx)
	s.Require().NoError(err)
	s.Equal(3, dir.Count)
	s.Require().Len(dir.Users, 2)
	s.Equal("Alice", dir.Users[0].FirstName)
	s.Equal("Bob", dir.Users[1].FirstName)
}

func (s *RegistrationServiceSuite) TestGet() {
	ctx := context.Background()

	stored, err := s.svc.Register(ctx, adult())
	s.Require().NoError(err)

	found, err := s.svc.Get(ctx, stored.ID.String())
	s.Require().NoError(err)
	s.Equal(stored.ID, found.ID)

	_, err = s.svc.Get(ctx, "not-a-uuid")
	s.True(domain.IsValidationError(err))

	_, err = s.svc.Get(ctx, uuid.NewString())
	s.True(domain.IsNotFound(err))
}

type failingRepo struct {
	*repo.MemoryRepository
}

func (failingRepo) Append(context.Context, domain.User) (*domain.User, error) {
	return nil, errors.New("disk full")
}

func (s *RegistrationServiceSuite) TestRegisterPropagatesStoreErrors() {
	svc := usecase.NewRegistrationService(failingRepo{repo.NewMemoryRepository()}, nil,
		usecase.WithClock(func() time.Time { return fixedNow }),
		usecase.WithMetrics(s.metrics),
	)

	_, err := svc.Register(context.Background(), adult())
	s.EqualError(err, "disk full")
	s.Equal([]string{usecase.OutcomeStoreError}, s.metrics.outcomes)
	s.Zero(s.metrics.stored)
}

func TestParseBirth(t *testing.T) {
	birth, err := usecase.ParseBirth("2004-02-29")
	if err != nil {
		t.Fatal(err)
	}
	if birth.Month() != time.February || birth.Day() != 29 {
		t.Fatalf("unexpected date %v", birth)
	}

	for _, raw := range []string{"", "2003-02-29", "yesterday", "2000-1-1"} {
		_, err := usecase.ParseBirth(raw)
		if code, ok := validation.CodeOf(err); !ok || code != validation.CodeInvalidUser {
			t.Errorf("ParseBirth(%q) = %v, want INVALID_USER", raw, err)
		}
	}
}
