package age_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"registration/src/core/age"
	"registration/src/core/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func person(birth time.Time) *domain.Person {
	return &domain.Person{Birth: birth}
}

func TestInYears(t *testing.T) {
	now := date(2024, time.June, 15)

	tests := []struct {
		name  string
		birth time.Time
		want  int
	}{
		{"birthday already passed this year", date(2000, time.January, 1), 24},
		{"birthday today", date(2000, time.June, 15), 24},
		{"birthday tomorrow", date(2000, time.June, 16), 23},
		{"birthday later this year", date(2000, time.December, 31), 23},
		{"born today", date(2024, time.June, 15), 0},
		{"exactly eighteen", date(2006, time.June, 15), 18},
		{"one day short of eighteen", date(2006, time.June, 16), 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := age.InYears(person(tt.birth), now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInYearsFutureBirthClampsToZero(t *testing.T) {
	now := date(2024, time.June, 15)

	for _, birth := range []time.Time{
		date(2024, time.June, 16),
		date(2025, time.January, 1),
		date(2100, time.March, 3),
	} {
		got, err := age.InYears(person(birth), now)
		require.NoError(t, err)
		assert.Equal(t, 0, got, "birth %s", birth.Format(domain.BirthLayout))
	}
}

func TestInYearsLeapDay(t *testing.T) {
	leap := date(2004, time.February, 29)
	dayAfter := date(2004, time.March, 1)

	t.Run("does not fail in a non-leap year", func(t *testing.T) {
		got, err := age.InYears(person(leap), date(2023, time.February, 28))
		require.NoError(t, err)
		assert.Equal(t, 18, got)
	})

	t.Run("matches a March 1st birth on or after March 1st", func(t *testing.T) {
		for _, now := range []time.Time{
			date(2023, time.March, 1),
			date(2023, time.March, 2),
			date(2023, time.December, 31),
			date(2025, time.July, 14),
		} {
			a, err := age.InYears(person(leap), now)
			require.NoError(t, err)
			b, err := age.InYears(person(dayAfter), now)
			require.NoError(t, err)
			assert.Equal(t, b, a, "now %s", now.Format(domain.BirthLayout))
		}
	})

	t.Run("birthday reached on the day in a leap year", func(t *testing.T) {
		got, err := age.InYears(person(leap), date(2024, time.February, 29))
		require.NoError(t, err)
		assert.Equal(t, 20, got)
	})
}

func TestInYearsMonotonic(t *testing.T) {
	birth := date(1990, time.August, 20)
	now := date(2030, time.January, 1)

	prev, err := age.InYears(person(birth), now)
	require.NoError(t, err)

	// Walk the reference time backwards day by day.
	for i := 0; i < 365*45; i++ {
		now = now.AddDate(0, 0, -1)
		got, err := age.InYears(person(birth), now)
		require.NoError(t, err)
		require.LessOrEqual(t, got, prev, "now %s", now.Format(domain.BirthLayout))
		require.GreaterOrEqual(t, got, 0)
		prev = got
	}
	assert.Equal(t, 0, prev)
}

func TestInYearsIgnoresTimeOfDayAndZone(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skip("time zone database not available")
	}

	birth := date(2000, time.June, 15)
	now := time.Date(2018, time.June, 15, 0, 30, 0, 0, paris)

	got, err := age.InYears(person(birth), now)
	require.NoError(t, err)
	assert.Equal(t, 18, got)
}

func TestInYearsErrors(t *testing.T) {
	now := date(2024, time.June, 15)

	t.Run("missing person", func(t *testing.T) {
		_, err := age.InYears(nil, now)
		assert.ErrorIs(t, err, age.ErrMissingPerson)
	})

	t.Run("missing birth", func(t *testing.T) {
		_, err := age.InYears(&domain.Person{}, now)
		assert.ErrorIs(t, err, age.ErrMissingBirth)
	})

	t.Run("year out of calendar range", func(t *testing.T) {
		_, err := age.InYears(person(date(0, time.March, 1)), now)
		assert.ErrorIs(t, err, age.ErrInvalidBirth)

		_, err = age.InYears(person(date(10000, time.January, 1)), now)
		assert.ErrorIs(t, err, age.ErrInvalidBirth)
	})
}
