package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"registration/src/core/domain"
	"registration/src/infra/logger"
	"registration/src/infra/repo"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func validateArgs(birth string) []string {
	return []string{
		"validate",
		"--first-name", "Jean",
		"--last-name", "Dupont",
		"--email", "test@mail.com",
		"--birth", birth,
		"--postal-code", "75001",
		"--at", "2025-03-10",
	}
}

func TestValidateAcceptsRecord(t *testing.T) {
	out, err := run(t, validateArgs("2005-03-10")...)
	require.NoError(t, err)
	assert.Equal(t, "valid\n", out)
}

func TestValidateRejectsMinor(t *testing.T) {
	out, err := run(t, validateArgs("2015-03-10")...)
	require.ErrorIs(t, err, ErrRejected)
	assert.Equal(t, "AGE_UNDER_18 (birth)\n", out)
}

func TestValidateRejectsMalformedBirth(t *testing.T) {
	out, err := run(t, validateArgs("10/03/2005")...)
	require.ErrorIs(t, err, ErrRejected)
	assert.Equal(t, "INVALID_USER (birth)\n", out)
}

func TestValidateRejectsBadReferenceDate(t *testing.T) {
	args := append(validateArgs("2005-03-10"), "--at", "tomorrow")
	_, err := run(t, args...)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRejected)
}

func TestUsersListsFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	t.Setenv("APP_STORE_DRIVER", "file")
	t.Setenv("APP_STORE_FILE", path)
	t.Setenv("APP_LOG_LEVEL", "error")

	store := repo.NewFileRepository(path, logger.Discard())
	_, err := store.Append(context.Background(), domain.User{
		FirstName: "John", LastName: "Doe", Email: "john.doe@example.com",
		Birth: time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC), PostalCode: "75000", City: "Paris",
	})
	require.NoError(t, err)

	out, err := run(t, "users")
	require.NoError(t, err)
	assert.Contains(t, out, "1 registered user(s)")
	assert.Contains(t, out, "john.doe@example.com")
}
