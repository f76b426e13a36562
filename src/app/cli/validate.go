package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"registration/src/core/domain"
	"registration/src/core/usecase"
	"registration/src/core/validation"
)

// ErrRejected is returned by the validate command when the record fails a rule.
var ErrRejected = errors.New("record rejected")

func newValidateCommand() *cobra.Command {
	var (
		u     domain.User
		birth string
		at    string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Run the registration rules on a record without storing it",
		Example: `  registration validate --first-name Jean --last-name Dupont \
    --email jean@mail.com --birth 2000-01-01 --postal-code 75001`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			now := time.Now()
			if at != "" {
				t, err := time.Parse(domain.BirthLayout, at)
				if err != nil {
					return fmt.Errorf("invalid --at date: %w", err)
				}
				now = t
			}

			out := cmd.OutOrStdout()

			parsed, err := usecase.ParseBirth(birth)
			if err == nil {
				u.Birth = parsed
				err = validation.ValidateUser(&u, now)
			}
			if err != nil {
				code, _ := validation.CodeOf(err)
				if field := validation.FieldOf(err); field != "" {
					fmt.Fprintf(out, "%s (%s)\n", code, field)
				} else {
					fmt.Fprintln(out, code)
				}
				return fmt.Errorf("%w: %s", ErrRejected, code)
			}

			fmt.Fprintln(out, "valid")
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&u.FirstName, "first-name", "", "first name")
	f.StringVar(&u.LastName, "last-name", "", "last name")
	f.StringVar(&u.Email, "email", "", "email address")
	f.StringVar(&birth, "birth", "", "birth date (YYYY-MM-DD)")
	f.StringVar(&u.PostalCode, "postal-code", "", "postal code")
	f.StringVar(&u.City, "city", "", "city (not validated)")
	f.StringVar(&at, "at", "", "reference date for the age rule (YYYY-MM-DD, default today)")

	return cmd
}
