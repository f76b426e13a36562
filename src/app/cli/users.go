package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"registration/src/core/usecase"
	"registration/src/infra/config"
	"registration/src/infra/logger"
)

func newUsersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "Print the registered users of the configured store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			log := logger.NewWithWriter(cfg.Log, cmd.ErrOrStderr())
			users, closeStore, err := openStore(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer closeStore()

			dir, err := usecase.NewRegistrationService(users, log).Directory(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d registered user(s)\n", dir.Count)

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, u := range dir.Users {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.FirstName, u.LastName, u.Email, u.City)
			}
			return w.Flush()
		},
	}
}
