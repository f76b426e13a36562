// Package cli implements the registration command line: the HTTP server and
// offline tools over the validation engine and the user store.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "registration",
		Short:         "User registration service",
		Long:          "Validates registration forms and keeps the list of registered users.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCommand(),
		newValidateCommand(),
		newUsersCommand(),
	)
	return root
}
