package cli

import (
	"github.com/spf13/cobra"

	"registration/src/app/server"
	"registration/src/infra/config"
	"registration/src/infra/logger"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API until SIGINT or SIGTERM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			log := logger.New(cfg.Log)
			log.Info("starting application",
				"port", cfg.Server.Port,
				"store", cfg.Store.Driver,
				"log_level", cfg.Log.Level,
			)

			users, closeStore, err := openStore(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer closeStore()

			srv := server.New(cfg, log, users)

			// Run blocks until shutdown signal is received
			return srv.Run()
		},
	}
}
