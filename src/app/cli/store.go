package cli

import (
	"context"
	"fmt"
	"log/slog"

	"registration/src/core/ports"
	"registration/src/infra/config"
	"registration/src/infra/db"
	"registration/src/infra/repo"
)

// openStore returns the user store selected by cfg and a function releasing it.
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (ports.UserRepository, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreMemory:
		return repo.NewMemoryRepository(), func() {}, nil

	case config.StoreFile:
		log.Info("using file store", "path", cfg.Store.FilePath)
		return repo.NewFileRepository(cfg.Store.FilePath, log), func() {}, nil

	case config.StorePostgres:
		pg, err := db.New(ctx, cfg.Database, log)
		if err != nil {
			return nil, nil, err
		}
		if cfg.Database.Migrate {
			if err := pg.Migrate(ctx); err != nil {
				pg.Close()
				return nil, nil, err
			}
		}
		return repo.NewPostgresRepository(pg, log), pg.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
