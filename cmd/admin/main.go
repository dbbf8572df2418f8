package main

import (
	"context"
	"os"

	"github.com/qmexai/ramadandata/internal/bootstrap"
	"github.com/qmexai/ramadandata/internal/db"
	"github.com/qmexai/ramadandata/internal/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, _, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		os.Exit(1)
	}
	lgr := logger.Component("admin")

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		os.Exit(1)
	}
	defer pool.Close()

	deps, err := bootstrap.BuildServices(cfg, pool, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to build services")
		pool.Close()
		os.Exit(1)
	}

	cl := newCommandLine(deps.UserService, func(ctx context.Context) error {
		return bootstrap.RunMigrations(ctx, pool, lgr)
	})
	if err := cl.run(ctx, os.Args); err != nil {
		lgr.Error().Err(err).Msg("Command failed")
		pool.Close()
		os.Exit(1)
	}
}
