package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"ritualist/internal/catalog"
	"ritualist/internal/config"
	"ritualist/internal/engine"
	"ritualist/internal/logging"
	"ritualist/internal/storage"
)

type appEnv struct {
	cfg *config.Config
	log zerolog.Logger
	loc *time.Location
}

// loadEnv reads RITUALIST_* settings and applies the global flags on top.
func loadEnv() (*appEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if opts.dbPath != "" {
		cfg.DBPath = opts.dbPath
	}
	if opts.catalogPath != "" {
		cfg.CatalogPath = opts.catalogPath
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	return &appEnv{
		cfg: cfg,
		log: logging.New(cfg.LogLevel, cfg.Development()),
		loc: loc,
	}, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(path)
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	env, err := loadEnv()
	if err != nil {
		return nil, nil, err
	}
	return openServiceWith(ctx, env)
}

// openServiceWith opens the store and runs the startup reset check, so a
// command issued on a new day sees cleared rituals.
func openServiceWith(ctx context.Context, env *appEnv, extra ...engine.Option) (*engine.Service, func(), error) {
	cat, err := loadCatalog(env.cfg.CatalogPath)
	if err != nil {
		return nil, nil, err
	}
	path, err := storage.ResolveDBPath(env.cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}

	options := append([]engine.Option{
		engine.WithLogger(env.log),
		engine.WithLocation(env.loc),
	}, extra...)
	svc := engine.NewService(ctx, storage.NewKVRepo(db), cat, options...)
	engine.NewScheduler(svc, env.cfg.PollInterval, env.log).Tick(ctx)

	env.log.Debug().Str("db", path).Msg("service opened")
	return svc, cleanup, nil
}

// rejection turns a no-op result into a CLI error.
func rejection(r engine.Reason) error {
	return errors.New(r.String())
}

func rejectionf(r engine.Reason, format string, args ...any) error {
	return fmt.Errorf("%s: %s", r.String(), fmt.Sprintf(format, args...))
}
