package cmd

import (
	"context"
	"fmt"

	"gdkp-ledger/core/config"
	"gdkp-ledger/core/database"
	"gdkp-ledger/core/logger"
	"gdkp-ledger/core/storage"
	"gdkp-ledger/feature/index"
	"gdkp-ledger/feature/ingest"
	"gdkp-ledger/feature/session"

	"go.uber.org/zap"
)

// app bundles the dependencies shared by commands.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
}

func newApp() (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return &app{cfg: cfg, logger: logg}, nil
}

// paths returns the path flags, falling back to configuration.
func (a *app) paths() (add, root, dest string) {
	add, root, dest = addPath, rootPath, destPath
	if add == "" {
		add = a.cfg.Paths.Add
	}
	if root == "" {
		root = a.cfg.Paths.Root
	}
	if dest == "" {
		dest = a.cfg.Paths.Dest
	}
	return add, root, dest
}

// ingestService wires the optional storage and database mirrors.
func (a *app) ingestService(ctx context.Context) (*ingest.Service, error) {
	var opts []ingest.Option

	if a.cfg.Storage.Enabled {
		client, err := storage.NewClient(a.cfg.Storage)
		if err != nil {
			return nil, err
		}
		if err := storage.EnsureBucket(ctx, client, a.cfg.Storage.Bucket, a.cfg.Storage.Region); err != nil {
			return nil, err
		}
		opts = append(opts, ingest.WithObjectMirror(ingest.NewObjectMirror(client, a.cfg.Storage.Bucket)))
		a.logger.Info("Mirroring archive to object storage", zap.String("bucket", a.cfg.Storage.Bucket))
	}

	if a.cfg.Database.Enabled {
		db, err := database.Connect(a.cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("database connection required: %w", err)
		}
		mirror := index.NewGormMirror(db)
		if err := mirror.Migrate(ctx); err != nil {
			return nil, err
		}
		opts = append(opts, ingest.WithIndexOptions(index.WithMirror(mirror)))
		a.logger.Info("Mirroring index to database", zap.String("driver", a.cfg.Database.Driver))
	}

	return ingest.NewService(session.NewParser(a.logger), a.logger, opts...), nil
}
