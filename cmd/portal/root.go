package main

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"portal-berita/internal/config"
	"portal-berita/internal/database"
	"portal-berita/internal/repository"
	"portal-berita/internal/repository/postgres"
	"portal-berita/internal/repository/sqlite"
)

type app struct {
	configFile string
	cfg        config.Config
	logger     *logrus.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "portal",
		Short:         "Portal Berita API server and database tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logger
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "path to a config file")

	root.AddCommand(
		newServeCommand(a),
		newSeedCommand(a),
		newMigrateCommand(a),
	)
	return root
}

func newLogger(cfg config.Config) (*logrus.Logger, error) {
	logger := logrus.New()

	switch strings.ToLower(cfg.Log.Format) {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unsupported log format %q", cfg.Log.Format)
	}

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	logger.SetLevel(level)
	return logger, nil
}

// store bundles the database handle with the repositories built on it.
type store struct {
	db       *sql.DB
	users    repository.UserRepository
	products repository.ProductRepository
}

func (s *store) Close() error {
	return s.db.Close()
}

func (a *app) openStore(ctx context.Context, migrate bool) (*store, error) {
	var (
		db  *sql.DB
		err error
		s   = &store{}
	)

	switch a.cfg.Database.Driver {
	case database.DriverSQLite:
		db, err = sqlite.Open(a.cfg.Database.Path)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		s.users = sqlite.NewUserRepository(db)
		s.products = sqlite.NewProductRepository(db)
		a.logger.Infof("using sqlite database %s", a.cfg.Database.Path)
	case database.DriverPostgres:
		db, err = postgres.Open(ctx, a.cfg.Database.URL)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		s.users = postgres.NewUserRepository(db)
		s.products = postgres.NewProductRepository(db)
		a.logger.Info("using postgres database")
	default:
		return nil, fmt.Errorf("unsupported database driver %q", a.cfg.Database.Driver)
	}
	s.db = db

	if migrate {
		if err := database.Migrate(ctx, db, a.cfg.Database.Driver, a.logger); err != nil {
			db.Close()
			return nil, err
		}
	}
	return s, nil
}
