package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"

	"portal-berita/internal/config"
	"portal-berita/internal/service"
)

func TestSeedCommand(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "portal.db")
	t.Setenv("PORTAL_DATABASE_DRIVER", "sqlite")
	t.Setenv("PORTAL_DATABASE_PATH", dbPath)
	t.Setenv("PORTAL_LOG_LEVEL", "error")

	for i := 0; i < 2; i++ {
		cmd := newRootCommand()
		cmd.SetArgs([]string{"seed"})
		if err := cmd.ExecuteContext(context.Background()); err != nil {
			t.Fatalf("seed run %d: %v", i+1, err)
		}
	}

	a := &app{logger: logrus.New()}
	a.logger.SetLevel(logrus.ErrorLevel)
	a.cfg.Database.Driver = "sqlite"
	a.cfg.Database.Path = dbPath

	st, err := a.openStore(context.Background(), false)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()

	ctx := context.Background()
	if n, _ := st.users.Count(ctx); n != 1 {
		t.Errorf("users = %d, want 1", n)
	}
	if n, _ := st.products.Count(ctx); n != 10 {
		t.Errorf("products = %d, want 10", n)
	}
	user, err := st.users.FindByEmail(ctx, service.DemoUserEmail)
	if err != nil {
		t.Fatalf("find demo user: %v", err)
	}
	if !service.CheckPassword(user.PasswordHash, service.DemoUserPassword) {
		t.Error("demo password does not verify")
	}
}

func TestSeedCommand_RejectsArgs(t *testing.T) {
	t.Setenv("PORTAL_DATABASE_PATH", filepath.Join(t.TempDir(), "portal.db"))

	cmd := newRootCommand()
	cmd.SetArgs([]string{"seed", "extra"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for unexpected argument")
	}
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	a := &app{logger: logrus.New()}
	a.cfg.Database.Driver = "oracle"

	if _, err := a.openStore(context.Background(), false); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestNewLogger(t *testing.T) {
	var cfg config.Config
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger, err := newLogger(cfg)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	if logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", logger.GetLevel())
	}
	if _, ok := logger.Formatter.(*logrus.JSONFormatter); !ok {
		t.Errorf("formatter = %T, want *logrus.JSONFormatter", logger.Formatter)
	}

	cfg.Log.Format = "xml"
	if _, err := newLogger(cfg); err == nil {
		t.Error("expected error for unsupported format")
	}

	cfg.Log.Format = "text"
	cfg.Log.Level = "loud"
	if _, err := newLogger(cfg); err == nil {
		t.Error("expected error for bad level")
	}
}
