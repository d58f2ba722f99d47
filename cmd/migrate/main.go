// cmd/migrate/main.go
package main

import (
	"errors"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/Bomfimdev/controle-financeiro/internal/config"
	"github.com/Bomfimdev/controle-financeiro/internal/util"
)

func main() {
	util.InitLogger()
	logger := util.GetLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	m, err := migrate.New("file://migrations", cfg.DB.URL())
	if err != nil {
		logger.Error("Failed to create migrator", "error", err)
		os.Exit(1)
	}

	preVersion, _, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		logger.Error("Failed to read current migration version", "error", err)
		os.Exit(1)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		logger.Error("Migration failed", "error", err)
		os.Exit(1)
	}

	postVersion, _, err := m.Version()
	if err != nil {
		logger.Error("Failed to read post-migration version", "error", err)
		os.Exit(1)
	}

	logger.Info("Migration status", "preVersion", preVersion, "postVersion", postVersion)
}
