package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/lifetrack-api/internal/config"
	"github.com/phrazzld/lifetrack-api/internal/platform/postgres"
	"github.com/phrazzld/lifetrack-api/internal/session"
	"github.com/phrazzld/lifetrack-api/internal/syncer"
)

// application holds the assembled dependencies of the running server.
// It is constructed once at startup and shared by the router and the
// HTTP server lifecycle.
type application struct {
	config   *config.Config
	logger   *slog.Logger
	db       *sql.DB
	manager  *syncer.Manager
	verifier session.TokenVerifier
}

// newApplication wires the application dependencies in order:
// database, migrations, token verifier, remote store and sync manager.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupAppDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, logger); err != nil {
		closeDatabase(db, logger)
		return nil, err
	}

	verifier, err := session.NewJWTVerifier(cfg.Auth.JWTSecret)
	if err != nil {
		closeDatabase(db, logger)
		return nil, fmt.Errorf("failed to create token verifier: %w", err)
	}

	remote := postgres.NewRecordStore(db, logger)
	manager := syncer.NewManager(remote, logger)

	return &application{
		config:   cfg,
		logger:   logger,
		db:       db,
		manager:  manager,
		verifier: verifier,
	}, nil
}

// cleanup releases application resources in reverse dependency order.
// The manager is closed first so in-flight writes drain before the
// database connection goes away.
func (app *application) cleanup() {
	app.manager.Close()
	closeDatabase(app.db, app.logger)
}

func closeDatabase(db *sql.DB, logger *slog.Logger) {
	if err := db.Close(); err != nil {
		logger.Error("Failed to close database connection", "error", err)
	}
}
