// Package bootstrap wires configuration, logging, the REST transport, and
// the services into a ready-to-use application object.
package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/modista/modista-go/config"
	"github.com/modista/modista-go/internal/adapters/assets"
	"github.com/modista/modista-go/internal/adapters/rest"
	"github.com/modista/modista-go/internal/ports"
	"github.com/modista/modista-go/internal/service"
	"github.com/modista/modista-go/internal/transport"
)

// App holds the wired application services.
type App struct {
	Config config.AppConfig
	Logger *slog.Logger

	Session   *service.Session
	Directory *service.Directory
	Reconcile *service.Reconciler
	Admin     *service.AdminDispatcher

	// Assets is nil when no asset store is configured.
	Assets ports.AssetStore
}

// NewApp wires the transport, adapters, and services from a sanitized config.
func NewApp(cfg config.AppConfig, logger *slog.Logger) (*App, error) {
	tc, err := transport.New(transport.Config{
		BaseURL:        cfg.API.BaseURL,
		Timeout:        cfg.API.Timeout,
		CSRFCookieName: cfg.API.CSRFCookieName,
		CSRFHeaderName: cfg.API.CSRFHeaderName,
		CSRFWarmupPath: cfg.API.CSRFWarmupPath,
		Logger:         logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create transport: %w", err)
	}

	account := rest.NewAccountClient(tc)
	directoryAPI := rest.NewDirectoryClient(tc)
	adminAPI := rest.NewAdminClient(tc)

	session := service.NewSession(service.SessionOptions{
		API:    account,
		Logger: logger,
	})
	directory := service.NewDirectory(service.DirectoryOptions{
		Directory: directoryAPI,
		Admin:     adminAPI,
		Session:   session,
		Logger:    logger,
	})
	session.SetCaches(directory)

	reconciler := service.NewReconciler(service.ReconcilerOptions{
		API:     account,
		Session: session,
		Logger:  logger,
	})
	admin := service.NewAdminDispatcher(service.AdminDispatcherOptions{
		API:       adminAPI,
		Directory: directory,
		Session:   session,
		Logger:    logger,
	})

	app := &App{
		Config:    cfg,
		Logger:    logger,
		Session:   session,
		Directory: directory,
		Reconcile: reconciler,
		Admin:     admin,
	}

	if cfg.Assets.IsEnabled() {
		store, err := assets.NewStore(assets.Config{
			BaseURL: cfg.Assets.BaseURL,
			Timeout: cfg.Assets.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("create asset store: %w", err)
		}
		app.Assets = store
	}

	return app, nil
}
