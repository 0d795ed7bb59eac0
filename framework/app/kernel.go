package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/km-arc/go-registry/framework/config"
	"github.com/km-arc/go-registry/framework/logging"
	"github.com/km-arc/go-registry/framework/providers"
	"github.com/km-arc/go-registry/framework/registry"
	"github.com/km-arc/go-registry/framework/routing"
	"github.com/km-arc/go-registry/framework/values"
)

const shutdownTimeout = 10 * time.Second

// Application owns the provider registry of one process and serves the
// registry it builds.
type Application struct {
	cfg       *config.Config
	log       *slog.Logger
	Providers *registry.ProviderRegistry
}

// New registers the framework providers, a values provider when
// cfg.Registry.ValuesFile is set, and then extra in order.
func New(cfg *config.Config, extra ...registry.ServiceProvider) (*Application, error) {
	a := &Application{
		cfg:       cfg,
		log:       logging.With("component", "app"),
		Providers: registry.NewProviderRegistry(),
	}

	core := []registry.ServiceProvider{
		&providers.ConfigServiceProvider{Config: cfg},
		&providers.LoggingServiceProvider{},
		&providers.RoutingServiceProvider{},
	}
	if path := cfg.Registry.ValuesFile; path != "" {
		vp, err := values.NewProvider(path)
		if err != nil {
			return nil, err
		}
		core = append(core, vp)
	}

	for _, p := range append(core, extra...) {
		if err := a.Register(p); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Register adds a ServiceProvider. It fails with registry.ErrSealed after Boot.
func (a *Application) Register(p registry.ServiceProvider) error {
	return a.Providers.Register(p)
}

// Boot builds the registry and boots every provider. It is idempotent.
func (a *Application) Boot() *registry.Registry {
	return a.Providers.Boot(registry.WithLogger(logging.With("component", "registry")))
}

// Registry returns the booted registry, booting first if needed.
func (a *Application) Registry() *registry.Registry {
	return a.Boot()
}

// Config returns the configuration the application was created with.
func (a *Application) Config() *config.Config { return a.cfg }

// Router resolves the HTTP router from the registry.
func (a *Application) Router() *routing.Router {
	return registry.Get[*routing.Router](a.Registry())
}

// Run boots the application and serves HTTP on cfg.HTTP.Addr until ctx is
// done, then shuts the server down gracefully.
func (a *Application) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.cfg.HTTP.Addr,
		Handler:           a.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("listening", "addr", srv.Addr, "app", a.cfg.App.Name, "env", a.cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return <-errCh
}

// Environment returns APP_ENV.
func (a *Application) Environment() string { return a.cfg.App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsTesting() bool     { return a.Environment() == "testing" }
func (a *Application) IsDebug() bool       { return a.cfg.App.Debug }
