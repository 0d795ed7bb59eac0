package providers

import (
	"log/slog"
	"reflect"
	"sync"

	"github.com/km-arc/go-registry/framework/config"
	"github.com/km-arc/go-registry/framework/inspect"
	"github.com/km-arc/go-registry/framework/logging"
	"github.com/km-arc/go-registry/framework/registry"
	"github.com/km-arc/go-registry/framework/routing"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider binds the process configuration.
//
// Bound keys:
//   - "config" → *config.Config
//
// When Config is nil the configuration is loaded from EnvFiles on first use.
type ConfigServiceProvider struct {
	registry.BaseProvider
	Config   *config.Config
	EnvFiles []string
}

func (p *ConfigServiceProvider) Register(b *registry.Builder) {
	cfg, envFiles := p.Config, p.EnvFiles
	b.Named("config", reflect.TypeFor[*config.Config](), sync.OnceValue(func() any {
		if cfg != nil {
			return cfg
		}
		return config.Load(envFiles...)
	}))
}

// ── LoggingServiceProvider ────────────────────────────────────────────────────

// LoggingServiceProvider binds the process logger.
//
// Bound keys:
//   - "logger" → *slog.Logger
type LoggingServiceProvider struct {
	Logger *slog.Logger
}

func (p *LoggingServiceProvider) Register(b *registry.Builder) {
	l := p.Logger
	if l == nil {
		l = logging.Default()
	}
	b.Named("logger", reflect.TypeFor[*slog.Logger](), func() any { return l })
}

// Boot reports what the registry ended up holding.
func (p *LoggingServiceProvider) Boot(r *registry.Registry) {
	registry.Get[*slog.Logger](r).Info("registry booted",
		"types", len(r.Types()),
		"names", len(r.Names()),
	)
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider binds the HTTP router and mounts the inspection
// routes under Prefix once the registry is built.
//
// Bound keys:
//   - "router" → *routing.Router
type RoutingServiceProvider struct {
	Prefix string // default: "/registry"
	Router *routing.Router
}

func (p *RoutingServiceProvider) Register(b *registry.Builder) {
	router := p.Router
	if router == nil {
		router = routing.New()
	}
	b.Named("router", reflect.TypeFor[*routing.Router](), func() any { return router })
}

func (p *RoutingServiceProvider) Boot(r *registry.Registry) {
	prefix := p.Prefix
	if prefix == "" {
		prefix = "/registry"
	}
	registry.Get[*routing.Router](r).Prefix(prefix, inspect.New(r).Routes)
}
