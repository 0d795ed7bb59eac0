package registry

import "sync"

// ── ServiceProvider interface ─────────────────────────────────────────────────

// ServiceProvider contributes bindings to a registry.
//
// Register runs while the registry is still being assembled and must only
// add bindings. Boot runs once every provider has registered and the
// registry has been built, so it may resolve anything.
//
//	type MailProvider struct{ registry.BaseProvider }
//
//	func (p *MailProvider) Register(b *registry.Builder) {
//	    registry.Provide(b, func() *Mailer { return NewMailer() })
//	}
//
//	func (p *MailProvider) Boot(r *registry.Registry) {
//	    registry.Get[*Mailer](r).Warmup()
//	}
type ServiceProvider interface {
	Register(b *Builder)
	Boot(r *Registry)
}

// BaseProvider is an embeddable no-op Boot.
type BaseProvider struct{}

func (p *BaseProvider) Boot(_ *Registry) {}

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry runs the Register phase of each provider against a shared
// Builder, builds the Registry once, then boots every provider against it.
type ProviderRegistry struct {
	mu         sync.Mutex
	builder    *Builder
	providers  []ServiceProvider
	registered map[ServiceProvider]bool
	registry   *Registry
}

// NewProviderRegistry creates a provider registry with an empty Builder.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		builder:    NewBuilder(),
		registered: make(map[ServiceProvider]bool),
	}
}

// Register runs provider.Register. Registering the same provider twice is a
// no-op; registering after Boot returns ErrSealed.
func (pr *ProviderRegistry) Register(provider ServiceProvider) error {
	pr.mu.Lock()
	defer pr.mu.Unlock()

	if pr.registry != nil {
		return ErrSealed
	}
	if pr.registered[provider] {
		return nil
	}
	pr.registered[provider] = true

	provider.Register(pr.builder)
	pr.providers = append(pr.providers, provider)
	return nil
}

// Boot builds the registry and boots every provider in registration order.
// Later calls return the registry built by the first.
func (pr *ProviderRegistry) Boot(opts ...Option) *Registry {
	pr.mu.Lock()
	if pr.registry != nil {
		defer pr.mu.Unlock()
		return pr.registry
	}
	pr.registry = pr.builder.Build(opts...)
	providers := pr.providers
	pr.mu.Unlock()

	for _, p := range providers {
		p.Boot(pr.registry)
	}
	return pr.registry
}

// Booted reports whether Boot has been called.
func (pr *ProviderRegistry) Booted() bool {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	return pr.registry != nil
}

// Registry returns the built registry, or nil before Boot.
func (pr *ProviderRegistry) Registry() *Registry {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	return pr.registry
}

// Providers returns the registered providers in order.
func (pr *ProviderRegistry) Providers() []ServiceProvider {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	return append([]ServiceProvider(nil), pr.providers...)
}
