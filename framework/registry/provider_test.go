package registry_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/km-arc/go-registry/framework/registry"
)

// ── stub providers ────────────────────────────────────────────────────────────

type eagerProvider struct {
	registry.BaseProvider
	registerCalled int
	booted         *registry.Registry
}

func (p *eagerProvider) Register(b *registry.Builder) {
	p.registerCalled++
	b.Instance("eager-svc", "eager")
}

func (p *eagerProvider) Boot(r *registry.Registry) {
	p.booted = r
}

// multiProvider registers multiple names.
type multiProvider struct {
	registry.BaseProvider
}

func (p *multiProvider) Register(b *registry.Builder) {
	b.Instance("alpha", "α")
	b.Instance("beta", "β")
}

// ── ProviderRegistry ──────────────────────────────────────────────────────────

func TestProviders_RegisterCalledImmediately(t *testing.T) {
	pr := registry.NewProviderRegistry()

	p := &eagerProvider{}
	if err := pr.Register(p); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if p.registerCalled != 1 {
		t.Errorf("Register() calls: got %d, want 1", p.registerCalled)
	}
}

func TestProviders_BootCalledWithBuiltRegistry(t *testing.T) {
	pr := registry.NewProviderRegistry()
	p := &eagerProvider{}
	_ = pr.Register(p)

	if p.booted != nil {
		t.Error("Boot() should NOT be called before registry Boot()")
	}

	reg := pr.Boot(quiet())

	if p.booted != reg {
		t.Error("Boot() should receive the built registry")
	}
	if got := reg.GetByName("eager-svc").(string); got != "eager" {
		t.Errorf("eager-svc: got %q, want 'eager'", got)
	}
}

func TestProviders_Boot_Idempotent(t *testing.T) {
	pr := registry.NewProviderRegistry()
	_ = pr.Register(&eagerProvider{})

	if pr.Booted() {
		t.Error("Booted() should be false before Boot()")
	}
	if pr.Registry() != nil {
		t.Error("Registry() should be nil before Boot()")
	}

	first := pr.Boot(quiet())
	second := pr.Boot(quiet())

	if first != second {
		t.Error("second Boot() should return the first registry")
	}
	if !pr.Booted() || pr.Registry() != first {
		t.Error("Booted()/Registry() should reflect the first Boot()")
	}
}

func TestProviders_DuplicateRegisterIgnored(t *testing.T) {
	pr := registry.NewProviderRegistry()

	p := &eagerProvider{}
	_ = pr.Register(p)
	_ = pr.Register(p)

	if p.registerCalled != 1 {
		t.Errorf("Register() calls: got %d, want 1", p.registerCalled)
	}
	if len(pr.Providers()) != 1 {
		t.Errorf("Providers(): got %d, want 1", len(pr.Providers()))
	}
}

func TestProviders_RegisterAfterBootIsSealed(t *testing.T) {
	pr := registry.NewProviderRegistry()
	pr.Boot(quiet())

	p := &eagerProvider{}
	err := pr.Register(p)

	if !errors.Is(err, registry.ErrSealed) {
		t.Errorf("Register after Boot: got %v, want ErrSealed", err)
	}
	if p.registerCalled != 0 {
		t.Error("sealed registry should not call Register()")
	}
}

func TestProviders_MultipleProviders_AllResolvable(t *testing.T) {
	pr := registry.NewProviderRegistry()
	_ = pr.Register(&multiProvider{})
	_ = pr.Register(&eagerProvider{})
	reg := pr.Boot(quiet())

	for name, want := range map[string]string{"alpha": "α", "beta": "β", "eager-svc": "eager"} {
		if got := reg.GetByName(name).(string); got != want {
			t.Errorf("%s: got %q, want %q", name, got, want)
		}
	}
}

func TestBaseProvider_BootIsNoop(t *testing.T) {
	var p registry.BaseProvider
	p.Boot(nil)
}

// ── Builder ───────────────────────────────────────────────────────────────────

func TestBuilder_Build(t *testing.T) {
	b := registry.NewBuilder()
	registry.Provide(b, func() *Dog { return &Dog{Name: "provided"} })
	b.Instance("greeting", "hello")
	b.Named("fallback", nil, func() any { return "any" })
	b.Bind(catT, nil)

	if b.Len() != 4 {
		t.Fatalf("Len(): got %d, want 4", b.Len())
	}

	reg := b.Build(quiet())

	if got := registry.Get[*Dog](reg).Name; got != "provided" {
		t.Errorf("*Dog: got %q, want 'provided'", got)
	}
	if got := reg.GetByName("greeting"); got != "hello" {
		t.Errorf("greeting: got %v, want 'hello'", got)
	}
	if got, _ := reg.GetNamed(dogT, "fallback"); got != "any" {
		t.Errorf("fallback: got %v, want 'any'", got)
	}
	if _, ok := reg.Get(catT).(*Cat); !ok {
		t.Error("type-only binding should construct *Cat")
	}
}

func TestBuilder_BuildSnapshots(t *testing.T) {
	b := registry.NewBuilder().Add(registry.Value(&Dog{}))
	reg := b.Build(quiet())

	b.Add(registry.Value(&Cat{}))

	if reg.Has(catT) {
		t.Error("registry should not see bindings added after Build()")
	}
	if !b.Build(quiet()).Has(catT) {
		t.Error("a new Build() should see the added binding")
	}
	if len(b.Bindings()) != 2 {
		t.Errorf("Bindings(): got %d, want 2", len(b.Bindings()))
	}
}

func TestBuilder_NilTypeBindIsIgnoredByTypeIndex(t *testing.T) {
	reg := registry.NewBuilder().Bind(reflect.Type(nil), nil).Build(quiet())

	if len(reg.Types()) != 0 || len(reg.Names()) != 0 {
		t.Error("a binding with no type, value or name should register nothing")
	}
}
