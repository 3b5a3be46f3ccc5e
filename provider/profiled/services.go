package profiled

import (
	"context"
	"database/sql/driver"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/kroma-labs/sentinel-profiler/provider"
	sentinelsql "github.com/kroma-labs/sentinel-profiler/sql"
	"github.com/rs/zerolog"
)

// Services intercepts a provider's driver services. Connections and readers
// are unwrapped before they reach the provider, and commands built from
// command trees come back decorated with ProfiledCommand.
//
// Services is immutable and safe for concurrent use.
type Services struct {
	name   string
	inner  provider.Services
	in     *sentinelsql.Instrumenter
	logger zerolog.Logger
}

var (
	_ provider.Services                = (*Services)(nil)
	_ provider.SpatialReaderProvider   = (*Services)(nil)
	_ provider.SpatialServicesProvider = (*Services)(nil)
	_ provider.ParameterBinder         = (*Services)(nil)
)

// New intercepts the services registered under name. The error wraps
// provider.ErrNotRegistered when there are none; retrying will not help.
func New(name string, opts ...sentinelsql.Option) (*Services, error) {
	inner, err := provider.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("profiled: %w", err)
	}
	return newServices(name, inner, opts), nil
}

// MustNew is New that panics on error.
func MustNew(name string, opts ...sentinelsql.Option) *Services {
	s, err := New(name, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Wrap intercepts services the caller already holds. A nil services value,
// typed nil included, fails with provider.ErrNotRegistered.
func Wrap(services provider.Services, opts ...sentinelsql.Option) (*Services, error) {
	if provider.IsNil(services) {
		return nil, fmt.Errorf("profiled: nil services: %w", provider.ErrNotRegistered)
	}
	return newServices(fmt.Sprintf("%T", services), services, opts), nil
}

func newServices(name string, inner provider.Services, opts []sentinelsql.Option) *Services {
	in := sentinelsql.NewInstrumenter(opts...)
	return &Services{
		name:   name,
		inner:  inner,
		in:     in,
		logger: in.Logger().With().Str("provider", name).Logger(),
	}
}

var (
	instancesMu sync.RWMutex
	instances   = make(map[string]*Services)
)

// Instance returns the process-wide Services for name, creating it on first
// use. opts only apply to that first call. Failures are not cached, so a
// provider registered later can still be found.
func Instance(name string, opts ...sentinelsql.Option) (*Services, error) {
	instancesMu.RLock()
	s, ok := instances[name]
	instancesMu.RUnlock()
	if ok {
		return s, nil
	}

	instancesMu.Lock()
	defer instancesMu.Unlock()
	if s, ok := instances[name]; ok {
		return s, nil
	}
	s, err := New(name, opts...)
	if err != nil {
		return nil, err
	}
	instances[name] = s
	return s, nil
}

// Name returns the provider name the services were resolved with.
func (s *Services) Name() string {
	return s.name
}

// Unwrap returns the intercepted services.
func (s *Services) Unwrap() provider.Services {
	return s.inner
}

// WrapCommand decorates cmd with this adapter's instrumentation.
func (s *Services) WrapCommand(cmd provider.Command) *ProfiledCommand {
	return NewCommand(cmd, s.in)
}

func (s *Services) CreateCommandDefinition(prototype provider.Command) (provider.CommandDefinition, error) {
	return s.inner.CreateCommandDefinition(prototype)
}

// CreateCommandDefinitionFromTree lets the provider render tree, then
// re-derives the definition from a decorated command so that every command
// it creates is profiled.
func (s *Services) CreateCommandDefinitionFromTree(
	manifest provider.Manifest,
	tree *provider.CommandTree,
) (provider.CommandDefinition, error) {
	def, err := s.inner.CreateCommandDefinitionFromTree(manifest, tree)
	if err != nil {
		return nil, err
	}
	cmd, err := def.CreateCommand()
	if err != nil {
		return nil, err
	}
	return s.CreateCommandDefinition(s.WrapCommand(cmd))
}

func (s *Services) ProviderManifest(manifestToken string) (provider.Manifest, error) {
	return s.inner.ProviderManifest(manifestToken)
}

func (s *Services) ProviderManifestToken(ctx context.Context, conn driver.Conn) (string, error) {
	return s.inner.ProviderManifestToken(ctx, sentinelsql.RealConn(conn))
}

func (s *Services) CreateDatabase(
	ctx context.Context,
	conn driver.Conn,
	commandTimeout *time.Duration,
	items *provider.StoreItems,
) error {
	return s.inner.CreateDatabase(ctx, sentinelsql.RealConn(conn), commandTimeout, items)
}

func (s *Services) DeleteDatabase(
	ctx context.Context,
	conn driver.Conn,
	commandTimeout *time.Duration,
	items *provider.StoreItems,
) error {
	return s.inner.DeleteDatabase(ctx, sentinelsql.RealConn(conn), commandTimeout, items)
}

func (s *Services) CreateDatabaseScript(manifestToken string, items *provider.StoreItems) (string, error) {
	return s.inner.CreateDatabaseScript(manifestToken, items)
}

func (s *Services) DatabaseExists(
	ctx context.Context,
	conn driver.Conn,
	commandTimeout *time.Duration,
	items *provider.StoreItems,
) (bool, error) {
	return s.inner.DatabaseExists(ctx, sentinelsql.RealConn(conn), commandTimeout, items)
}

func (s *Services) ResolveService(t reflect.Type, key any) any {
	return s.inner.ResolveService(t, key)
}

func (s *Services) ResolveServices(t reflect.Type, key any) []any {
	return s.inner.ResolveServices(t, key)
}

// SpatialDataReader hands the real reader to the provider. Providers
// without spatial support yield a nil reader and no error.
//
// When the provider's reader is itself a driver.Rows, the returned reader
// still advances it, but read failures mark the profiler timing of rows as
// errored, and closing the returned reader closes rows.
func (s *Services) SpatialDataReader(rows driver.Rows, manifestToken string) (provider.SpatialDataReader, error) {
	driverRows := sentinelsql.RealRows(rows)
	p, ok := s.inner.(provider.SpatialReaderProvider)
	if !ok {
		s.fallback("SpatialDataReader")
		return provider.DefaultSpatialDataReader(driverRows, manifestToken)
	}

	reader, err := p.SpatialDataReader(driverRows, manifestToken)
	if err != nil || reader == nil {
		return reader, err
	}
	if _, decorated := rows.(interface{ Unwrap() driver.Rows }); !decorated {
		return reader, nil
	}
	if r, ok := reader.(driver.Rows); ok {
		return &observedReader{SpatialDataReader: reader, rows: r, decorated: rows}, nil
	}
	return reader, nil
}

// SpatialServices forwards to the provider, or returns nil when it has none.
//
// Deprecated: resolve provider.SpatialServices with provider.Resolve.
func (s *Services) SpatialServices(manifestToken string) provider.SpatialServices {
	if p, ok := s.inner.(provider.SpatialServicesProvider); ok {
		return p.SpatialServices(manifestToken) //nolint:staticcheck // forwarding the deprecated capability
	}
	s.fallback("SpatialServices")
	return provider.DefaultSpatialServices(manifestToken)
}

// SetParameterValue lets the provider bind value. Without a binder,
// spatial values are replaced by their provider value and bound by
// provider.SetParameterValue.
func (s *Services) SetParameterValue(p *provider.Parameter, typ provider.TypeUsage, value any) error {
	if b, ok := s.inner.(provider.ParameterBinder); ok {
		return b.SetParameterValue(p, typ, value)
	}
	s.fallback("SetParameterValue")
	return provider.SetParameterValue(p, typ, providerValue(value))
}

func providerValue(value any) any {
	switch v := value.(type) {
	case provider.Geography:
		return v.ProviderValue()
	case *provider.Geography:
		if v != nil {
			return v.ProviderValue()
		}
	case provider.Geometry:
		return v.ProviderValue()
	case *provider.Geometry:
		if v != nil {
			return v.ProviderValue()
		}
	}
	return value
}

func (s *Services) fallback(capability string) {
	s.logger.Debug().
		Str("capability", capability).
		Msg("provider lacks capability, using default")
}
