package provider

import (
	"context"
	"database/sql/driver"
	"reflect"
	"time"
)

// Services is the driver-services contract: the extension point a data
// access runtime uses to build commands, resolve manifests and manage the
// database itself for one kind of store.
//
// Connections passed in are plain driver connections. Callers holding a
// decorated connection must unwrap it first.
type Services interface {
	CreateCommandDefinition(prototype Command) (CommandDefinition, error)
	CreateCommandDefinitionFromTree(manifest Manifest, tree *CommandTree) (CommandDefinition, error)

	ProviderManifest(manifestToken string) (Manifest, error)
	ProviderManifestToken(ctx context.Context, conn driver.Conn) (string, error)

	// The lifecycle operations bound each command by commandTimeout when
	// it is non-nil.
	CreateDatabase(ctx context.Context, conn driver.Conn, commandTimeout *time.Duration, items *StoreItems) error
	DeleteDatabase(ctx context.Context, conn driver.Conn, commandTimeout *time.Duration, items *StoreItems) error
	CreateDatabaseScript(manifestToken string, items *StoreItems) (string, error)
	DatabaseExists(ctx context.Context, conn driver.Conn, commandTimeout *time.Duration, items *StoreItems) (bool, error)

	// ResolveService returns the service registered for t and key, or nil.
	ResolveService(t reflect.Type, key any) any
	ResolveServices(t reflect.Type, key any) []any
}

// SpatialReaderProvider is implemented by services that read spatial
// values from results.
type SpatialReaderProvider interface {
	SpatialDataReader(rows driver.Rows, manifestToken string) (SpatialDataReader, error)
}

// SpatialServicesProvider is implemented by services that build spatial
// values for a manifest.
//
// Deprecated: resolve SpatialServices through ResolveService instead.
type SpatialServicesProvider interface {
	SpatialServices(manifestToken string) SpatialServices
}

// ParameterBinder is implemented by services that bind values in a
// provider-specific way.
type ParameterBinder interface {
	SetParameterValue(p *Parameter, typ TypeUsage, value any) error
}

// DefaultSpatialDataReader is used for services without a spatial reader.
// It has none to offer.
func DefaultSpatialDataReader(driver.Rows, string) (SpatialDataReader, error) {
	return nil, nil
}

// DefaultSpatialServices is used for services without spatial services.
func DefaultSpatialServices(string) SpatialServices {
	return nil
}

// SetParameterValue is the default binding: it stores value and copies the
// facets of typ onto p.
func SetParameterValue(p *Parameter, typ TypeUsage, value any) error {
	if p == nil {
		return ErrNilParameter
	}
	p.Value = value
	p.Kind = typ.Kind
	p.Nullable = typ.Nullable
	if typ.MaxLength > 0 {
		p.Size = typ.MaxLength
	}
	return nil
}

// Base supplies the parts of Services that rarely differ between stores.
// Embed it and implement the rest.
type Base struct {
	Resolvers
}

// CreateCommandDefinition implements Services.
func (*Base) CreateCommandDefinition(prototype Command) (CommandDefinition, error) {
	return NewCommandDefinition(prototype)
}

// ResolveService implements Services.
func (b *Base) ResolveService(t reflect.Type, key any) any {
	v, _ := b.Resolvers.Resolve(t, key)
	return v
}

// ResolveServices implements Services.
func (b *Base) ResolveServices(t reflect.Type, key any) []any {
	return b.Resolvers.ResolveAll(t, key)
}
