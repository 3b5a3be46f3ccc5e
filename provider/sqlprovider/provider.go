package sqlprovider

import (
	"database/sql/driver"
	"fmt"

	"github.com/kroma-labs/sentinel-profiler/provider"
)

// Provider implements provider.Services for one SQL dialect on top of plain
// driver connections.
type Provider struct {
	provider.Base

	dialect *dialect
	spatial *SpatialServices
}

var (
	_ provider.Services                = (*Provider)(nil)
	_ provider.SpatialReaderProvider   = (*Provider)(nil)
	_ provider.SpatialServicesProvider = (*Provider)(nil)
	_ provider.ParameterBinder         = (*Provider)(nil)
)

var (
	// SQLite serves modernc.org/sqlite connections.
	SQLite = newProvider(sqliteDialect)

	// Postgres serves PostgreSQL connections, such as those of
	// github.com/jackc/pgx/v5/stdlib. Spatial types need PostGIS.
	Postgres = newProvider(postgresDialect)

	// MySQL serves github.com/go-sql-driver/mysql connections.
	MySQL = newProvider(mysqlDialect)
)

func init() {
	provider.Register(SQLite.Name(), SQLite)
	provider.Register(Postgres.Name(), Postgres)
	provider.Register(MySQL.Name(), MySQL)
}

func newProvider(d *dialect) *Provider {
	p := &Provider{dialect: d, spatial: &SpatialServices{}}
	provider.AddService[provider.SpatialServices](&p.Resolvers, p.spatial)
	return p
}

// Name returns the dialect name the provider is registered under.
func (p *Provider) Name() string {
	return p.dialect.name
}

// ProviderManifest returns the manifest for a token of this dialect.
func (p *Provider) ProviderManifest(manifestToken string) (provider.Manifest, error) {
	if err := p.checkToken(manifestToken); err != nil {
		return nil, err
	}
	return &manifest{token: manifestToken, dialect: p.dialect}, nil
}

func (p *Provider) checkToken(token string) error {
	name, _, err := provider.ParseManifestToken(token)
	if err != nil {
		return err
	}
	if name != p.dialect.name {
		return fmt.Errorf("%w: %q is not a %s token", provider.ErrUnknownManifestToken, token, p.dialect.name)
	}
	return nil
}

// SpatialDataReader implements provider.SpatialReaderProvider.
func (p *Provider) SpatialDataReader(rows driver.Rows, manifestToken string) (provider.SpatialDataReader, error) {
	if err := p.checkToken(manifestToken); err != nil {
		return nil, err
	}
	return NewSpatialReader(rows), nil
}

// SpatialServices implements provider.SpatialServicesProvider.
//
// Deprecated: resolve provider.SpatialServices with provider.Resolve.
func (p *Provider) SpatialServices(string) provider.SpatialServices {
	return p.spatial
}

// SetParameterValue binds spatial values as text the store can parse and
// everything else as provider.SetParameterValue does.
func (p *Provider) SetParameterValue(param *provider.Parameter, typ provider.TypeUsage, value any) error {
	switch v := value.(type) {
	case provider.Geography:
		value = p.dialect.spatialText(v.SRID, v.WKT)
	case *provider.Geography:
		if v != nil {
			value = p.dialect.spatialText(v.SRID, v.WKT)
		}
	case provider.Geometry:
		value = p.dialect.spatialText(v.SRID, v.WKT)
	case *provider.Geometry:
		if v != nil {
			value = p.dialect.spatialText(v.SRID, v.WKT)
		}
	}
	return provider.SetParameterValue(param, typ, value)
}

type manifest struct {
	token   string
	dialect *dialect
}

func (m *manifest) Token() string {
	return m.token
}

func (m *manifest) StoreType(typ provider.TypeUsage) (string, bool) {
	return m.dialect.storeType(typ)
}
