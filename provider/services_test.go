package provider_test

import (
	"reflect"
	"testing"

	"github.com/kroma-labs/sentinel-profiler/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSpatial struct{ name string }

func (fakeSpatial) GeographyFromText(wkt string, srid int) (provider.Geography, error) {
	return provider.Geography{SRID: srid, WKT: wkt}, nil
}

func (fakeSpatial) GeometryFromText(wkt string, srid int) (provider.Geometry, error) {
	return provider.Geometry{SRID: srid, WKT: wkt}, nil
}

// baseOnly is the smallest Services built on Base.
type baseOnly struct {
	provider.Base
	provider.Services
}

func newBaseOnly() *baseOnly {
	return &baseOnly{}
}

func (b *baseOnly) CreateCommandDefinition(prototype provider.Command) (provider.CommandDefinition, error) {
	return b.Base.CreateCommandDefinition(prototype)
}

func (b *baseOnly) ResolveService(t reflect.Type, key any) any {
	return b.Base.ResolveService(t, key)
}

func (b *baseOnly) ResolveServices(t reflect.Type, key any) []any {
	return b.Base.ResolveServices(t, key)
}

func TestSetParameterValue(t *testing.T) {
	tests := []struct {
		name    string
		param   *provider.Parameter
		typ     provider.TypeUsage
		value   any
		want    *provider.Parameter
		wantErr error
	}{
		{
			name:  "given string usage with max length, then copies value and facets",
			param: &provider.Parameter{Name: "p0"},
			typ:   provider.TypeUsage{Kind: provider.KindString, Nullable: true, MaxLength: 64},
			value: "bob",
			want:  &provider.Parameter{Name: "p0", Value: "bob", Kind: provider.KindString, Nullable: true, Size: 64},
		},
		{
			name:  "given unbounded usage, then keeps the existing size",
			param: &provider.Parameter{Name: "p1", Size: 8},
			typ:   provider.TypeUsage{Kind: provider.KindInt64},
			value: int64(3),
			want:  &provider.Parameter{Name: "p1", Value: int64(3), Kind: provider.KindInt64, Size: 8},
		},
		{
			name:    "given nil parameter, then returns ErrNilParameter",
			typ:     provider.TypeUsage{Kind: provider.KindInt64},
			wantErr: provider.ErrNilParameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := provider.SetParameterValue(tt.param, tt.typ, tt.value)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, tt.param)
		})
	}
}

func TestDefaults(t *testing.T) {
	t.Run("given no capability, then defaults return nothing and no error", func(t *testing.T) {
		reader, err := provider.DefaultSpatialDataReader(nil, "sqlite:3")

		assert.NoError(t, err)
		assert.Nil(t, reader)
		assert.Nil(t, provider.DefaultSpatialServices("sqlite:3"))
	})
}

func TestBase_ResolveService(t *testing.T) {
	t.Run("given registered services, then the latest wins and all are listed", func(t *testing.T) {
		svc := newBaseOnly()
		provider.AddService[provider.SpatialServices](&svc.Resolvers, fakeSpatial{name: "first"})
		provider.AddService[provider.SpatialServices](&svc.Resolvers, fakeSpatial{name: "second"})

		got, ok := provider.Resolve[provider.SpatialServices](svc, nil)
		all := provider.ResolveAll[provider.SpatialServices](svc, nil)

		require.True(t, ok)
		assert.Equal(t, fakeSpatial{name: "second"}, got)
		assert.Equal(t, []provider.SpatialServices{fakeSpatial{name: "second"}, fakeSpatial{name: "first"}}, all)
	})

	t.Run("given no matching service, then resolves nothing", func(t *testing.T) {
		svc := newBaseOnly()
		provider.AddService[provider.SpatialServices](&svc.Resolvers, fakeSpatial{})

		got, ok := provider.Resolve[provider.Manifest](svc, nil)

		assert.False(t, ok)
		assert.Nil(t, got)
		assert.Empty(t, provider.ResolveAll[provider.Manifest](svc, nil))
	})

	t.Run("given keyed resolver, then only matching keys resolve", func(t *testing.T) {
		svc := newBaseOnly()
		svc.Add(func(_ reflect.Type, key any) (any, bool) {
			return "postgres-only", key == "postgres"
		})

		assert.Equal(t, "postgres-only", svc.ResolveService(reflect.TypeFor[string](), "postgres"))
		assert.Nil(t, svc.ResolveService(reflect.TypeFor[string](), "mysql"))
	})
}

func TestBase_CreateCommandDefinition(t *testing.T) {
	t.Run("given prototype, then creates clones of it", func(t *testing.T) {
		svc := newBaseOnly()

		def, err := svc.CreateCommandDefinition(provider.NewTextCommand("SELECT 1"))
		require.NoError(t, err)
		cmd, err := def.CreateCommand()

		require.NoError(t, err)
		assert.Equal(t, "SELECT 1", cmd.Text())
	})
}

func TestManifestToken(t *testing.T) {
	tests := []struct {
		name        string
		token       string
		wantDialect string
		wantVersion string
		wantErr     bool
	}{
		{name: "given formatted token, then splits it", token: provider.FormatManifestToken("postgres", "16.2"), wantDialect: "postgres", wantVersion: "16.2"},
		{name: "given version with colons, then keeps them", token: "mysql:8.0.36:log", wantDialect: "mysql", wantVersion: "8.0.36:log"},
		{name: "given token without separator, then fails", token: "sqlite", wantErr: true},
		{name: "given empty dialect, then fails", token: ":3.45", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dialect, version, err := provider.ParseManifestToken(tt.token)

			if tt.wantErr {
				assert.ErrorIs(t, err, provider.ErrUnknownManifestToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDialect, dialect)
			assert.Equal(t, tt.wantVersion, version)
		})
	}
}

func TestCommandTree_ParameterColumns(t *testing.T) {
	tests := []struct {
		name string
		tree provider.CommandTree
		want []string
	}{
		{
			name: "given query, then predicates only",
			tree: provider.CommandTree{Kind: provider.TreeQuery, Columns: []string{"id", "name"}, Predicates: []string{"id"}},
			want: []string{"id"},
		},
		{
			name: "given insert, then columns only",
			tree: provider.CommandTree{Kind: provider.TreeInsert, Columns: []string{"id", "name"}, Predicates: []string{"id"}},
			want: []string{"id", "name"},
		},
		{
			name: "given update, then columns then predicates",
			tree: provider.CommandTree{Kind: provider.TreeUpdate, Columns: []string{"name"}, Predicates: []string{"id"}},
			want: []string{"name", "id"},
		},
		{
			name: "given delete, then predicates only",
			tree: provider.CommandTree{Kind: provider.TreeDelete, Columns: []string{"name"}, Predicates: []string{"id"}},
			want: []string{"id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tree.ParameterColumns())
		})
	}
}

func TestStoreItems_TableNames(t *testing.T) {
	t.Run("given tables, then names keep declaration order", func(t *testing.T) {
		items := &provider.StoreItems{Tables: []provider.TableSchema{{Name: "users"}, {Name: "places"}}}

		assert.Equal(t, []string{"users", "places"}, items.TableNames())
	})

	t.Run("given nil items, then returns nil", func(t *testing.T) {
		var items *provider.StoreItems

		assert.Nil(t, items.TableNames())
	})
}

func TestEWKT(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantSRID int
		wantWKT  string
		wantErr  bool
	}{
		{name: "given EWKT, then splits SRID", text: "SRID=4326;POINT(1 2)", wantSRID: 4326, wantWKT: "POINT(1 2)"},
		{name: "given plain WKT, then SRID is zero", text: " POINT(1 2) ", wantWKT: "POINT(1 2)"},
		{name: "given bad SRID, then fails", text: "SRID=x;POINT(1 2)", wantErr: true},
		{name: "given empty text, then fails", text: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srid, wkt, err := provider.ParseEWKT(tt.text)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSRID, srid)
			assert.Equal(t, tt.wantWKT, wkt)
			if srid != 0 {
				assert.Equal(t, tt.text, provider.EWKT(srid, wkt))
			}
		})
	}
}

func TestGeography_ProviderValue(t *testing.T) {
	t.Run("given native value, then returns it", func(t *testing.T) {
		assert.Equal(t, []byte{1}, provider.Geography{Native: []byte{1}, WKT: "POINT(0 0)"}.ProviderValue())
	})

	t.Run("given text only, then returns EWKT", func(t *testing.T) {
		assert.Equal(t, "SRID=4326;POINT(0 0)", provider.Geography{SRID: provider.DefaultSRID, WKT: "POINT(0 0)"}.ProviderValue())
		assert.Equal(t, "POINT(0 0)", provider.Geometry{WKT: "POINT(0 0)"}.ProviderValue())
	})
}
