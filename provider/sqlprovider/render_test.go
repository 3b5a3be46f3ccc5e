package sqlprovider_test

import (
	"testing"

	"github.com/kroma-labs/sentinel-profiler/provider"
	"github.com/kroma-labs/sentinel-profiler/provider/sqlprovider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userTypes = map[string]provider.TypeUsage{
	"id":   {Kind: provider.KindInt64},
	"name": {Kind: provider.KindString, Nullable: true, MaxLength: 64},
}

func TestProvider_CreateCommandDefinitionFromTree(t *testing.T) {
	tests := []struct {
		name     string
		provider *sqlprovider.Provider
		tree     *provider.CommandTree
		want     string
	}{
		{
			name:     "given sqlite query with predicates, order and limit, then renders with question marks",
			provider: sqlprovider.SQLite,
			tree: &provider.CommandTree{
				Kind: provider.TreeQuery, Table: "users", Columns: []string{"id", "name"},
				Predicates: []string{"id", "name"}, OrderBy: []string{"name"}, Limit: 10, Types: userTypes,
			},
			want: `SELECT "id", "name" FROM "users" WHERE "id" = ? AND "name" = ? ORDER BY "name" LIMIT 10`,
		},
		{
			name:     "given query without columns, then selects everything",
			provider: sqlprovider.SQLite,
			tree:     &provider.CommandTree{Kind: provider.TreeQuery, Table: "users"},
			want:     `SELECT * FROM "users"`,
		},
		{
			name:     "given postgres update, then numbers placeholders across set and where",
			provider: sqlprovider.Postgres,
			tree: &provider.CommandTree{
				Kind: provider.TreeUpdate, Table: "users", Columns: []string{"name"}, Predicates: []string{"id"}, Types: userTypes,
			},
			want: `UPDATE "users" SET "name" = $1 WHERE "id" = $2`,
		},
		{
			name:     "given mysql insert, then quotes with backticks",
			provider: sqlprovider.MySQL,
			tree: &provider.CommandTree{
				Kind: provider.TreeInsert, Table: "users", Columns: []string{"id", "name"}, Types: userTypes,
			},
			want: "INSERT INTO `users` (`id`, `name`) VALUES (?, ?)",
		},
		{
			name:     "given postgres delete, then renders predicates",
			provider: sqlprovider.Postgres,
			tree:     &provider.CommandTree{Kind: provider.TreeDelete, Table: "users", Predicates: []string{"id"}},
			want:     `DELETE FROM "users" WHERE "id" = $1`,
		},
		{
			name:     "given identifier with quotes, then escapes them",
			provider: sqlprovider.SQLite,
			tree:     &provider.CommandTree{Kind: provider.TreeDelete, Table: `we"ird`},
			want:     `DELETE FROM "we""ird"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := tt.provider.CreateCommandDefinitionFromTree(nil, tt.tree)
			require.NoError(t, err)

			cmd, err := def.CreateCommand()

			require.NoError(t, err)
			assert.Equal(t, tt.want, cmd.Text())
			assert.Len(t, cmd.Parameters(), len(tt.tree.ParameterColumns()))
		})
	}
}

func TestProvider_CreateCommandDefinitionFromTree_Spatial(t *testing.T) {
	types := map[string]provider.TypeUsage{
		"id":       {Kind: provider.KindGuid},
		"location": {Kind: provider.KindGeography},
	}

	tests := []struct {
		name     string
		provider *sqlprovider.Provider
		kind     provider.TreeKind
		want     string
	}{
		{
			name:     "given postgres query, then reads geography as EWKT",
			provider: sqlprovider.Postgres,
			kind:     provider.TreeQuery,
			want:     `SELECT "id", ST_AsEWKT("location") AS "location" FROM "places" WHERE "id" = $1`,
		},
		{
			name:     "given mysql query, then reads geometry as WKT",
			provider: sqlprovider.MySQL,
			kind:     provider.TreeQuery,
			want:     "SELECT `id`, ST_AsText(`location`) AS `location` FROM `places` WHERE `id` = ?",
		},
		{
			name:     "given mysql insert, then converts the bound text",
			provider: sqlprovider.MySQL,
			kind:     provider.TreeInsert,
			want:     "INSERT INTO `places` (`id`, `location`) VALUES (?, ST_GeomFromText(?))",
		},
		{
			name:     "given postgres insert, then binds the text directly",
			provider: sqlprovider.Postgres,
			kind:     provider.TreeInsert,
			want:     `INSERT INTO "places" ("id", "location") VALUES ($1, $2)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := &provider.CommandTree{Kind: tt.kind, Table: "places", Columns: []string{"id", "location"}, Types: types}
			if tt.kind == provider.TreeQuery {
				tree.Predicates = []string{"id"}
			}
			def, err := tt.provider.CreateCommandDefinitionFromTree(nil, tree)
			require.NoError(t, err)

			cmd, err := def.CreateCommand()

			require.NoError(t, err)
			assert.Equal(t, tt.want, cmd.Text())
		})
	}
}

func TestProvider_CreateCommandDefinitionFromTree_Parameters(t *testing.T) {
	t.Run("given typed columns, then parameters carry their facets in order", func(t *testing.T) {
		tree := &provider.CommandTree{
			Kind: provider.TreeUpdate, Table: "users", Columns: []string{"name"}, Predicates: []string{"id"}, Types: userTypes,
		}
		def, err := sqlprovider.Postgres.CreateCommandDefinitionFromTree(nil, tree)
		require.NoError(t, err)

		cmd, err := def.CreateCommand()
		require.NoError(t, err)

		assert.Equal(t, []*provider.Parameter{
			{Name: "p0", Kind: provider.KindString, Nullable: true, Size: 64},
			{Name: "p1", Kind: provider.KindInt64},
		}, cmd.Parameters())
	})
}

func TestProvider_CreateCommandDefinitionFromTree_Errors(t *testing.T) {
	sqliteManifest, err := sqlprovider.SQLite.ProviderManifest("sqlite:3.45.1")
	require.NoError(t, err)

	tests := []struct {
		name     string
		manifest provider.Manifest
		tree     *provider.CommandTree
		wantErr  error
	}{
		{name: "given nil tree, then unsupported", wantErr: provider.ErrUnsupportedTree},
		{
			name:    "given missing table, then unsupported",
			tree:    &provider.CommandTree{Kind: provider.TreeQuery},
			wantErr: provider.ErrUnsupportedTree,
		},
		{
			name:    "given insert without columns, then unsupported",
			tree:    &provider.CommandTree{Kind: provider.TreeInsert, Table: "users"},
			wantErr: provider.ErrUnsupportedTree,
		},
		{
			name:    "given update without columns, then unsupported",
			tree:    &provider.CommandTree{Kind: provider.TreeUpdate, Table: "users"},
			wantErr: provider.ErrUnsupportedTree,
		},
		{
			name:    "given unknown kind, then unsupported",
			tree:    &provider.CommandTree{Kind: provider.TreeKind(42), Table: "users"},
			wantErr: provider.ErrUnsupportedTree,
		},
		{
			name:     "given manifest of another dialect, then unknown token",
			manifest: sqliteManifest,
			tree:     &provider.CommandTree{Kind: provider.TreeQuery, Table: "users"},
			wantErr:  provider.ErrUnknownManifestToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := sqlprovider.Postgres.CreateCommandDefinitionFromTree(tt.manifest, tt.tree)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, def)
		})
	}
}

func TestProvider_ProviderManifest(t *testing.T) {
	tests := []struct {
		name     string
		provider *sqlprovider.Provider
		typ      provider.TypeUsage
		want     string
		wantOK   bool
	}{
		{name: "given sqlite int64, then INTEGER", provider: sqlprovider.SQLite, typ: provider.TypeUsage{Kind: provider.KindInt64}, want: "INTEGER", wantOK: true},
		{name: "given bounded postgres string, then varchar", provider: sqlprovider.Postgres, typ: provider.TypeUsage{Kind: provider.KindString, MaxLength: 32}, want: "varchar(32)", wantOK: true},
		{name: "given bounded sqlite string, then TEXT", provider: sqlprovider.SQLite, typ: provider.TypeUsage{Kind: provider.KindString, MaxLength: 32}, want: "TEXT", wantOK: true},
		{name: "given mysql geography, then GEOMETRY", provider: sqlprovider.MySQL, typ: provider.TypeUsage{Kind: provider.KindGeography}, want: "GEOMETRY", wantOK: true},
		{name: "given unknown kind, then not found", provider: sqlprovider.MySQL, typ: provider.TypeUsage{Kind: "Decimal"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := provider.FormatManifestToken(tt.provider.Name(), "1.0")
			m, err := tt.provider.ProviderManifest(token)
			require.NoError(t, err)

			got, ok := m.StoreType(tt.typ)

			assert.Equal(t, token, m.Token())
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("given token of another dialect, then fails", func(t *testing.T) {
		_, err := sqlprovider.MySQL.ProviderManifest("postgres:16")

		assert.ErrorIs(t, err, provider.ErrUnknownManifestToken)
	})
}

func TestRegistration(t *testing.T) {
	t.Run("given the package is imported, then every dialect is registered", func(t *testing.T) {
		for _, p := range []*sqlprovider.Provider{sqlprovider.SQLite, sqlprovider.Postgres, sqlprovider.MySQL} {
			got, err := provider.Lookup(p.Name())

			require.NoError(t, err)
			assert.Same(t, p, got)
		}
	})
}
