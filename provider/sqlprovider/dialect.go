package sqlprovider

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kroma-labs/sentinel-profiler/provider"
)

// dialect holds everything that differs between stores.
type dialect struct {
	name string

	versionQuery     string
	tableExistsQuery string

	storeTypes map[provider.PrimitiveKind]string

	// boundedString renders a string column with a maximum length. Nil
	// means the store type is used regardless of length.
	boundedString func(n int) string

	// quoteChar delimits identifiers.
	quoteChar string

	// numbered placeholders ($1, $2) instead of ?.
	numbered bool

	// spatialText renders a spatial value as bound to the store.
	spatialText func(srid int, wkt string) string

	// spatialRead and spatialWrite wrap spatial columns in queries and
	// spatial placeholders in writes. Empty means the store reads and
	// accepts the text form as is.
	spatialRead  string
	spatialWrite string
}

func (d *dialect) quote(ident string) string {
	q := d.quoteChar
	return q + strings.ReplaceAll(ident, q, q+q) + q
}

func (d *dialect) quoteAll(idents []string) string {
	quoted := make([]string, len(idents))
	for i, id := range idents {
		quoted[i] = d.quote(id)
	}
	return strings.Join(quoted, ", ")
}

// placeholder returns the marker for the i-th parameter, counting from 1.
func (d *dialect) placeholder(i int) string {
	if d.numbered {
		return "$" + strconv.Itoa(i)
	}
	return "?"
}

// selectColumn renders col for a select list, converting spatial columns
// to their text form under the same name.
func (d *dialect) selectColumn(col string, typ provider.TypeUsage) string {
	if d.spatialRead == "" || !typ.Kind.Spatial() {
		return d.quote(col)
	}
	return fmt.Sprintf(d.spatialRead, d.quote(col)) + " AS " + d.quote(col)
}

// bindMarker wraps placeholder when typ is spatial and the store needs an
// explicit conversion from text.
func (d *dialect) bindMarker(placeholder string, typ provider.TypeUsage) string {
	if d.spatialWrite == "" || !typ.Kind.Spatial() {
		return placeholder
	}
	return fmt.Sprintf(d.spatialWrite, placeholder)
}

func (d *dialect) storeType(typ provider.TypeUsage) (string, bool) {
	if typ.Kind == provider.KindString && typ.MaxLength > 0 && d.boundedString != nil {
		return d.boundedString(typ.MaxLength), true
	}
	t, ok := d.storeTypes[typ.Kind]
	return t, ok
}

func wktOnly(_ int, wkt string) string { return wkt }

var sqliteDialect = &dialect{
	name:             "sqlite",
	versionQuery:     "SELECT sqlite_version()",
	tableExistsQuery: "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?",
	storeTypes: map[provider.PrimitiveKind]string{
		provider.KindString:    "TEXT",
		provider.KindInt32:     "INTEGER",
		provider.KindInt64:     "INTEGER",
		provider.KindDouble:    "REAL",
		provider.KindBoolean:   "INTEGER",
		provider.KindDateTime:  "TEXT",
		provider.KindBinary:    "BLOB",
		provider.KindGuid:      "TEXT",
		provider.KindGeography: "TEXT",
		provider.KindGeometry:  "TEXT",
	},
	quoteChar:   `"`,
	spatialText: provider.EWKT,
}

var postgresDialect = &dialect{
	name:         "postgres",
	versionQuery: "SHOW server_version",
	tableExistsQuery: "SELECT COUNT(*) FROM information_schema.tables " +
		"WHERE table_schema = current_schema() AND table_name = $1",
	storeTypes: map[provider.PrimitiveKind]string{
		provider.KindString:    "text",
		provider.KindInt32:     "integer",
		provider.KindInt64:     "bigint",
		provider.KindDouble:    "double precision",
		provider.KindBoolean:   "boolean",
		provider.KindDateTime:  "timestamptz",
		provider.KindBinary:    "bytea",
		provider.KindGuid:      "uuid",
		provider.KindGeography: "geography",
		provider.KindGeometry:  "geometry",
	},
	boundedString: func(n int) string { return fmt.Sprintf("varchar(%d)", n) },
	quoteChar:     `"`,
	numbered:      true,
	spatialText:   provider.EWKT,
	spatialRead:   "ST_AsEWKT(%s)",
}

var mysqlDialect = &dialect{
	name:         "mysql",
	versionQuery: "SELECT VERSION()",
	tableExistsQuery: "SELECT COUNT(*) FROM information_schema.tables " +
		"WHERE table_schema = DATABASE() AND table_name = ?",
	storeTypes: map[provider.PrimitiveKind]string{
		provider.KindString:    "TEXT",
		provider.KindInt32:     "INT",
		provider.KindInt64:     "BIGINT",
		provider.KindDouble:    "DOUBLE",
		provider.KindBoolean:   "BOOLEAN",
		provider.KindDateTime:  "DATETIME(6)",
		provider.KindBinary:    "LONGBLOB",
		provider.KindGuid:      "CHAR(36)",
		provider.KindGeography: "GEOMETRY",
		provider.KindGeometry:  "GEOMETRY",
	},
	boundedString: func(n int) string { return fmt.Sprintf("VARCHAR(%d)", n) },
	quoteChar:     "`",
	spatialText:   wktOnly,
	spatialRead:   "ST_AsText(%s)",
	spatialWrite:  "ST_GeomFromText(%s)",
}
