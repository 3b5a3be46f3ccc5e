// Package sqlprovider implements provider.Services for SQLite, PostgreSQL
// and MySQL directly on driver connections.
//
// Importing the package registers the providers as "sqlite", "postgres"
// and "mysql":
//
//	import _ "github.com/kroma-labs/sentinel-profiler/provider/sqlprovider"
//
//	svc, err := profiled.Instance("sqlite")
//
// Manifest tokens have the form "<dialect>:<server version>", as returned
// by ProviderManifestToken. Command trees render with the dialect's
// identifier quoting and placeholders (? or $n).
//
// Spatial values travel as text: EWKT for SQLite and PostgreSQL, WKT for
// MySQL. Rendered queries select spatial columns through ST_AsEWKT
// (PostgreSQL) or ST_AsText (MySQL), and MySQL writes go through
// ST_GeomFromText, so SpatialReader always reads text.
package sqlprovider
