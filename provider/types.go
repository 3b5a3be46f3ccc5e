package provider

import (
	"errors"
	"fmt"
	"strings"
)

// PrimitiveKind is the dialect-neutral type of a column or parameter.
type PrimitiveKind string

const (
	KindString    PrimitiveKind = "String"
	KindInt32     PrimitiveKind = "Int32"
	KindInt64     PrimitiveKind = "Int64"
	KindDouble    PrimitiveKind = "Double"
	KindBoolean   PrimitiveKind = "Boolean"
	KindDateTime  PrimitiveKind = "DateTime"
	KindBinary    PrimitiveKind = "Binary"
	KindGuid      PrimitiveKind = "Guid"
	KindGeography PrimitiveKind = "Geography"
	KindGeometry  PrimitiveKind = "Geometry"
)

// Spatial reports whether values of the kind are geography or geometry.
func (k PrimitiveKind) Spatial() bool {
	return k == KindGeography || k == KindGeometry
}

// TypeUsage is a primitive kind together with its facets.
type TypeUsage struct {
	Kind     PrimitiveKind
	Nullable bool

	// MaxLength applies to strings and binaries. Zero means unbounded.
	MaxLength int
}

// Parameter is one positional parameter of a command.
type Parameter struct {
	// Name is the logical name, such as "p0". Drivers receive parameters
	// by position only.
	Name     string
	Value    any
	Kind     PrimitiveKind
	Nullable bool
	Size     int
}

// DefaultSRID is the spatial reference used when none is given (WGS 84).
const DefaultSRID = 4326

// Geography is a round-earth spatial value.
type Geography struct {
	SRID int
	WKT  string

	// Native is the provider's own representation, if it has one.
	Native any
}

// ProviderValue returns the value handed to the driver: Native when set,
// otherwise the extended well-known text.
func (g Geography) ProviderValue() any {
	if g.Native != nil {
		return g.Native
	}
	return EWKT(g.SRID, g.WKT)
}

// Geometry is a flat-earth spatial value.
type Geometry struct {
	SRID   int
	WKT    string
	Native any
}

// ProviderValue returns Native when set, otherwise the extended
// well-known text.
func (g Geometry) ProviderValue() any {
	if g.Native != nil {
		return g.Native
	}
	return EWKT(g.SRID, g.WKT)
}

// EWKT formats well-known text with its SRID prefix, as PostGIS prints it.
// A zero srid yields plain WKT.
func EWKT(srid int, wkt string) string {
	if srid == 0 {
		return wkt
	}
	return fmt.Sprintf("SRID=%d;%s", srid, wkt)
}

// ParseEWKT splits extended well-known text into SRID and WKT. Plain WKT
// yields an SRID of zero.
func ParseEWKT(text string) (srid int, wkt string, err error) {
	text = strings.TrimSpace(text)
	prefix, rest, found := strings.Cut(text, ";")
	if !found || !strings.HasPrefix(strings.ToUpper(prefix), "SRID=") {
		if text == "" {
			return 0, "", errors.New("provider: empty spatial text")
		}
		return 0, text, nil
	}
	if _, err := fmt.Sscanf(prefix[len("SRID="):], "%d", &srid); err != nil {
		return 0, "", fmt.Errorf("provider: invalid SRID in %q: %w", text, err)
	}
	return srid, strings.TrimSpace(rest), nil
}

// SpatialDataReader reads spatial columns from the current row of a result.
type SpatialDataReader interface {
	GeographyAt(ordinal int) (Geography, error)
	GeometryAt(ordinal int) (Geometry, error)
}

// SpatialServices builds spatial values.
type SpatialServices interface {
	GeographyFromText(wkt string, srid int) (Geography, error)
	GeometryFromText(wkt string, srid int) (Geometry, error)
}
