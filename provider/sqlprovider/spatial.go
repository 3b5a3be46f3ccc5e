package sqlprovider

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"

	"github.com/kroma-labs/sentinel-profiler/provider"
)

var (
	// ErrInvalidWKT is returned for text that is not well-known text.
	ErrInvalidWKT = errors.New("sqlprovider: invalid well-known text")

	// ErrNoCurrentRow is returned when a spatial value is read before Next
	// fetched a row.
	ErrNoCurrentRow = errors.New("sqlprovider: no current row")
)

var wktPattern = regexp.MustCompile(
	`(?is)^\s*(POINT|LINESTRING|POLYGON|MULTIPOINT|MULTILINESTRING|MULTIPOLYGON|GEOMETRYCOLLECTION)` +
		`\s*(ZM|Z|M)?\s*(\(.*\)|EMPTY)\s*$`)

// SpatialServices builds spatial values from well-known text.
type SpatialServices struct{}

var _ provider.SpatialServices = (*SpatialServices)(nil)

// GeographyFromText validates wkt. A zero srid means provider.DefaultSRID.
func (*SpatialServices) GeographyFromText(wkt string, srid int) (provider.Geography, error) {
	if !wktPattern.MatchString(wkt) {
		return provider.Geography{}, fmt.Errorf("%w: %q", ErrInvalidWKT, wkt)
	}
	if srid == 0 {
		srid = provider.DefaultSRID
	}
	return provider.Geography{SRID: srid, WKT: wkt}, nil
}

// GeometryFromText validates wkt. Geometries may have no SRID.
func (*SpatialServices) GeometryFromText(wkt string, srid int) (provider.Geometry, error) {
	if !wktPattern.MatchString(wkt) {
		return provider.Geometry{}, fmt.Errorf("%w: %q", ErrInvalidWKT, wkt)
	}
	return provider.Geometry{SRID: srid, WKT: wkt}, nil
}

// SpatialReader reads spatial columns stored or selected as (E)WKT text,
// for example through ST_AsEWKT on PostGIS or ST_AsText on MySQL.
//
// It is itself a driver.Rows: rows must be advanced through it so that it
// sees the current row. Over profiled rows, obtain it through
// profiled.Services.SpatialDataReader so read errors still mark the timing.
type SpatialReader struct {
	driver.Rows

	current []driver.Value
}

var _ provider.SpatialDataReader = (*SpatialReader)(nil)

// NewSpatialReader reads spatial values from rows.
func NewSpatialReader(rows driver.Rows) *SpatialReader {
	return &SpatialReader{Rows: rows}
}

// Next advances the rows and keeps the fetched row.
func (r *SpatialReader) Next(dest []driver.Value) error {
	if err := r.Rows.Next(dest); err != nil {
		r.current = nil
		return err
	}
	r.current = append(r.current[:0], dest...)
	return nil
}

// Unwrap returns the rows being read.
func (r *SpatialReader) Unwrap() driver.Rows {
	return r.Rows
}

// GeographyAt reads column ordinal of the current row. Text without an
// SRID gets provider.DefaultSRID.
func (r *SpatialReader) GeographyAt(ordinal int) (provider.Geography, error) {
	srid, wkt, err := r.textAt(ordinal)
	if err != nil {
		return provider.Geography{}, err
	}
	if srid == 0 {
		srid = provider.DefaultSRID
	}
	return provider.Geography{SRID: srid, WKT: wkt}, nil
}

// GeometryAt reads column ordinal of the current row.
func (r *SpatialReader) GeometryAt(ordinal int) (provider.Geometry, error) {
	srid, wkt, err := r.textAt(ordinal)
	if err != nil {
		return provider.Geometry{}, err
	}
	return provider.Geometry{SRID: srid, WKT: wkt}, nil
}

func (r *SpatialReader) textAt(ordinal int) (int, string, error) {
	if r.current == nil {
		return 0, "", ErrNoCurrentRow
	}
	if ordinal < 0 || ordinal >= len(r.current) {
		return 0, "", fmt.Errorf("sqlprovider: column %d out of range [0,%d)", ordinal, len(r.current))
	}
	v := r.current[ordinal]
	if v == nil {
		return 0, "", fmt.Errorf("sqlprovider: column %d is NULL", ordinal)
	}
	text, err := asString(v)
	if err != nil {
		return 0, "", fmt.Errorf("sqlprovider: column %d: %w", ordinal, err)
	}
	srid, wkt, err := provider.ParseEWKT(text)
	if err != nil {
		return 0, "", err
	}
	if !wktPattern.MatchString(wkt) {
		return 0, "", fmt.Errorf("%w: column %d", ErrInvalidWKT, ordinal)
	}
	return srid, wkt, nil
}
