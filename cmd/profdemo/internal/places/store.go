// Package places is the demo's domain: named geographic points stored
// through the profiled driver services, listed through sqlx.
package places

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/kroma-labs/sentinel-profiler/cmd/profdemo/internal/database"
	"github.com/kroma-labs/sentinel-profiler/provider"
	"github.com/kroma-labs/sentinel-profiler/provider/profiled"
)

// ErrNotFound means no place has the requested ID.
var ErrNotFound = errors.New("place not found")

// Place is a named geographic point.
type Place struct {
	ID       string
	Name     string
	Location provider.Geography
}

var (
	columns = []string{"id", "name", "location"}
	types   = map[string]provider.TypeUsage{
		"id":       {Kind: provider.KindGuid},
		"name":     {Kind: provider.KindString, MaxLength: 64},
		"location": {Kind: provider.KindGeography},
	}
)

// Store reads and writes places. Commands are built once from the driver
// services' command trees and cloned per call.
type Store struct {
	db    *sqlx.DB
	svc   *profiled.Services
	token string

	insert provider.CommandDefinition
	get    provider.CommandDefinition
	remove provider.CommandDefinition
	list   string
}

// NewStore resolves the server's manifest and prepares the command
// definitions.
func NewStore(ctx context.Context, db *sqlx.DB, svc *profiled.Services) (*Store, error) {
	s := &Store{db: db, svc: svc}

	err := database.WithConn(ctx, db, func(conn driver.Conn) error {
		token, err := svc.ProviderManifestToken(ctx, conn)
		s.token = token
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("places: manifest token: %w", err)
	}
	manifest, err := svc.ProviderManifest(s.token)
	if err != nil {
		return nil, fmt.Errorf("places: manifest: %w", err)
	}

	trees := []struct {
		def  *provider.CommandDefinition
		tree *provider.CommandTree
	}{
		{&s.insert, &provider.CommandTree{Kind: provider.TreeInsert, Table: "places", Columns: columns, Types: types}},
		{&s.get, &provider.CommandTree{Kind: provider.TreeQuery, Table: "places", Columns: columns, Predicates: []string{"id"}, Types: types}},
		{&s.remove, &provider.CommandTree{Kind: provider.TreeDelete, Table: "places", Predicates: []string{"id"}, Types: types}},
	}
	for _, t := range trees {
		if *t.def, err = svc.CreateCommandDefinitionFromTree(manifest, t.tree); err != nil {
			return nil, fmt.Errorf("places: %s command: %w", t.tree.Kind, err)
		}
	}

	listDef, err := svc.CreateCommandDefinitionFromTree(manifest, &provider.CommandTree{
		Kind: provider.TreeQuery, Table: "places", Columns: columns, OrderBy: []string{"name", "id"}, Types: types,
	})
	if err != nil {
		return nil, fmt.Errorf("places: list command: %w", err)
	}
	listCmd, err := listDef.CreateCommand()
	if err != nil {
		return nil, fmt.Errorf("places: list command: %w", err)
	}
	s.list = db.Rebind(listCmd.Text() + " LIMIT ?")

	return s, nil
}

// Token is the manifest token of the connected server.
func (s *Store) Token() string {
	return s.token
}

// ParseLocation validates wkt with the driver services' spatial services.
// A zero srid means WGS 84.
func (s *Store) ParseLocation(wkt string, srid int) (provider.Geography, error) {
	spatial, ok := provider.Resolve[provider.SpatialServices](s.svc, nil)
	if !ok {
		if srid == 0 {
			srid = provider.DefaultSRID
		}
		return provider.Geography{SRID: srid, WKT: wkt}, nil
	}
	return spatial.GeographyFromText(wkt, srid)
}

// Create stores a new place under a fresh ID.
func (s *Store) Create(ctx context.Context, name string, location provider.Geography) (Place, error) {
	place := Place{ID: uuid.NewString(), Name: name, Location: location}

	cmd, err := s.command(s.insert, place.ID, place.Name, place.Location)
	if err != nil {
		return Place{}, err
	}
	err = database.WithConn(ctx, s.db, func(conn driver.Conn) error {
		cmd.SetConn(conn)
		_, err := cmd.ExecContext(ctx)
		return err
	})
	if err != nil {
		return Place{}, fmt.Errorf("places: create: %w", err)
	}
	return place, nil
}

// Get returns the place with id, reading its location through the driver
// services' spatial reader.
func (s *Store) Get(ctx context.Context, id string) (Place, error) {
	cmd, err := s.command(s.get, id)
	if err != nil {
		return Place{}, err
	}

	var place Place
	err = database.WithConn(ctx, s.db, func(conn driver.Conn) error {
		cmd.SetConn(conn)
		rows, err := cmd.QueryContext(ctx)
		if err != nil {
			return err
		}
		defer rows.Close()

		reader, err := s.svc.SpatialDataReader(rows, s.token)
		if err != nil {
			return err
		}
		if reader == nil {
			return errors.New("no spatial reader for " + s.token)
		}

		// A reader that is itself a result set tracks the current row.
		next := rows.Next
		if r, ok := reader.(driver.Rows); ok {
			next = r.Next
		}
		dest := make([]driver.Value, len(rows.Columns()))
		if err := next(dest); err != nil {
			if errors.Is(err, io.EOF) {
				return ErrNotFound
			}
			return err
		}

		place.ID = text(dest[0])
		place.Name = text(dest[1])
		place.Location, err = reader.GeographyAt(2)
		return err
	})
	if err != nil {
		return Place{}, fmt.Errorf("places: get %s: %w", id, err)
	}
	return place, nil
}

// Delete removes the place with id.
func (s *Store) Delete(ctx context.Context, id string) error {
	cmd, err := s.command(s.remove, id)
	if err != nil {
		return err
	}

	var affected int64
	err = database.WithConn(ctx, s.db, func(conn driver.Conn) error {
		cmd.SetConn(conn)
		res, err := cmd.ExecContext(ctx)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return fmt.Errorf("places: delete %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("places: delete %s: %w", id, ErrNotFound)
	}
	return nil
}

type placeRow struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Location string `db:"location"`
}

// List returns up to limit places ordered by name, scanned with sqlx.
func (s *Store) List(ctx context.Context, limit int) ([]Place, error) {
	var rows []placeRow
	if err := s.db.SelectContext(ctx, &rows, s.list, limit); err != nil {
		return nil, fmt.Errorf("places: list: %w", err)
	}

	out := make([]Place, 0, len(rows))
	for _, r := range rows {
		srid, wkt, err := provider.ParseEWKT(r.Location)
		if err != nil {
			return nil, fmt.Errorf("places: list %s: %w", r.ID, err)
		}
		if srid == 0 {
			srid = provider.DefaultSRID
		}
		out = append(out, Place{ID: r.ID, Name: r.Name, Location: provider.Geography{SRID: srid, WKT: wkt}})
	}
	return out, nil
}

// command creates a command from def and binds values in parameter order.
func (s *Store) command(def provider.CommandDefinition, values ...any) (provider.Command, error) {
	cmd, err := def.CreateCommand()
	if err != nil {
		return nil, err
	}
	params := cmd.Parameters()
	if len(params) != len(values) {
		return nil, fmt.Errorf("places: %d parameters, %d values", len(params), len(values))
	}
	for i, p := range params {
		typ := provider.TypeUsage{Kind: p.Kind, Nullable: p.Nullable, MaxLength: p.Size}
		if err := s.svc.SetParameterValue(p, typ, values[i]); err != nil {
			return nil, fmt.Errorf("places: bind %s: %w", p.Name, err)
		}
	}
	return cmd, nil
}

func text(v driver.Value) string {
	switch v := v.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
