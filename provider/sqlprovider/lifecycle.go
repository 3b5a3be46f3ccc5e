package sqlprovider

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/kroma-labs/sentinel-profiler/provider"
)

// ProviderManifestToken asks the server for its version.
func (p *Provider) ProviderManifestToken(ctx context.Context, conn driver.Conn) (string, error) {
	v, err := queryScalar(ctx, conn, p.dialect.versionQuery)
	if err != nil {
		return "", fmt.Errorf("%s version: %w", p.dialect.name, err)
	}
	version, err := asString(v)
	if err != nil {
		return "", fmt.Errorf("%s version: %w", p.dialect.name, err)
	}
	return provider.FormatManifestToken(p.dialect.name, version), nil
}

// CreateDatabaseScript returns the CREATE TABLE statements for items,
// separated by ";\n".
func (p *Provider) CreateDatabaseScript(manifestToken string, items *provider.StoreItems) (string, error) {
	if err := p.checkToken(manifestToken); err != nil {
		return "", err
	}
	stmts, err := p.createStatements(items)
	if err != nil {
		return "", err
	}
	return strings.Join(stmts, ";\n"), nil
}

func (p *Provider) createStatements(items *provider.StoreItems) ([]string, error) {
	if items == nil {
		return nil, nil
	}
	d := p.dialect
	stmts := make([]string, 0, len(items.Tables))
	for _, table := range items.Tables {
		if len(table.Columns) == 0 {
			return nil, fmt.Errorf("table %s has no columns", table.Name)
		}
		defs := make([]string, 0, len(table.Columns)+1)
		var keys []string
		for _, col := range table.Columns {
			typ, ok := d.storeType(col.Type)
			if !ok {
				return nil, fmt.Errorf("column %s.%s: no %s type for %s", table.Name, col.Name, d.name, col.Type.Kind)
			}
			def := d.quote(col.Name) + " " + typ
			if !col.Type.Nullable {
				def += " NOT NULL"
			}
			defs = append(defs, def)
			if col.PrimaryKey {
				keys = append(keys, col.Name)
			}
		}
		if len(keys) > 0 {
			defs = append(defs, "PRIMARY KEY ("+d.quoteAll(keys)+")")
		}
		stmts = append(stmts, fmt.Sprintf("CREATE TABLE %s (%s)", d.quote(table.Name), strings.Join(defs, ", ")))
	}
	return stmts, nil
}

// CreateDatabase creates every table of items.
func (p *Provider) CreateDatabase(
	ctx context.Context,
	conn driver.Conn,
	commandTimeout *time.Duration,
	items *provider.StoreItems,
) error {
	stmts, err := p.createStatements(items)
	if err != nil {
		return err
	}
	for i, stmt := range stmts {
		if err := exec(ctx, conn, commandTimeout, stmt); err != nil {
			return fmt.Errorf("create table %s: %w", items.Tables[i].Name, err)
		}
	}
	return nil
}

// DeleteDatabase drops the tables of items, last declared first.
func (p *Provider) DeleteDatabase(
	ctx context.Context,
	conn driver.Conn,
	commandTimeout *time.Duration,
	items *provider.StoreItems,
) error {
	names := items.TableNames()
	slices.Reverse(names)
	for _, name := range names {
		if err := exec(ctx, conn, commandTimeout, "DROP TABLE IF EXISTS "+p.dialect.quote(name)); err != nil {
			return fmt.Errorf("drop table %s: %w", name, err)
		}
	}
	return nil
}

// DatabaseExists reports whether every table of items exists.
func (p *Provider) DatabaseExists(
	ctx context.Context,
	conn driver.Conn,
	commandTimeout *time.Duration,
	items *provider.StoreItems,
) (bool, error) {
	for _, name := range items.TableNames() {
		ok, err := p.tableExists(ctx, conn, commandTimeout, name)
		if err != nil {
			return false, fmt.Errorf("table %s: %w", name, err)
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func (p *Provider) tableExists(ctx context.Context, conn driver.Conn, timeout *time.Duration, name string) (bool, error) {
	ctx, cancel := withTimeout(ctx, timeout)
	defer cancel()

	v, err := queryScalar(ctx, conn, p.dialect.tableExistsQuery, driver.NamedValue{Ordinal: 1, Value: name})
	if err != nil {
		return false, err
	}
	n, err := asInt(v)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func withTimeout(ctx context.Context, timeout *time.Duration) (context.Context, context.CancelFunc) {
	if timeout == nil {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, *timeout)
}

func exec(ctx context.Context, conn driver.Conn, timeout *time.Duration, query string) error {
	ctx, cancel := withTimeout(ctx, timeout)
	defer cancel()
	_, err := provider.ExecConn(ctx, conn, query, nil)
	return err
}

var errNoRows = errors.New("no rows")

// queryScalar returns the first column of the first row.
func queryScalar(ctx context.Context, conn driver.Conn, query string, args ...driver.NamedValue) (driver.Value, error) {
	rows, err := provider.QueryConn(ctx, conn, query, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dest := make([]driver.Value, len(rows.Columns()))
	if len(dest) == 0 {
		return nil, errNoRows
	}
	if err := rows.Next(dest); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errNoRows
		}
		return nil, err
	}
	return dest[0], nil
}

func asString(v driver.Value) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("unexpected %T, want text", v)
	}
}

func asInt(v driver.Value) (int64, error) {
	switch v := v.(type) {
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case int:
		return int64(v), nil
	case []byte:
		return strconv.ParseInt(string(v), 10, 64)
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected %T, want integer", v)
	}
}
