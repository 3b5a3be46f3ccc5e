package sql

import (
	"database/sql/driver"
	"errors"
	"io"
	"reflect"
	"sync"

	"github.com/kroma-labs/sentinel-profiler/profiler"
)

var (
	_ driver.Rows                           = (*profiledRows)(nil)
	_ driver.RowsNextResultSet              = (*profiledRows)(nil)
	_ driver.RowsColumnTypeScanType         = (*profiledRows)(nil)
	_ driver.RowsColumnTypeDatabaseTypeName = (*profiledRows)(nil)
	_ driver.RowsColumnTypeLength           = (*profiledRows)(nil)
	_ driver.RowsColumnTypeNullable         = (*profiledRows)(nil)
	_ driver.RowsColumnTypePrecisionScale   = (*profiledRows)(nil)
)

// profiledRows keeps the reader's custom timing open until the rows are
// closed, so the recorded duration includes reading them.
type profiledRows struct {
	rows   driver.Rows
	timing *profiler.CustomTiming

	once sync.Once
	err  error
}

func newProfiledRows(rows driver.Rows, timing *profiler.CustomTiming) *profiledRows {
	return &profiledRows{rows: rows, timing: timing}
}

// Unwrap returns the driver's own rows.
func (r *profiledRows) Unwrap() driver.Rows {
	return r.rows
}

func (r *profiledRows) Columns() []string {
	return r.rows.Columns()
}

func (r *profiledRows) Close() error {
	err := r.rows.Close()
	r.once.Do(func() {
		if err != nil {
			r.timing.Stop(err)
			return
		}
		r.timing.Stop(r.err)
	})
	return err
}

func (r *profiledRows) Next(dest []driver.Value) error {
	err := r.rows.Next(dest)
	r.record(err)
	return err
}

func (r *profiledRows) record(err error) {
	if err != nil && !errors.Is(err, io.EOF) && r.err == nil {
		r.err = err
	}
}

// RecordRowsError marks the timing of decorated rows as errored, as if their
// Next had returned err. It is for readers that advance the driver's rows
// directly. io.EOF and undecorated rows are ignored.
func RecordRowsError(rows driver.Rows, err error) {
	for rows != nil {
		if pr, ok := rows.(*profiledRows); ok {
			pr.record(err)
			return
		}
		u, ok := rows.(interface{ Unwrap() driver.Rows })
		if !ok {
			return
		}
		rows = u.Unwrap()
	}
}

func (r *profiledRows) HasNextResultSet() bool {
	if rs, ok := r.rows.(driver.RowsNextResultSet); ok {
		return rs.HasNextResultSet()
	}
	return false
}

func (r *profiledRows) NextResultSet() error {
	if rs, ok := r.rows.(driver.RowsNextResultSet); ok {
		return rs.NextResultSet()
	}
	return io.EOF
}

func (r *profiledRows) ColumnTypeScanType(index int) reflect.Type {
	if ct, ok := r.rows.(driver.RowsColumnTypeScanType); ok {
		return ct.ColumnTypeScanType(index)
	}
	return reflect.TypeFor[any]()
}

func (r *profiledRows) ColumnTypeDatabaseTypeName(index int) string {
	if ct, ok := r.rows.(driver.RowsColumnTypeDatabaseTypeName); ok {
		return ct.ColumnTypeDatabaseTypeName(index)
	}
	return ""
}

func (r *profiledRows) ColumnTypeLength(index int) (int64, bool) {
	if ct, ok := r.rows.(driver.RowsColumnTypeLength); ok {
		return ct.ColumnTypeLength(index)
	}
	return 0, false
}

func (r *profiledRows) ColumnTypeNullable(index int) (nullable, ok bool) {
	if ct, ok := r.rows.(driver.RowsColumnTypeNullable); ok {
		return ct.ColumnTypeNullable(index)
	}
	return false, false
}

func (r *profiledRows) ColumnTypePrecisionScale(index int) (precision, scale int64, ok bool) {
	if ct, ok := r.rows.(driver.RowsColumnTypePrecisionScale); ok {
		return ct.ColumnTypePrecisionScale(index)
	}
	return 0, 0, false
}
