package profiled

import (
	"database/sql/driver"
	"sync"

	"github.com/kroma-labs/sentinel-profiler/provider"
	sentinelsql "github.com/kroma-labs/sentinel-profiler/sql"
)

// observedReader is handed out in place of a provider reader that is itself a
// result set. The provider advances the real rows, so read failures are
// reported back to the timing of the decorated rows here. Close closes the
// decorated rows, which ends that timing.
type observedReader struct {
	provider.SpatialDataReader

	rows      driver.Rows
	decorated driver.Rows
	once      sync.Once
	closeErr  error
}

func (r *observedReader) Columns() []string {
	return r.rows.Columns()
}

func (r *observedReader) Next(dest []driver.Value) error {
	err := r.rows.Next(dest)
	if err != nil {
		sentinelsql.RecordRowsError(r.decorated, err)
	}
	return err
}

func (r *observedReader) Close() error {
	r.once.Do(func() { r.closeErr = r.decorated.Close() })
	return r.closeErr
}

// Unwrap returns the provider's reader.
func (r *observedReader) Unwrap() provider.SpatialDataReader {
	return r.SpatialDataReader
}
