package provider

// TreeKind is the statement a CommandTree describes.
type TreeKind int

const (
	TreeQuery TreeKind = iota
	TreeInsert
	TreeUpdate
	TreeDelete
)

func (k TreeKind) String() string {
	switch k {
	case TreeQuery:
		return "query"
	case TreeInsert:
		return "insert"
	case TreeUpdate:
		return "update"
	case TreeDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// CommandTree is a dialect-neutral statement over a single table.
//
// Parameters of the rendered command follow a fixed order: Columns first
// for inserts and updates, then one per predicate.
type CommandTree struct {
	Kind  TreeKind
	Table string

	// Columns are selected (query), written (insert, update) or ignored
	// (delete). An empty selection means every column.
	Columns []string

	// Predicates are column names compared for equality and ANDed.
	Predicates []string

	OrderBy []string

	// Limit caps query results. Zero means no limit.
	Limit int

	// Types holds the type usage per column name, used to type parameters.
	Types map[string]TypeUsage
}

// ParameterColumns returns the column behind each parameter, in order.
func (t *CommandTree) ParameterColumns() []string {
	var cols []string
	if t.Kind == TreeInsert || t.Kind == TreeUpdate {
		cols = append(cols, t.Columns...)
	}
	if t.Kind != TreeInsert {
		cols = append(cols, t.Predicates...)
	}
	return cols
}

// TableSchema describes one table of a store model.
type TableSchema struct {
	Name    string
	Columns []ColumnSchema
}

// ColumnSchema describes one column of a table.
type ColumnSchema struct {
	Name       string
	Type       TypeUsage
	PrimaryKey bool
}

// StoreItems is the model the database lifecycle operations act on.
type StoreItems struct {
	Tables []TableSchema
}

// TableNames returns the table names in declaration order.
func (s *StoreItems) TableNames() []string {
	if s == nil {
		return nil
	}
	names := make([]string, len(s.Tables))
	for i, t := range s.Tables {
		names[i] = t.Name
	}
	return names
}
