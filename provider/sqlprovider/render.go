package sqlprovider

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kroma-labs/sentinel-profiler/provider"
)

// CreateCommandDefinitionFromTree renders tree in the provider's dialect.
// manifest may be nil; when given, it must belong to this dialect.
func (p *Provider) CreateCommandDefinitionFromTree(
	manifest provider.Manifest,
	tree *provider.CommandTree,
) (provider.CommandDefinition, error) {
	if manifest != nil {
		if err := p.checkToken(manifest.Token()); err != nil {
			return nil, err
		}
	}
	text, err := p.render(tree)
	if err != nil {
		return nil, err
	}
	return p.CreateCommandDefinition(provider.NewTextCommand(text, parameters(tree)...))
}

func (p *Provider) render(tree *provider.CommandTree) (string, error) {
	if tree == nil || tree.Table == "" {
		return "", fmt.Errorf("%w: no table", provider.ErrUnsupportedTree)
	}

	d := p.dialect
	var sb strings.Builder
	n := 0
	next := func() string {
		n++
		return d.placeholder(n)
	}

	switch tree.Kind {
	case provider.TreeQuery:
		sb.WriteString("SELECT ")
		if len(tree.Columns) == 0 {
			sb.WriteString("*")
		}
		for i, col := range tree.Columns {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(d.selectColumn(col, tree.Types[col]))
		}
		sb.WriteString(" FROM ")
		sb.WriteString(d.quote(tree.Table))
		writeWhere(&sb, d, tree.Predicates, next)
		if len(tree.OrderBy) > 0 {
			sb.WriteString(" ORDER BY ")
			sb.WriteString(d.quoteAll(tree.OrderBy))
		}
		if tree.Limit > 0 {
			sb.WriteString(" LIMIT ")
			sb.WriteString(strconv.Itoa(tree.Limit))
		}

	case provider.TreeInsert:
		if len(tree.Columns) == 0 {
			return "", fmt.Errorf("%w: insert without columns", provider.ErrUnsupportedTree)
		}
		marks := make([]string, len(tree.Columns))
		for i, col := range tree.Columns {
			marks[i] = d.bindMarker(next(), tree.Types[col])
		}
		fmt.Fprintf(&sb, "INSERT INTO %s (%s) VALUES (%s)",
			d.quote(tree.Table), d.quoteAll(tree.Columns), strings.Join(marks, ", "))

	case provider.TreeUpdate:
		if len(tree.Columns) == 0 {
			return "", fmt.Errorf("%w: update without columns", provider.ErrUnsupportedTree)
		}
		sets := make([]string, len(tree.Columns))
		for i, col := range tree.Columns {
			sets[i] = d.quote(col) + " = " + d.bindMarker(next(), tree.Types[col])
		}
		fmt.Fprintf(&sb, "UPDATE %s SET %s", d.quote(tree.Table), strings.Join(sets, ", "))
		writeWhere(&sb, d, tree.Predicates, next)

	case provider.TreeDelete:
		sb.WriteString("DELETE FROM ")
		sb.WriteString(d.quote(tree.Table))
		writeWhere(&sb, d, tree.Predicates, next)

	default:
		return "", fmt.Errorf("%w: kind %s", provider.ErrUnsupportedTree, tree.Kind)
	}
	return sb.String(), nil
}

func writeWhere(sb *strings.Builder, d *dialect, predicates []string, next func() string) {
	for i, col := range predicates {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		sb.WriteString(d.quote(col))
		sb.WriteString(" = ")
		sb.WriteString(next())
	}
}

// parameters returns the unbound parameters of tree, typed from tree.Types.
func parameters(tree *provider.CommandTree) []*provider.Parameter {
	cols := tree.ParameterColumns()
	params := make([]*provider.Parameter, len(cols))
	for i, col := range cols {
		typ := tree.Types[col]
		params[i] = &provider.Parameter{
			Name:     "p" + strconv.Itoa(i),
			Kind:     typ.Kind,
			Nullable: typ.Nullable,
			Size:     typ.MaxLength,
		}
	}
	return params
}
