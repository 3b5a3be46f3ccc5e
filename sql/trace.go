package sql

import (
	"regexp"
	"strings"

	"go.opentelemetry.io/otel/attribute"
)

var (
	// stringLiteralRegex matches single-quoted strings, including escaped
	// quotes: 'hello', 'it\'s', 'foo''bar'.
	stringLiteralRegex = regexp.MustCompile(`'(?:[^'\\]|\\.)*'`)

	// numericLiteralRegex matches integers and decimals: 123, 45.67.
	numericLiteralRegex = regexp.MustCompile(`\b\d+\.?\d*\b`)

	// hexLiteralRegex matches hex literals: 0xDEADBEEF.
	hexLiteralRegex = regexp.MustCompile(`0[xX][0-9a-fA-F]+`)
)

// spanName returns the operation of query, or "SQL" when there is none.
// Span names must not be empty.
//
//	spanName("SELECT * FROM users") // "SELECT"
//	spanName("")                    // "SQL"
func spanName(query string) string {
	if op := extractOperation(query); op != "" {
		return op
	}
	return "SQL"
}

// extractOperation returns the upper-cased first keyword of query. Leading
// "--" line comments and "/* */" block comments are skipped, so ORM and
// sqlcommenter annotations do not become the operation.
//
//	extractOperation("insert into users")            // "INSERT"
//	extractOperation("/* app=api */ SELECT 1")       // "SELECT"
//	extractOperation("-- users\nDELETE FROM users")  // "DELETE"
//	extractOperation("")                             // ""
func extractOperation(query string) string {
	query = skipLeadingComments(query)
	if query == "" {
		return ""
	}

	end := strings.IndexAny(query, " \t\n\r(;")
	if end == -1 {
		return strings.ToUpper(query)
	}
	return strings.ToUpper(query[:end])
}

func skipLeadingComments(query string) string {
	for {
		query = strings.TrimSpace(query)
		switch {
		case strings.HasPrefix(query, "--"):
			nl := strings.IndexByte(query, '\n')
			if nl == -1 {
				return ""
			}
			query = query[nl+1:]
		case strings.HasPrefix(query, "/*"):
			end := strings.Index(query[2:], "*/")
			if end == -1 {
				return ""
			}
			query = query[end+4:]
		default:
			return query
		}
	}
}

// DefaultQuerySanitizer replaces literals with placeholders so that values
// do not reach traces, profiles or logs:
//
//   - string literals: 'john' becomes '?'
//   - numeric literals: 123 and 45.67 become ?
//   - hex literals: 0xDEADBEEF becomes ?
//
// Example:
//
//	DefaultQuerySanitizer("SELECT * FROM users WHERE name = 'john' AND age > 30")
//	// "SELECT * FROM users WHERE name = '?' AND age > ?"
//
// It is regex based and does not parse SQL.
func DefaultQuerySanitizer(query string) string {
	query = stringLiteralRegex.ReplaceAllString(query, "'?'")
	query = numericLiteralRegex.ReplaceAllString(query, "?")
	query = hexLiteralRegex.ReplaceAllString(query, "?")
	return query
}

// baseAttributes returns the attributes shared by every span and metric.
func (cfg *config) baseAttributes() []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, 5)
	if cfg.DBSystem != "" {
		attrs = append(attrs, attribute.String("db.system", cfg.DBSystem))
	}
	if cfg.DBName != "" {
		attrs = append(attrs, attribute.String("db.name", cfg.DBName))
	}
	if cfg.InstanceName != "" {
		attrs = append(attrs, attribute.String("db.instance", cfg.InstanceName))
	}
	return attrs
}

// queryAttributes returns the span attributes for a statement.
func (cfg *config) queryAttributes(query string) []attribute.KeyValue {
	attrs := cfg.baseAttributes()
	if statement, ok := cfg.statement(query); ok {
		attrs = append(attrs, attribute.String("db.statement", statement))
	}
	if op := extractOperation(query); op != "" {
		attrs = append(attrs, attribute.String("db.operation", op))
	}
	return attrs
}
