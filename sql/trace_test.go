package sql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestSpanName(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "given SELECT query, then returns SELECT", query: "SELECT * FROM users WHERE id = 1", want: "SELECT"},
		{name: "given lowercase query, then returns uppercase operation", query: "select * from users", want: "SELECT"},
		{name: "given empty query, then returns SQL default", query: "", want: "SQL"},
		{name: "given whitespace only, then returns SQL default", query: "   ", want: "SQL"},
		{name: "given only a comment, then returns SQL default", query: "/* nothing */", want: "SQL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, spanName(tt.query))
		})
	}
}

func TestExtractOperation(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "given INSERT statement, then returns INSERT", query: "INSERT INTO users (id) VALUES (1)", want: "INSERT"},
		{name: "given UPDATE statement, then returns UPDATE", query: "UPDATE users SET name = 'test'", want: "UPDATE"},
		{name: "given DELETE statement, then returns DELETE", query: "DELETE FROM users", want: "DELETE"},
		{name: "given CREATE statement, then returns CREATE", query: "CREATE TABLE users (id INT)", want: "CREATE"},
		{name: "given single word command, then returns it uppercased", query: "commit", want: "COMMIT"},
		{name: "given leading whitespace, then returns operation", query: "  \n SELECT 1", want: "SELECT"},
		{name: "given newline after operation, then returns operation", query: "SELECT\n* FROM users", want: "SELECT"},
		{name: "given tab after operation, then returns operation", query: "SELECT\t* FROM users", want: "SELECT"},
		{name: "given parenthesis after operation, then stops at it", query: "WITH(x) AS ...", want: "WITH"},
		{name: "given trailing semicolon, then drops it", query: "VACUUM;", want: "VACUUM"},
		{name: "given leading block comment, then skips it", query: "/* app=api */ SELECT 1", want: "SELECT"},
		{name: "given leading line comment, then skips it", query: "-- list users\nselect * from users", want: "SELECT"},
		{
			name:  "given several leading comments, then skips all of them",
			query: "-- a\n/* b */\n  /* c */ DELETE FROM users",
			want:  "DELETE",
		},
		{name: "given unterminated block comment, then returns empty", query: "/* SELECT 1", want: ""},
		{name: "given line comment only, then returns empty", query: "-- SELECT 1", want: ""},
		{name: "given empty string, then returns empty", query: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractOperation(tt.query))
		})
	}
}

func TestDefaultQuerySanitizer(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "given numeric literal, then replaces with placeholder",
			query: "SELECT * FROM users WHERE id = 123",
			want:  "SELECT * FROM users WHERE id = ?",
		},
		{
			name:  "given string literal, then replaces with quoted placeholder",
			query: "SELECT * FROM users WHERE name = 'john'",
			want:  "SELECT * FROM users WHERE name = '?'",
		},
		{
			name:  "given decimal literal, then replaces with placeholder",
			query: "UPDATE accounts SET balance = 45.67",
			want:  "UPDATE accounts SET balance = ?",
		},
		{
			name:  "given hex literal, then replaces with placeholder",
			query: "SELECT * FROM blobs WHERE hash = 0xDEADBEEF",
			want:  "SELECT * FROM blobs WHERE hash = ?",
		},
		{
			name:  "given escaped quote, then replaces the whole literal",
			query: `SELECT * FROM notes WHERE body = 'it\'s'`,
			want:  "SELECT * FROM notes WHERE body = '?'",
		},
		{
			name:  "given placeholders only, then leaves query unchanged",
			query: "SELECT * FROM users WHERE id = ?",
			want:  "SELECT * FROM users WHERE id = ?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultQuerySanitizer(tt.query))
		})
	}
}

func TestConfigBaseAttributes(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want []attribute.KeyValue
	}{
		{
			name: "given all fields set, then returns all attributes",
			opts: []Option{WithDBSystem("postgresql"), WithDBName("mydb"), WithInstanceName("primary")},
			want: []attribute.KeyValue{
				attribute.String("db.system", "postgresql"),
				attribute.String("db.name", "mydb"),
				attribute.String("db.instance", "primary"),
			},
		},
		{
			name: "given only DBSystem, then returns one attribute",
			opts: []Option{WithDBSystem("mysql")},
			want: []attribute.KeyValue{attribute.String("db.system", "mysql")},
		},
		{
			name: "given no options, then returns no attributes",
			want: []attribute.KeyValue{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newConfig(tt.opts...).baseAttributes())
		})
	}
}

func TestConfigQueryAttributes(t *testing.T) {
	tests := []struct {
		name          string
		opts          []Option
		query         string
		wantStatement string
		wantOperation string
	}{
		{
			name:          "given query without sanitizer, then includes raw query",
			opts:          []Option{WithDBSystem("postgresql")},
			query:         "SELECT * FROM users WHERE id = 123",
			wantStatement: "SELECT * FROM users WHERE id = 123",
			wantOperation: "SELECT",
		},
		{
			name:          "given query with sanitizer, then includes sanitized query",
			opts:          []Option{WithQuerySanitizer(DefaultQuerySanitizer)},
			query:         "SELECT * FROM users WHERE id = 123",
			wantStatement: "SELECT * FROM users WHERE id = ?",
			wantOperation: "SELECT",
		},
		{
			name:          "given DisableQuery, then excludes statement",
			opts:          []Option{WithDisableQuery()},
			query:         "SELECT * FROM users",
			wantOperation: "SELECT",
		},
		{
			name:          "given commented query, then extracts the real operation",
			query:         "/* trace */ INSERT INTO users (name) VALUES ('test')",
			wantStatement: "/* trace */ INSERT INTO users (name) VALUES ('test')",
			wantOperation: "INSERT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := newConfig(tt.opts...).queryAttributes(tt.query)

			got := map[string]string{}
			for _, attr := range attrs {
				got[string(attr.Key)] = attr.Value.AsString()
			}
			statement, hasStatement := got["db.statement"]
			assert.Equal(t, tt.wantStatement != "", hasStatement)
			assert.Equal(t, tt.wantStatement, statement)
			assert.Equal(t, tt.wantOperation, got["db.operation"])
		})
	}
}
