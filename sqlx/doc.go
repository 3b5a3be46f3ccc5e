// Package sqlx opens jmoiron/sqlx databases on top of the profiled
// database/sql driver, so Get, Select and named queries are traced,
// measured and recorded in the request's profile like any other command.
//
//	import sentinelsqlx "github.com/kroma-labs/sentinel-profiler/sqlx"
//
//	db, err := sentinelsqlx.Connect(ctx, "pgx", dsn,
//	    sentinelsql.WithDBSystem("postgresql"),
//	    sentinelsql.WithDBName("mydb"),
//	)
//
//	var users []User
//	err = db.SelectContext(ctx, &users, db.Rebind("SELECT * FROM users WHERE id > ?"), 10)
//
// Bind variables follow the original driver name, not the name the
// profiled driver is registered under.
package sqlx
