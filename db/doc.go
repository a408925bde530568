// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles connections, schema creation, and request-scoped
connection handling.

# Connecting

Open selects the driver for a dialect and pings the database:

	conn, err := db.Open(ctx, db.DialectSQLite, "todo.db")

SQLite uses modernc.org/sqlite (a busy timeout is added to the DSN so
concurrent writers wait instead of failing). PostgreSQL uses lib/pq.

# Schema

The schema scripts live in schema/<dialect>.sql and are embedded at
build time. A file path from configuration overrides them:

	if err := db.CreateSchema(ctx, conn, db.DialectSQLite, ""); err != nil {
		log.Fatal(err)
	}

CreateSchema is safe to call multiple times - it uses IF NOT EXISTS.
ResetSchema drops the table and recreates it empty.

# Tables

	TodoItem(item_id, title UNIQUE, creation_date, completed, completion_date)

# Request Scopes

A Scope lends one pooled connection to one request:

	scope := db.NewScope(pool)
	defer scope.Close()
	ctx = db.WithScope(ctx, scope)

	q, err := db.QuerierFrom(ctx, pool) // acquires on first use

middleware.WithConn does this for every routed request, so the connection
is released on every exit path.

# Errors

IsUniqueViolation recognizes constraint failures from both drivers.
*/
package db
