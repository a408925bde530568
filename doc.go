// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Todo server.

Quickly Todo is a single-user to-do list with a JSON API and a small
server-rendered console, both backed by one SQL table.

# Starting the Server

With no configuration the server keeps its items in a local SQLite file:

	go run .

Or against PostgreSQL:

	go run . -t postgres -d "postgres://..."

# Configuration

Settings come from CLI flags, then environment variables, then an
optional YAML file (-c / TODO_CONFIG). A .env file in the working
directory is loaded first.

  - PORT (-p): Server port (default: 5000)
  - DATABASE_URL (-d): SQLite path or PostgreSQL URL (default: todo.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - SECRET_KEY (-secret): Key signing console flash cookies
  - DEBUG (-debug): Debug-level logging
  - SCHEMA_PATH (-schema): Schema script replacing the embedded one

# Architecture

  - handlers: JSON API and console handlers
  - items: Item operations on top of the database
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging, per-request connections, CORS, JSON helpers
  - web: Embedded templates and static files
  - models: Item and response types
  - auth: Signed flash cookies
  - db: Connections, dialects and schema
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
