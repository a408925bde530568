// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5000)
  - DatabaseURL: SQLite file path or PostgreSQL URL (default: todo.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - SecretKey: Key signing console flash cookies (random if unset)
  - Debug: Debug-level logging
  - SchemaPath: Schema script replacing the embedded one

# CLI Flags

	-p       Server port
	-d       Database URL
	-t       Database type
	-secret  Secret key
	-debug   Debug logging
	-schema  Schema file
	-c       YAML config file

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	SECRET_KEY    → -secret
	DEBUG         → -debug
	SCHEMA_PATH   → -schema
	TODO_CONFIG   → -c

# Config File

The YAML file uses the same names in snake_case:

	port: 5000
	database_type: postgres
	database_url: postgres://localhost/todo
	debug: true

CLI flags take precedence over environment variables, which take
precedence over the file.

# Validation

ParseFlags returns an error for an invalid or out of range port, an
unknown database type, an invalid DEBUG value, or a config file that
cannot be read. When no secret key is configured one is generated and
GeneratedSecret is set.
*/
package cliparse
