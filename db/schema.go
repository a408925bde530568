// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"embed"
	"fmt"
	"os"
	"path/filepath"
)

// Supported dialects, matching cliparse database types
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// TableName is the single table backing the item list
const TableName = "TodoItem"

const dropSchema = `DROP TABLE IF EXISTS ` + TableName + `;`

//go:embed schema/*.sql
var schemaFS embed.FS

// Schema returns the schema script for dialect. A non-empty path is read
// from disk instead of the built-in script.
func Schema(dialect, path string) (string, error) {
	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return "", fmt.Errorf("failed to read schema file: %w", err)
		}
		return string(data), nil
	}

	switch dialect {
	case DialectSQLite, DialectPostgres:
	default:
		return "", fmt.Errorf("unsupported dialect %q", dialect)
	}

	data, err := schemaFS.ReadFile("schema/" + dialect + ".sql")
	if err != nil {
		return "", fmt.Errorf("failed to load schema: %w", err)
	}
	return string(data), nil
}

// CreateSchema creates the item table.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, q Querier, dialect, path string) error {
	schema, err := Schema(dialect, path)
	if err != nil {
		return err
	}

	if _, err := q.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// ResetSchema drops the item table and recreates it empty.
// Every row is destroyed.
func ResetSchema(ctx context.Context, q Querier, dialect, path string) error {
	schema, err := Schema(dialect, path)
	if err != nil {
		return err
	}

	if _, err := q.ExecContext(ctx, dropSchema); err != nil {
		return fmt.Errorf("failed to drop schema: %w", err)
	}
	if _, err := q.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
