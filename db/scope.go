// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Scope holds at most one pooled connection for the lifetime of a single
// request. The connection is acquired on first use and returned to the
// pool by Close. A Scope is not safe for concurrent use; a request's
// handler goroutine is its only user.
type Scope struct {
	db   *sql.DB
	conn *sql.Conn
}

func NewScope(db *sql.DB) *Scope {
	return &Scope{db: db}
}

// Conn returns the scope's connection, acquiring it if needed
func (s *Scope) Conn(ctx context.Context) (*sql.Conn, error) {
	if s.conn != nil {
		return s.conn, nil
	}

	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	s.conn = conn
	return conn, nil
}

// Acquired reports whether a connection is currently held
func (s *Scope) Acquired() bool {
	return s.conn != nil
}

// Close releases the connection, if any. Calling Close more than once
// is fine; a later Conn call acquires a fresh connection.
func (s *Scope) Close() error {
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}

type scopeKey struct{}

// WithScope attaches s to ctx
func WithScope(ctx context.Context, s *Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

// ScopeFrom returns the request scope attached to ctx, if any
func ScopeFrom(ctx context.Context) (*Scope, bool) {
	s, ok := ctx.Value(scopeKey{}).(*Scope)
	return s, ok && s != nil
}

// QuerierFrom returns the request's scoped connection when ctx carries a
// Scope, or the pool itself otherwise
func QuerierFrom(ctx context.Context, pool *sql.DB) (Querier, error) {
	if s, ok := ScopeFrom(ctx); ok {
		return s.Conn(ctx)
	}
	return pool, nil
}
