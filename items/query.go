// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package items

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/danielhkuo/quickly-todo/db"
	"github.com/danielhkuo/quickly-todo/models"
)

var itemColumns = []string{"item_id", "title", "creation_date", "completed", "completion_date"}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(row scanner) (models.Item, error) {
	var item models.Item
	var completed int64
	var completionDate sql.NullInt64

	if err := row.Scan(&item.ID, &item.Title, &item.CreationDate, &completed, &completionDate); err != nil {
		return models.Item{}, err
	}

	item.Completed = completed != 0
	if completionDate.Valid {
		d := completionDate.Int64
		item.CompletionDate = &d
	}
	return item, nil
}

// queryOne runs a single-row item query. No row is ErrNotFound.
func queryOne(ctx context.Context, q db.Querier, stmt sq.Sqlizer) (models.Item, error) {
	query, args, err := stmt.ToSql()
	if err != nil {
		return models.Item{}, fmt.Errorf("failed to build query: %w", err)
	}

	item, err := scanItem(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, ErrNotFound
	}
	return item, err
}

// queryAll runs an item query and collects every row
func queryAll(ctx context.Context, q db.Querier, stmt sq.Sqlizer) ([]models.Item, error) {
	query, args, err := stmt.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// exec runs a statement that returns no rows
func exec(ctx context.Context, q db.Querier, stmt sq.Sqlizer) (sql.Result, error) {
	query, args, err := stmt.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build statement: %w", err)
	}
	return q.ExecContext(ctx, query, args...)
}

// queryID runs a query selecting a single item_id. No row is ErrNotFound.
func queryID(ctx context.Context, q db.Querier, stmt sq.Sqlizer) (int64, error) {
	query, args, err := stmt.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	var id int64
	err = q.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	return id, err
}
