// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package items

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/danielhkuo/quickly-todo/db"
	"github.com/danielhkuo/quickly-todo/models"
)

var (
	ErrEmptyTitle     = errors.New("Item title not specified")
	ErrDuplicateTitle = errors.New("Title should be unique.")
	ErrNotFound       = errors.New("item not found")
	ErrUnknownField   = errors.New("unknown field")
	ErrInvalidValue   = errors.New("invalid value")
)

// IsValidation reports whether err is caused by bad client input
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyTitle) ||
		errors.Is(err, ErrDuplicateTitle) ||
		errors.Is(err, ErrUnknownField) ||
		errors.Is(err, ErrInvalidValue)
}

// Service implements the item operations on top of a pool. Calls made
// with a context carrying a db.Scope run on the scope's connection.
type Service struct {
	db         *sql.DB
	sb         sq.StatementBuilderType
	dialect    string
	schemaPath string

	// Now returns the current time; replaced in tests
	Now func() time.Time
}

func NewService(pool *sql.DB, dialect, schemaPath string) *Service {
	return &Service{
		db:         pool,
		sb:         db.Builder(dialect),
		dialect:    dialect,
		schemaPath: schemaPath,
		Now:        time.Now,
	}
}

func (s *Service) querier(ctx context.Context) (db.Querier, error) {
	return db.QuerierFrom(ctx, s.db)
}

func (s *Service) selectItems() sq.SelectBuilder {
	return s.sb.Select(itemColumns...).From(db.TableName)
}

func (s *Service) selectByID(id int64) sq.SelectBuilder {
	return s.selectItems().Where(sq.Eq{"item_id": id})
}

// List returns every item in id order
func (s *Service) List(ctx context.Context) ([]models.Item, error) {
	q, err := s.querier(ctx)
	if err != nil {
		return nil, err
	}

	items, err := queryAll(ctx, q, s.selectItems().OrderBy("item_id"))
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	slog.Debug("items listed", "count", len(items))
	return items, nil
}

// Create inserts a new, uncompleted item
func (s *Service) Create(ctx context.Context, title string) (models.Item, error) {
	if title == "" {
		return models.Item{}, ErrEmptyTitle
	}

	q, err := s.querier(ctx)
	if err != nil {
		return models.Item{}, err
	}

	taken, err := s.titleTaken(ctx, q, title, 0)
	if err != nil {
		return models.Item{}, err
	}
	if taken {
		return models.Item{}, duplicateTitle(title)
	}

	id, err := queryID(ctx, q, s.sb.Insert(db.TableName).
		Columns("title", "creation_date", "completed").
		Values(title, s.Now().Unix(), 0).
		Suffix("RETURNING item_id"))
	if db.IsUniqueViolation(err) {
		// lost a race with a concurrent create
		return models.Item{}, duplicateTitle(title)
	}
	if err != nil {
		return models.Item{}, fmt.Errorf("failed to insert item: %w", err)
	}
	slog.Debug("item inserted", "item_id", id)

	item, err := queryOne(ctx, q, s.selectByID(id))
	if err != nil {
		return models.Item{}, fmt.Errorf("failed to read new item: %w", err)
	}
	return item, nil
}

// Get returns the item with the given id or ErrNotFound
func (s *Service) Get(ctx context.Context, id int64) (models.Item, error) {
	q, err := s.querier(ctx)
	if err != nil {
		return models.Item{}, err
	}

	slog.Debug("getting item", "item_id", id)
	item, err := queryOne(ctx, q, s.selectByID(id))
	if err != nil {
		return models.Item{}, wrapLookup(err, id)
	}
	return item, nil
}

// Exists reports whether an item with the given id exists
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	q, err := s.querier(ctx)
	if err != nil {
		return false, err
	}

	_, err = queryID(ctx, q, s.sb.Select("item_id").From(db.TableName).Where(sq.Eq{"item_id": id}))
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up item %d: %w", id, err)
	}
	return true, nil
}

// Edit applies update to the item and returns the result. Setting
// Completed to true stamps completion_date unless the item is already
// completed; setting it to false clears completion_date.
func (s *Service) Edit(ctx context.Context, id int64, update models.ItemUpdate) (models.Item, error) {
	q, err := s.querier(ctx)
	if err != nil {
		return models.Item{}, err
	}

	slog.Debug("editing item", "item_id", id, "fields", update)

	current, err := queryOne(ctx, q, s.selectByID(id))
	if err != nil {
		return models.Item{}, wrapLookup(err, id)
	}
	if update.Empty() {
		return current, nil
	}

	stmt := s.sb.Update(db.TableName).Where(sq.Eq{"item_id": id})

	if update.Title != nil {
		title := *update.Title
		if title == "" {
			return models.Item{}, ErrEmptyTitle
		}
		if title != current.Title {
			taken, err := s.titleTaken(ctx, q, title, id)
			if err != nil {
				return models.Item{}, err
			}
			if taken {
				return models.Item{}, duplicateTitle(title)
			}
		}
		stmt = stmt.Set("title", title)
	}

	if update.Completed != nil {
		completed := *update.Completed
		stmt = stmt.Set("completed", boolToInt(completed))
		switch {
		case !completed:
			stmt = stmt.Set("completion_date", nil)
		case !current.Completed || current.CompletionDate == nil:
			stmt = stmt.Set("completion_date", s.Now().Unix())
		}
	}

	if _, err := exec(ctx, q, stmt); err != nil {
		if db.IsUniqueViolation(err) && update.Title != nil {
			return models.Item{}, duplicateTitle(*update.Title)
		}
		return models.Item{}, fmt.Errorf("failed to update item %d: %w", id, err)
	}

	item, err := queryOne(ctx, q, s.selectByID(id))
	if err != nil {
		return models.Item{}, wrapLookup(err, id)
	}
	return item, nil
}

// Toggle flips the completion state of an item
func (s *Service) Toggle(ctx context.Context, id int64) (models.Item, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return models.Item{}, err
	}

	completed := !current.Completed
	return s.Edit(ctx, id, models.ItemUpdate{Completed: &completed})
}

// Delete removes the item. A missing id is not an error; callers check
// existence first.
func (s *Service) Delete(ctx context.Context, id int64) error {
	q, err := s.querier(ctx)
	if err != nil {
		return err
	}

	slog.Debug("deleting item", "item_id", id)
	if _, err := exec(ctx, q, s.sb.Delete(db.TableName).Where(sq.Eq{"item_id": id})); err != nil {
		return fmt.Errorf("failed to delete item %d: %w", id, err)
	}
	return nil
}

// Wipe drops and recreates the item table. The request's scoped
// connection is released first so the reset runs on a fresh one.
func (s *Service) Wipe(ctx context.Context) error {
	if scope, ok := db.ScopeFrom(ctx); ok {
		if err := scope.Close(); err != nil {
			slog.Warn("failed to release connection before wipe", "error", err)
		}
	}

	q, err := s.querier(ctx)
	if err != nil {
		return err
	}

	if err := db.ResetSchema(ctx, q, s.dialect, s.schemaPath); err != nil {
		return fmt.Errorf("failed to wipe items: %w", err)
	}
	slog.Info("all items wiped")
	return nil
}

// titleTaken reports whether an item other than exceptID has title
func (s *Service) titleTaken(ctx context.Context, q db.Querier, title string, exceptID int64) (bool, error) {
	id, err := queryID(ctx, q, s.sb.Select("item_id").From(db.TableName).Where(sq.Eq{"title": title}))
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check title: %w", err)
	}
	return id != exceptID, nil
}

func duplicateTitle(title string) error {
	return fmt.Errorf("Item with title %s already exist. %w", title, ErrDuplicateTitle)
}

func wrapLookup(err error, id int64) error {
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("item %d: %w", id, ErrNotFound)
	}
	return fmt.Errorf("failed to read item %d: %w", id, err)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
