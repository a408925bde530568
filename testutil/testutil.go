// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-todo/cliparse"
	"github.com/danielhkuo/quickly-todo/db"
)

// PostgresURLEnv names the variable that switches the suite to PostgreSQL
const PostgresURLEnv = "TODO_TEST_POSTGRES_URL"

// TestSecret signs flash cookies in tests
const TestSecret = "test-secret-key"

// SetupTestDB creates a fresh database with the full schema. SQLite in a
// temp dir by default; PostgreSQL when TODO_TEST_POSTGRES_URL is set.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()
	dialect, url := testTarget(t)

	conn, err := db.Open(ctx, dialect, url)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// Start every test from an empty table
	if err := db.ResetSchema(ctx, conn, dialect, ""); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// TestDialect returns the dialect SetupTestDB connects with
func TestDialect() string {
	if os.Getenv(PostgresURLEnv) != "" {
		return db.DialectPostgres
	}
	return db.DialectSQLite
}

func testTarget(t *testing.T) (dialect, url string) {
	if pg := os.Getenv(PostgresURLEnv); pg != "" {
		return db.DialectPostgres, pg
	}
	return db.DialectSQLite, filepath.Join(t.TempDir(), "todo.db")
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         5000,
		DatabaseURL:  "todo.db",
		DatabaseType: TestDialect(),
		SecretKey:    TestSecret,
	}
}

// CreateTestItem inserts an item directly and returns its id
func CreateTestItem(t *testing.T, conn *sql.DB, title string, completed bool) int64 {
	t.Helper()

	now := time.Now().Unix()
	var completedFlag int
	var completionDate *int64
	if completed {
		completedFlag = 1
		completionDate = &now
	}

	query, args, err := db.Builder(TestDialect()).
		Insert(db.TableName).
		Columns("title", "creation_date", "completed", "completion_date").
		Values(title, now, completedFlag, completionDate).
		Suffix("RETURNING item_id").
		ToSql()
	if err != nil {
		t.Fatalf("Failed to build insert: %v", err)
	}

	var id int64
	if err := conn.QueryRow(query, args...).Scan(&id); err != nil {
		t.Fatalf("Failed to create test item: %v", err)
	}
	return id
}

// CountItems returns the number of rows in the item table
func CountItems(t *testing.T, conn *sql.DB) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + db.TableName).Scan(&n); err != nil {
		t.Fatalf("Failed to count items: %v", err)
	}
	return n
}

// MakeFormRequest creates an HTTP test request with a form-encoded body
func MakeFormRequest(method, path string, form url.Values, headers map[string]string) *http.Request {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
