// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Todo server.

# Handler Types

  - ItemHandler: JSON API over items
  - ConsoleHandler: Server-rendered console pages and form actions

Both are built on an items.Service:

	svc := items.NewService(db, cfg.DatabaseType, cfg.SchemaPath)
	itemHandler := handlers.NewItemHandler(svc)
	consoleHandler := handlers.NewConsoleHandler(svc, tmpl, cfg)

# Errors

JSON handlers answer with {"error": "..."}: 400 for validation
failures and malformed updates, 404 for unknown ids, 500 for storage
errors. Storage details are logged, never returned.

# Console Messages

Console actions always redirect to /app_console. Messages for the next
render travel in a signed cookie (see auth.SealFlash) and are cleared
once shown.
*/
package handlers
