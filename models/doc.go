// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain and response types for the API.

# Domain Types

  - Item: one to-do entry (item_id, title, creation_date, completed,
    completion_date)
  - ItemUpdate: the allow-listed fields an edit may change

Timestamps are Unix seconds. completion_date is null unless completed is
true.

# Response Types

  - ListItemsResponse: {"results": [...]}
  - MessageResponse: {"results": "Item removed"}
  - ErrorResponse: {"error": "..."}

Single items are written as top-level JSON objects.

# Form Fields

Request bodies are form-encoded, never JSON:

	FieldTitle     = "title"
	FieldCompleted = "completed"
	FieldItemID    = "item_id"
*/
package models
