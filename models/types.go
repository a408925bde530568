package models

import "log/slog"

// Messages returned by the API
const (
	MsgItemRemoved        = "Item removed"
	MsgMethodNotSupported = "Method not supported"
)

// Form fields accepted by the API and console
const (
	FieldTitle     = "title"
	FieldCompleted = "completed"
	FieldItemID    = "item_id"
)

// Domain types

// Item is one row of the TodoItem table. CompletionDate is nil unless
// Completed is true.
type Item struct {
	ID             int64  `json:"item_id"`
	Title          string `json:"title"`
	CreationDate   int64  `json:"creation_date"`
	Completed      bool   `json:"completed"`
	CompletionDate *int64 `json:"completion_date"`
}

// ItemUpdate lists the fields an edit may change. Nil means unchanged.
type ItemUpdate struct {
	Title     *string
	Completed *bool
}

func (u ItemUpdate) Empty() bool {
	return u.Title == nil && u.Completed == nil
}

// LogValue logs only the fields being set
func (u ItemUpdate) LogValue() slog.Value {
	var attrs []slog.Attr
	if u.Title != nil {
		attrs = append(attrs, slog.String("title", *u.Title))
	}
	if u.Completed != nil {
		attrs = append(attrs, slog.Bool("completed", *u.Completed))
	}
	return slog.GroupValue(attrs...)
}

// Response types

type ListItemsResponse struct {
	Results []Item `json:"results"`
}

type MessageResponse struct {
	Results string `json:"results"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
