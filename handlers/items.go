// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/danielhkuo/quickly-todo/items"
	"github.com/danielhkuo/quickly-todo/middleware"
	"github.com/danielhkuo/quickly-todo/models"
)

type ItemHandler struct {
	items *items.Service
}

func NewItemHandler(svc *items.Service) *ItemHandler {
	return &ItemHandler{items: svc}
}

// ListItems handles GET /items
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	list, err := h.items.List(r.Context())
	if err != nil {
		slog.Error("failed to list items", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListItemsResponse{Results: list})
}

// CreateItem handles POST /item
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	if err := middleware.ParseForm(w, r); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form body")
		return
	}

	item, err := h.items.Create(r.Context(), r.PostForm.Get(models.FieldTitle))
	if err != nil {
		writeItemError(w, err, "")
		return
	}

	slog.Info("item created", "item_id", item.ID)
	middleware.JSONResponse(w, http.StatusOK, item)
}

// GetItem handles GET /item/{id}
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.lookup(w, r)
	if !ok {
		return
	}

	item, err := h.items.Get(r.Context(), id)
	if err != nil {
		writeItemError(w, err, r.PathValue("id"))
		return
	}

	middleware.JSONResponse(w, http.StatusOK, item)
}

// EditItem handles POST /item/{id}
func (h *ItemHandler) EditItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.lookup(w, r)
	if !ok {
		return
	}

	if err := middleware.ParseForm(w, r); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form body")
		return
	}

	update, err := ParseItemUpdate(r.PostForm)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Error updating TodoItem: "+err.Error())
		return
	}

	item, err := h.items.Edit(r.Context(), id, update)
	if err != nil {
		writeItemError(w, err, r.PathValue("id"))
		return
	}

	slog.Info("item updated", "item_id", id)
	middleware.JSONResponse(w, http.StatusOK, item)
}

// DeleteItem handles DELETE /item/{id}
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.lookup(w, r)
	if !ok {
		return
	}

	if err := h.items.Delete(r.Context(), id); err != nil {
		writeItemError(w, err, r.PathValue("id"))
		return
	}

	slog.Info("item deleted", "item_id", id)
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Results: models.MsgItemRemoved})
}

// MethodNotSupported handles any other method on /item/{id}
func (h *ItemHandler) MethodNotSupported(w http.ResponseWriter, r *http.Request) {
	middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgMethodNotSupported)
}

// lookup resolves the {id} path value to an existing item id, writing a
// 404 when there is none
func (h *ItemHandler) lookup(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, notFoundMessage(raw))
		return 0, false
	}

	exists, err := h.items.Exists(r.Context(), id)
	if err != nil {
		slog.Error("failed to look up item", "item_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return 0, false
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusNotFound, notFoundMessage(raw))
		return 0, false
	}

	return id, true
}

// ParseItemUpdate maps form fields onto the updatable item fields.
// Only title and completed may be set.
func ParseItemUpdate(form url.Values) (models.ItemUpdate, error) {
	var update models.ItemUpdate

	for key, values := range form {
		if len(values) == 0 {
			continue
		}
		value := values[0]

		switch key {
		case models.FieldTitle:
			title := value
			update.Title = &title
		case models.FieldCompleted:
			completed, err := strconv.ParseBool(value)
			if err != nil {
				return models.ItemUpdate{}, fmt.Errorf("%w for %s: %q", items.ErrInvalidValue, key, value)
			}
			update.Completed = &completed
		default:
			return models.ItemUpdate{}, fmt.Errorf("%w: %s", items.ErrUnknownField, key)
		}
	}

	return update, nil
}

// writeItemError maps item service errors onto status codes. Storage
// errors are logged and reported generically.
func writeItemError(w http.ResponseWriter, err error, rawID string) {
	switch {
	case errors.Is(err, items.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, notFoundMessage(rawID))
	case items.IsValidation(err):
		slog.Debug("rejected item request", "error", err)
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("item operation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}

func notFoundMessage(rawID string) string {
	return "No item with id=" + rawID
}
