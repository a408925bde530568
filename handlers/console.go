// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielhkuo/quickly-todo/auth"
	"github.com/danielhkuo/quickly-todo/cliparse"
	"github.com/danielhkuo/quickly-todo/items"
	"github.com/danielhkuo/quickly-todo/middleware"
	"github.com/danielhkuo/quickly-todo/models"
	"github.com/danielhkuo/quickly-todo/web"
)

// ConsolePath is where every console action redirects back to
const ConsolePath = "/app_console"

// FlashCookie holds the signed console messages between redirects
const FlashCookie = "todo_flash"

// Console flash messages
const (
	MsgItemCreated    = "New item created"
	MsgItemIDMissing  = "Item id not specified"
	MsgAllItemsWiped  = "All items removed"
	MsgConsoleDBError = "Something went wrong, please try again"
	MsgInvalidForm    = "Invalid form body"
)

const maxFlashes = 5

type ConsoleHandler struct {
	items *items.Service
	tmpl  *template.Template
	cfg   cliparse.Config
}

type consolePage struct {
	Title   string
	Items   []models.Item
	Flashes []string
}

type notFoundPage struct {
	Title string
	Path  string
}

func NewConsoleHandler(svc *items.Service, tmpl *template.Template, cfg cliparse.Config) *ConsoleHandler {
	return &ConsoleHandler{items: svc, tmpl: tmpl, cfg: cfg}
}

// Index handles GET /
func (h *ConsoleHandler) Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, ConsolePath, http.StatusFound)
}

// Console handles GET /app_console
func (h *ConsoleHandler) Console(w http.ResponseWriter, r *http.Request) {
	list, err := h.items.List(r.Context())
	if err != nil {
		slog.Error("failed to list items", "error", err)
		http.Error(w, MsgConsoleDBError, http.StatusInternalServerError)
		return
	}

	h.render(w, http.StatusOK, web.PageIndex, consolePage{
		Title:   "To-do console",
		Items:   list,
		Flashes: h.takeFlashes(w, r),
	})
}

// AddItem handles POST /w_add_item
func (h *ConsoleHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	if err := middleware.ParseForm(w, r); err != nil {
		h.redirect(w, r, MsgInvalidForm)
		return
	}

	item, err := h.items.Create(r.Context(), r.PostForm.Get(models.FieldTitle))
	switch {
	case err == nil:
		slog.Info("item created", "item_id", item.ID)
		h.redirect(w, r, MsgItemCreated)
	case items.IsValidation(err):
		h.redirect(w, r, err.Error())
	default:
		slog.Error("failed to create item", "error", err)
		h.redirect(w, r, MsgConsoleDBError)
	}
}

// CompleteItem handles POST /w_complete_item
// Flips the item between completed and open
func (h *ConsoleHandler) CompleteItem(w http.ResponseWriter, r *http.Request) {
	if err := middleware.ParseForm(w, r); err != nil {
		h.redirect(w, r, MsgInvalidForm)
		return
	}

	raw := strings.TrimSpace(r.PostForm.Get(models.FieldItemID))
	if raw == "" {
		h.redirect(w, r, MsgItemIDMissing)
		return
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.redirect(w, r, notFoundMessage(raw))
		return
	}

	item, err := h.items.Toggle(r.Context(), id)
	switch {
	case err == nil:
		slog.Info("item toggled", "item_id", id, "completed", item.Completed)
		h.redirect(w, r)
	case errors.Is(err, items.ErrNotFound):
		h.redirect(w, r, notFoundMessage(raw))
	default:
		slog.Error("failed to toggle item", "item_id", id, "error", err)
		h.redirect(w, r, MsgConsoleDBError)
	}
}

// WipeAll handles GET and POST /w_wipe_all
// Drops and recreates the table; there is no confirmation step
func (h *ConsoleHandler) WipeAll(w http.ResponseWriter, r *http.Request) {
	if err := h.items.Wipe(r.Context()); err != nil {
		slog.Error("failed to wipe items", "error", err)
		h.redirect(w, r, MsgConsoleDBError)
		return
	}
	h.redirect(w, r, MsgAllItemsWiped)
}

// Favicon handles GET /favicon.ico
func (h *ConsoleHandler) Favicon(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, web.Static(), web.FaviconPath)
}

// NotFound renders the 404 page for unknown routes
func (h *ConsoleHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusNotFound, web.PageNotFound, notFoundPage{
		Title: "Page not found",
		Path:  r.URL.Path,
	})
}

func (h *ConsoleHandler) render(w http.ResponseWriter, status int, page string, data any) {
	// Render fully before writing so template errors still get a 500
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, page, data); err != nil {
		slog.Error("failed to render template", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// redirect sends the browser back to the console, queueing messages
// for the next render
func (h *ConsoleHandler) redirect(w http.ResponseWriter, r *http.Request, messages ...string) {
	if len(messages) > 0 {
		h.setFlashes(w, r, messages)
	}
	http.Redirect(w, r, ConsolePath, http.StatusFound)
}

func (h *ConsoleHandler) setFlashes(w http.ResponseWriter, r *http.Request, messages []string) {
	// Keep anything not yet shown
	pending := h.readFlashes(r)
	all := append(pending, messages...)
	if len(all) > maxFlashes {
		all = all[len(all)-maxFlashes:]
	}

	sealed, err := auth.SealFlash(all, h.cfg.SecretKey)
	if err != nil {
		slog.Error("failed to seal flash", "error", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookie,
		Value:    sealed,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *ConsoleHandler) readFlashes(r *http.Request) []string {
	cookie, err := r.Cookie(FlashCookie)
	if err != nil {
		return nil
	}

	messages, err := auth.OpenFlash(cookie.Value, h.cfg.SecretKey)
	if err != nil {
		slog.Debug("discarding flash cookie", "error", err)
		return nil
	}
	return messages
}

// takeFlashes returns pending messages and clears the cookie
func (h *ConsoleHandler) takeFlashes(w http.ResponseWriter, r *http.Request) []string {
	if _, err := r.Cookie(FlashCookie); err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return h.readFlashes(r)
}
