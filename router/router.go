// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"html/template"
	"net/http"
	"strings"

	"github.com/danielhkuo/quickly-todo/cliparse"
	"github.com/danielhkuo/quickly-todo/handlers"
	"github.com/danielhkuo/quickly-todo/items"
	"github.com/danielhkuo/quickly-todo/middleware"
	"github.com/danielhkuo/quickly-todo/web"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	svc := items.NewService(db, cfg.DatabaseType, cfg.SchemaPath)
	itemHandler := handlers.NewItemHandler(svc)
	consoleHandler := handlers.NewConsoleHandler(svc, template.Must(web.Templates()), cfg)

	// Every routed request gets logging and its own scoped connection
	wrap := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithConn(db, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// JSON API
	mux.HandleFunc("GET /items", wrap(itemHandler.ListItems))
	mux.HandleFunc("POST /item", wrap(itemHandler.CreateItem))
	mux.HandleFunc("GET /item/{id}", wrap(itemHandler.GetItem))
	mux.HandleFunc("POST /item/{id}", wrap(itemHandler.EditItem))
	mux.HandleFunc("DELETE /item/{id}", wrap(itemHandler.DeleteItem))
	for _, method := range []string{http.MethodPut, http.MethodPatch} {
		mux.HandleFunc(method+" /item/{id}", wrap(itemHandler.MethodNotSupported))
	}

	// HTML console
	mux.HandleFunc("GET /{$}", wrap(consoleHandler.Index))
	mux.HandleFunc("GET "+handlers.ConsolePath, wrap(consoleHandler.Console))
	mux.HandleFunc("POST /w_add_item", wrap(consoleHandler.AddItem))
	mux.HandleFunc("POST /w_complete_item", wrap(consoleHandler.CompleteItem))
	mux.HandleFunc("GET /w_wipe_all", wrap(consoleHandler.WipeAll))
	mux.HandleFunc("POST /w_wipe_all", wrap(consoleHandler.WipeAll))

	// Static files
	mux.HandleFunc("GET /favicon.ico", consoleHandler.Favicon)

	// Anything else, under any method
	mux.HandleFunc(catchAll, wrap(fallback(mux, consoleHandler.NotFound)))

	return mux
}

const catchAll = "/"

// routedMethods are the methods any route is registered under
var routedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// fallback answers requests no route claims: 405 when the path is routed
// under another method, otherwise notFound
func fallback(mux *http.ServeMux, notFound http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		allowed := allowedMethods(mux, r)
		if len(allowed) == 0 {
			notFound(w, r)
			return
		}

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

// allowedMethods lists the methods a route other than the catch-all
// serves r's path under
func allowedMethods(mux *http.ServeMux, r *http.Request) []string {
	var allowed []string
	for _, method := range routedMethods {
		alt := r.Clone(r.Context())
		alt.Method = method
		if _, pattern := mux.Handler(alt); pattern != "" && pattern != catchAll {
			allowed = append(allowed, method)
			if method == http.MethodGet {
				allowed = append(allowed, http.MethodHead)
			}
		}
	}
	return allowed
}
