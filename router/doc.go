// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Todo server.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

JSON API:

	GET    /items     - List every item
	POST   /item      - Create an item (form field: title)
	GET    /item/{id} - Get one item
	POST   /item/{id} - Update title and/or completed
	DELETE /item/{id} - Remove an item

PUT and PATCH on /item/{id} answer 400 "Method not supported".

Console:

	GET      /                - Redirect to /app_console
	GET      /app_console     - Item table and forms
	POST     /w_add_item      - Add an item
	POST     /w_complete_item - Toggle an item's completion
	GET|POST /w_wipe_all      - Drop and recreate the table
	GET      /favicon.ico     - Site icon

A known path requested with a method it is not routed under answers
405 with an Allow header. Any other path renders the 404 page, whatever
the method.

# Request Scope

Every route except /health and /favicon.ico runs inside
middleware.WithLogging and middleware.WithConn, so a request uses at
most one pooled connection and always gives it back.
*/
package router
