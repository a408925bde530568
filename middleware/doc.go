// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /items", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms) under a request id that is also returned as X-Request-ID.

# Scoped Connections

WithConn attaches a db.Scope to the request context and closes it when
the handler returns or panics:

	mux.HandleFunc("GET /items", middleware.WithConn(pool, handler))

# CORS and Recovery

	server := http.Server{
		Handler: middleware.Recoverer(middleware.CORS(mux)),
	}

CORS allows GET, POST, DELETE and OPTIONS with the Content-Type header.

# Form and JSON Helpers

Parse form bodies (urlencoded or multipart; JSON is rejected):

	if err := middleware.ParseForm(w, r); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form body")
		return
	}

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
