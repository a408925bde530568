// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/danielhkuo/quickly-todo/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootRedirectsToConsole(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Errorf("Expected status 302, got %d", w.Code)
	}

	if loc := w.Header().Get("Location"); loc != "/app_console" {
		t.Errorf("Expected redirect to /app_console, got '%s'", loc)
	}
}

func TestRouteExistence(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	// Routes respond through their handler; 400 and 404 are valid handler answers
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},

		// JSON API
		{"GET", "/items"},
		{"POST", "/item"},
		{"GET", "/item/1"},
		{"POST", "/item/1"},
		{"DELETE", "/item/1"},
		{"PUT", "/item/1"},
		{"PATCH", "/item/1"},

		// Console
		{"GET", "/app_console"},
		{"POST", "/w_add_item"},
		{"POST", "/w_complete_item"},
		{"GET", "/w_wipe_all"},
		{"POST", "/w_wipe_all"},
		{"GET", "/favicon.ico"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	testCases := []struct {
		method string
		path   string
		allow  string
	}{
		{"POST", "/health", "GET, HEAD"},
		{"DELETE", "/items", "GET, HEAD"},
		{"GET", "/w_add_item", "POST"},
		{"DELETE", "/w_wipe_all", "GET, HEAD, POST"},
		{"POST", "/", "GET, HEAD"},
		{"POST", "/items", "GET, HEAD"},
		{"DELETE", "/app_console", "GET, HEAD"},
		{"GET", "/w_complete_item", "POST"},
		{"OPTIONS", "/item/1", "GET, HEAD, POST, PUT, PATCH, DELETE"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
			if got := w.Header().Get("Allow"); got != tc.allow {
				t.Errorf("Expected Allow '%s' for %s %s, got '%s'", tc.allow, tc.method, tc.path, got)
			}
		})
	}
}

func TestItemMethodNotSupported(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	for _, method := range []string{"PUT", "PATCH"} {
		t.Run(method, func(t *testing.T) {
			req := httptest.NewRequest(method, "/item/1", nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			testutil.AssertStatus(t, w, http.StatusBadRequest)

			var resp struct {
				Error string `json:"error"`
			}
			testutil.AssertJSON(t, w, &resp)
			if resp.Error != "Method not supported" {
				t.Errorf("Expected 'Method not supported', got '%s'", resp.Error)
			}
		})
	}
}

func TestUnknownPathRendersNotFoundPage(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	// Unknown paths are 404 whatever the method
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/no/such/page"},
		{"POST", "/nonexistent"},
		{"DELETE", "/nonexistent"},
		{"GET", "/item/1/extra"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			testutil.AssertStatus(t, w, http.StatusNotFound)

			if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
				t.Errorf("Expected HTML content type, got '%s'", ct)
			}
			if !strings.Contains(w.Body.String(), tc.path) {
				t.Error("Expected 404 page to mention the requested path")
			}
			if allow := w.Header().Get("Allow"); allow != "" {
				t.Errorf("Expected no Allow header on 404, got '%s'", allow)
			}
		})
	}
}

func TestFavicon(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	req := httptest.NewRequest("GET", "/favicon.ico", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	if w.Body.Len() == 0 {
		t.Error("Expected favicon bytes")
	}
}

func TestPathParameterExtraction(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	id := testutil.CreateTestItem(t, db, "Buy milk", false)

	mux := NewRouter(db, cfg)

	t.Run("item ID extraction", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/item/"+strconv.FormatInt(id, 10), nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200 for existing item, got %d. Body: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), "Buy milk") {
			t.Errorf("Expected item in body, got %s", w.Body.String())
		}
	})
}

func TestRequestIDHeader(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	req := httptest.NewRequest("GET", "/items", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected routed requests to carry a request id")
	}
}
