// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package web

import (
	"embed"
	"html/template"
	"io/fs"
	"time"

	"github.com/dustin/go-humanize"
)

// Page names
const (
	PageIndex    = "index.html"
	PageNotFound = "404.html"
)

// FaviconPath is the favicon's location inside Static
const FaviconPath = "img/favicon.ico"

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Static returns the static asset tree rooted at static/
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// static is embedded above, so the subtree always exists
		panic(err)
	}
	return sub
}

// Templates parses the console templates
func Templates() (*template.Template, error) {
	return template.New("console").Funcs(template.FuncMap{
		"datetimeformat": FormatDateTime,
		"timeago":        TimeAgo,
	}).ParseFS(templateFS, "templates/*.html")
}

// FormatDateTime renders a Unix timestamp as "2006-01-02 @ 15:04" in UTC
func FormatDateTime(ts int64) string {
	return time.Unix(ts, 0).UTC().Format("2006-01-02 @ 15:04")
}

// TimeAgo renders a Unix timestamp relative to now, e.g. "3 minutes ago"
func TimeAgo(ts int64) string {
	return humanize.Time(time.Unix(ts, 0))
}
