// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package web

import (
	"bytes"
	"io/fs"
	"strings"
	"testing"
	"time"
)

func TestFormatDateTime(t *testing.T) {
	tests := []struct {
		ts   int64
		want string
	}{
		{0, "1970-01-01 @ 00:00"},
		{1700000000, "2023-11-14 @ 22:13"},
	}

	for _, tt := range tests {
		if got := FormatDateTime(tt.ts); got != tt.want {
			t.Errorf("FormatDateTime(%d) = %q, want %q", tt.ts, got, tt.want)
		}
	}
}

func TestTimeAgo(t *testing.T) {
	got := TimeAgo(time.Now().Add(-3 * time.Hour).Unix())
	if got != "3 hours ago" {
		t.Errorf("TimeAgo() = %q, want %q", got, "3 hours ago")
	}
}

func TestTemplates(t *testing.T) {
	tmpl, err := Templates()
	if err != nil {
		t.Fatalf("Templates() error = %v", err)
	}

	for _, name := range []string{PageIndex, PageNotFound} {
		if tmpl.Lookup(name) == nil {
			t.Errorf("template %s not defined", name)
		}
	}

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, PageNotFound, map[string]string{"Title": "Not found", "Path": "/nope<script>"})
	if err != nil {
		t.Fatalf("ExecuteTemplate() error = %v", err)
	}
	if strings.Contains(buf.String(), "<script>") {
		t.Error("path should be HTML-escaped")
	}
}

func TestStatic(t *testing.T) {
	data, err := fs.ReadFile(Static(), FaviconPath)
	if err != nil {
		t.Fatalf("favicon missing: %v", err)
	}
	// ICO header: reserved 0, type 1
	if len(data) < 6 || data[0] != 0 || data[1] != 0 || data[2] != 1 {
		t.Error("favicon is not an ICO file")
	}
}
