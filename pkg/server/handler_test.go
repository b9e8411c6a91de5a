package server

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vango-dev/dashml/pkg/builder"
	"github.com/vango-dev/dashml/pkg/render"
	"golang.org/x/net/html"
)

func document() *html.Node {
	return builder.Build("html",
		builder.Build("head", builder.Build("title", "Home")),
		builder.Build("body", builder.Build("p", "a < b")),
	)
}

func get(h http.Handler, method string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, "/", nil))
	return rec
}

func TestHandler_RendersPage(t *testing.T) {
	tests := []struct {
		name string
		page *html.Node
		opts []Option
		want string
	}{
		{
			name: "document gets doctype",
			page: document(),
			want: "<!DOCTYPE html><html><head><title>Home</title></head><body><p>a &lt; b</p></body></html>",
		},
		{
			name: "doctype disabled",
			page: document(),
			opts: []Option{WithDoctype(false)},
			want: "<html><head><title>Home</title></head><body><p>a &lt; b</p></body></html>",
		},
		{
			name: "fragment has no doctype",
			page: builder.Build("p", "hi"),
			want: "<p>hi</p>",
		},
		{
			name: "pretty",
			page: builder.Build("ul", builder.Build("li", "a")),
			opts: []Option{WithRendererConfig(render.RendererConfig{Pretty: true})},
			want: "<ul>\n  <li>a</li>\n</ul>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(Handler(Static(tt.page), tt.opts...), http.MethodGet)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
				t.Errorf("Content-Type = %q", ct)
			}
			if got := rec.Body.String(); got != tt.want {
				t.Errorf("body = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHandler_HeadHasNoBody(t *testing.T) {
	rec := get(Handler(Static(builder.Build("p", "hi"))), http.MethodHead)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rec.Body.String())
	}
	if cl := rec.Header().Get("Content-Length"); cl != "9" {
		t.Errorf("Content-Length = %q, want 9", cl)
	}
}

func TestHandler_Failures(t *testing.T) {
	tests := []struct {
		name    string
		page    PageFunc
		wantLog string
	}{
		{
			name: "page error",
			page: func(*http.Request) (*html.Node, error) {
				return nil, errors.New("database down")
			},
			wantLog: "database down",
		},
		{
			name:    "render error",
			page:    Static(builder.Build("div", builder.Build("p", "ok"), builder.Build("bad tag"))),
			wantLog: "E001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&logs, nil))

			rec := get(Handler(tt.page, WithLogger(logger)), http.MethodGet)

			if rec.Code != http.StatusInternalServerError {
				t.Fatalf("status = %d, want 500", rec.Code)
			}
			if strings.Contains(rec.Body.String(), "<p>") {
				t.Errorf("body leaked partial page: %q", rec.Body.String())
			}
			out := logs.String()
			if !strings.Contains(out, "page failed") || !strings.Contains(out, "E040") {
				t.Errorf("log = %q, want page failure with E040", out)
			}
			if !strings.Contains(out, tt.wantLog) {
				t.Errorf("log = %q, want it to mention %q", out, tt.wantLog)
			}
		})
	}
}

func TestHandler_UsesRequest(t *testing.T) {
	h := Handler(func(r *http.Request) (*html.Node, error) {
		return builder.Build("p", r.URL.Query().Get("name")), nil
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?name=%3Cb%3E", nil))

	if got := rec.Body.String(); got != "<p>&lt;b&gt;</p>" {
		t.Errorf("body = %q", got)
	}
}
