package server

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vango-dev/dashml/pkg/builder"
	"github.com/vango-dev/dashml/pkg/middleware"
	"golang.org/x/net/html"
)

func TestNewRouter_MetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRouter(RouterConfig{
		Metrics:        true,
		MetricsOptions: []middleware.MetricsOption{middleware.WithRegistry(reg)},
		Gatherer:       reg,
	})
	r.Method(http.MethodGet, "/pages/{id}", Handler(Static(builder.Build("p", "page"))))

	srv := httptest.NewServer(r)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/pages/1")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	want := `dashml_requests_total{route="/pages/{id}",status="200"} 1`
	if !strings.Contains(string(body), want) {
		t.Errorf("metrics output missing %q:\n%s", want, body)
	}
}

func TestNewRouter_NoMetricsByDefault(t *testing.T) {
	r := NewRouter(RouterConfig{})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestNewRouter_RecoversPanics(t *testing.T) {
	r := NewRouter(RouterConfig{})
	r.Method(http.MethodGet, "/", Handler(func(*http.Request) (*html.Node, error) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestNewRouter_RequestLogAndMiddleware(t *testing.T) {
	var logs bytes.Buffer
	called := false
	r := NewRouter(RouterConfig{
		Logger:  slog.New(slog.NewTextHandler(&logs, nil)),
		Tracing: true,
		Middleware: []Middleware{func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				next.ServeHTTP(w, r)
			})
		}},
	})
	r.Method(http.MethodGet, "/", Handler(Static(builder.Build("p", "x"))))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if !called {
		t.Error("custom middleware was not called")
	}
	if out := logs.String(); !strings.Contains(out, "status=200") || !strings.Contains(out, "request_id=") {
		t.Errorf("request log = %q", out)
	}
}

func TestServer_ServeAndShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	srv := New(&ServerConfig{ShutdownTimeout: time.Second}, Handler(Static(builder.Build("p", "up"))))
	if srv.Config().Address != ":8080" {
		t.Errorf("default address = %q", srv.Config().Address)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != "<p>up</p>" {
		t.Errorf("body = %q", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
