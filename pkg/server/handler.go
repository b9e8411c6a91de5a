package server

import (
	"log/slog"
	"net/http"
	"strconv"

	dasherr "github.com/vango-dev/dashml/internal/errors"
	"github.com/vango-dev/dashml/pkg/render"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// PageFunc builds the element tree for a request.
type PageFunc func(r *http.Request) (*html.Node, error)

// Static returns a PageFunc that always serves node. Rendering only reads
// the tree, so one node may be served concurrently.
func Static(node *html.Node) PageFunc {
	return func(*http.Request) (*html.Node, error) {
		return node, nil
	}
}

// handlerConfig holds the options of a page handler.
type handlerConfig struct {
	doctype  bool
	renderer *render.Renderer
	logger   *slog.Logger
}

// Option configures a page handler.
type Option func(*handlerConfig)

// WithDoctype controls the <!DOCTYPE html> prefix on full documents.
// Default: true.
func WithDoctype(enabled bool) Option {
	return func(c *handlerConfig) {
		c.doctype = enabled
	}
}

// WithRendererConfig sets the renderer configuration.
func WithRendererConfig(cfg render.RendererConfig) Option {
	return func(c *handlerConfig) {
		c.renderer = render.NewRenderer(cfg)
	}
}

// WithLogger sets the logger for page failures.
// Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *handlerConfig) {
		c.logger = logger
	}
}

// pageHandler renders the result of a PageFunc.
type pageHandler struct {
	page PageFunc
	cfg  handlerConfig
}

// Handler returns an http.Handler that renders the tree built by page.
//
// The response is text/html. When the tree's root is an <html> element the
// body starts with <!DOCTYPE html>. Failures answer 500 with no page body.
func Handler(page PageFunc, opts ...Option) http.Handler {
	cfg := handlerConfig{
		doctype:  true,
		renderer: render.NewRenderer(render.RendererConfig{}),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	return &pageHandler{page: page, cfg: cfg}
}

func (h *pageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	node, err := h.page(r)
	if err != nil {
		h.fail(w, r, dasherr.New("E040").Wrap(err))
		return
	}

	body, err := h.cfg.renderer.RenderToString(node)
	if err != nil {
		h.fail(w, r, dasherr.New("E040").WithDetail("render failed").Wrap(err))
		return
	}
	if h.cfg.doctype && isDocument(node) {
		body = "<!DOCTYPE html>" + body
	}

	header := w.Header()
	header.Set("Content-Type", "text/html; charset=utf-8")
	header.Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write([]byte(body)); err != nil {
		h.cfg.logger.Debug("write failed", "path", r.URL.Path, "error", err)
	}
}

func (h *pageHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.cfg.logger.Error("page failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// isDocument reports whether node is an <html> root element.
func isDocument(node *html.Node) bool {
	return node != nil && node.Type == html.ElementNode &&
		(node.DataAtom == atom.Html || node.Data == "html")
}
