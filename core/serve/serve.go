package serve

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/embedserve/embedserve/core/asset"
	"github.com/embedserve/embedserve/core/headers"
	"github.com/embedserve/embedserve/core/logger"
)

// config holds handler configuration. It is assembled once by New and never
// mutated afterwards.
type config struct {
	fallback http.Handler
	index    string
	log      *slog.Logger
}

// Option is a functional option type for configuring the handler.
type Option func(*config)

// WithFallback sets a secondary handler invoked when resolution reports not
// found. The fallback's response is passed through unchanged except for an
// added Cache-Control: no-store header. The handler is shared across requests
// and must be safe for concurrent use.
func WithFallback(h http.Handler) Option {
	return func(c *config) {
		c.fallback = h
	}
}

// WithIndexFile sets the file name appended to directory-style request paths
// (default: "index.html").
func WithIndexFile(name string) Option {
	return func(c *config) {
		c.index = name
	}
}

// WithLogger sets the logger used for resolution failures and stream aborts
// (default: slog.Default()).
func WithLogger(log *slog.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

// Handler serves assets from a Source with conditional-request negotiation.
// Create it with New; the zero value is not usable.
type Handler struct {
	src      asset.Source
	fallback http.Handler
	index    string
	log      *slog.Logger
}

// New creates a handler serving assets from src.
func New(src asset.Source, opts ...Option) *Handler {
	cfg := config{
		index: asset.DefaultIndexFile,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Handler{
		src:      src,
		fallback: cfg.fallback,
		index:    cfg.index,
		log:      cfg.log,
	}
}

// ServeHTTP drives one request to exactly one terminal outcome:
// 405 for methods other than GET/HEAD, 404 or fallback delegation for
// unresolved paths, 500 for resolution failures, 304 when the client's
// validators still hold, 200 otherwise.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		h.render(w, r, respondMethodNotAllowed())
		return
	}

	p := normalizePath(r.URL.Path, h.index)

	a, err := h.src.Resolve(r.Context(), p)
	switch {
	case errors.Is(err, asset.ErrNotFound):
		if h.fallback != nil {
			h.fallback.ServeHTTP(&noStoreWriter{ResponseWriter: w}, r)
			return
		}
		h.render(w, r, respondNotFound())
		return
	case err != nil:
		h.log.ErrorContext(r.Context(), "asset resolution failed",
			logger.Path(p), logger.Error(err))
		h.render(w, r, respondInternalError())
		return
	}

	if inm, ims := conditionalHeaders(r.Header); evaluate(inm, ims, a.Metadata) == condNotModified {
		_ = a.Content.Close()
		h.render(w, r, respondNotModified())
		return
	}

	h.render(w, r, respondAsset(a, r.Method == http.MethodHead))
}

// render executes a terminal response. Errors here mean the body stream
// failed after headers were committed; the transfer is aborted and the error
// only logged.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, resp response) {
	if err := resp(w, r); err != nil {
		h.log.ErrorContext(r.Context(), "response stream aborted",
			logger.Path(r.URL.Path), logger.Error(err))
	}
}

// normalizePath maps a request path to a source path: one leading slash
// stripped, directory-style paths (empty or trailing slash) mapped to the
// index file.
func normalizePath(p, index string) string {
	p = strings.TrimPrefix(p, "/")
	if p == "" || strings.HasSuffix(p, "/") {
		p += index
	}
	return p
}

// NotFoundAsset returns a fallback handler that serves a fixed asset, such as
// a custom 404 page, with status 404. The asset's media type is preserved;
// validators are deliberately not emitted on an error response.
func NotFoundAsset(src asset.Source, path string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a, err := src.Resolve(r.Context(), path)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		defer a.Content.Close()

		ct := a.Metadata.ContentType
		if ct == "" {
			ct = headers.OctetStream()
		}
		headers.SetContentType(w.Header(), ct)
		w.WriteHeader(http.StatusNotFound)
		if r.Method != http.MethodHead {
			_, _ = io.Copy(w, a.Content)
		}
	})
}
