package serve

import (
	"io"
	"net/http"

	"github.com/embedserve/embedserve/core/asset"
	"github.com/embedserve/embedserve/core/headers"
)

// response renders one terminal outcome. A non-nil error means the body
// stream failed after headers were committed; the caller can only log it.
type response func(w http.ResponseWriter, r *http.Request) error

// respondAsset builds the 200 response: metadata headers plus the streamed
// content. For HEAD the headers are identical and the content is discarded
// unread. The asset's content is closed on every path.
func respondAsset(a *asset.Asset, head bool) response {
	return func(w http.ResponseWriter, r *http.Request) error {
		defer a.Content.Close()

		h := w.Header()
		ct := a.Metadata.ContentType
		if ct == "" {
			ct = headers.OctetStream()
		}
		headers.SetContentType(h, ct)
		if a.Metadata.ETag != nil {
			headers.SetETag(h, *a.Metadata.ETag)
		}
		if !a.Metadata.LastModified.IsZero() {
			headers.SetLastModified(h, headers.LastModified(a.Metadata.LastModified))
		}

		w.WriteHeader(http.StatusOK)
		if head {
			return nil
		}

		// The writer pulls chunks from the content reader, so streamed
		// sources never get buffered whole and downstream backpressure is
		// respected.
		_, err := io.Copy(w, a.Content)
		return err
	}
}

// respondNotModified builds the 304 response: empty body, no headers beyond
// protocol defaults.
func respondNotModified() response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.WriteHeader(http.StatusNotModified)
		return nil
	}
}

// respondNotFound builds the 404 response used when no fallback is
// configured. The no-store directive keeps intermediaries from caching the
// negative result.
func respondNotFound() response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusNotFound)
		return nil
	}
}

// respondMethodNotAllowed builds the 405 response.
func respondMethodNotAllowed() response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Allow", "GET, HEAD")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return nil
	}
}

// respondInternalError builds the 500 response. Error detail never reaches
// the client.
func respondInternalError() response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusInternalServerError)
		return nil
	}
}

// noStoreWriter wraps the response writer handed to the fallback handler,
// injecting Cache-Control: no-store just before the headers are committed.
type noStoreWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *noStoreWriter) WriteHeader(status int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.Header().Set("Cache-Control", "no-store")
	w.ResponseWriter.WriteHeader(status)
}

func (w *noStoreWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// Flush implements http.Flusher if the underlying writer supports it.
func (w *noStoreWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
