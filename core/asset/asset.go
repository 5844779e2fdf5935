package asset

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"mime"
	"path"
	"time"

	"github.com/embedserve/embedserve/core/headers"
)

// ErrNotFound is returned by Source implementations when a path does not
// resolve to any asset. The handler maps it to 404 or fallback delegation;
// every other resolution error is treated as an internal failure.
var ErrNotFound = errors.New("asset not found")

// DefaultIndexFile is the file served for directory paths unless overridden.
const DefaultIndexFile = "index.html"

// Metadata describes a resolved asset. Values are immutable after
// construction.
type Metadata struct {
	// ContentType is the media type of the content. Always present; an empty
	// value is rendered as application/octet-stream.
	ContentType headers.ContentType

	// ETag is the entity-tag validator, when one is known.
	ETag *headers.ETag

	// LastModified is the modification time at second precision. The zero
	// value means the time is unknown and If-Modified-Since checks are
	// skipped.
	LastModified time.Time
}

// Asset is one resolved piece of content. Content is consumed at most once
// and must be closed by the consumer on every path, including when no body is
// transmitted.
type Asset struct {
	Content  io.ReadCloser
	Metadata Metadata
}

// Source resolves a normalized path (no leading slash, index file already
// appended for directory-style requests) to an asset. Implementations must be
// safe for concurrent use.
type Source interface {
	Resolve(ctx context.Context, path string) (*Asset, error)
}

// StrongETag derives a strong entity-tag from content: the lowercase hex
// SHA-256 digest of the bytes.
func StrongETag(content []byte) headers.ETag {
	sum := sha256.Sum256(content)
	return headers.ETag{Tag: hex.EncodeToString(sum[:])}
}

// contentTypeFor guesses a media type from the file extension, falling back
// to application/octet-stream.
func contentTypeFor(name string) headers.ContentType {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		if parsed, ok := headers.ParseContentType(ct); ok {
			return parsed
		}
	}
	return headers.OctetStream()
}
