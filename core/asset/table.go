package asset

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"time"
)

// redirectHopLimit bounds redirect-following during table lookups so that a
// malformed table can never spin the resolver.
const redirectHopLimit = 8

// entry is one row of the compiled table: either literal content with its
// metadata, or a redirect to another path (directories redirect to their
// index file).
type entry struct {
	content  []byte
	meta     Metadata
	redirect string
}

// tableConfig holds configuration for table construction.
type tableConfig struct {
	index string
}

// TableOption is a functional option type for configuring table construction.
type TableOption func(*tableConfig)

// WithTableIndex sets the index file served for directory paths
// (default: "index.html").
func WithTableIndex(name string) TableOption {
	return func(c *tableConfig) {
		c.index = name
	}
}

// Table is the compiled, immutable asset backend: a read-only mapping from
// normalized path to content or directory redirect, built once at process
// start. Lookups require no synchronization.
type Table struct {
	entries map[string]entry
}

// NewTable builds a table by walking fsys, typically an embed.FS subtree or
// os.DirFS root. For every regular file it records the content, a media type
// guessed from the extension, a strong entity-tag derived from the content,
// and the modification time when the filesystem reports one (embed.FS does
// not; the validator is then omitted). For every directory containing the
// index file it records a redirect to that index.
func NewTable(fsys fs.FS, opts ...TableOption) (*Table, error) {
	cfg := tableConfig{index: DefaultIndexFile}
	for _, opt := range opts {
		opt(&cfg)
	}

	entries := make(map[string]entry)

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == "." {
			return nil
		}

		if d.IsDir() {
			indexPath := p + "/" + cfg.index
			if _, statErr := fs.Stat(fsys, indexPath); statErr == nil {
				entries[p] = entry{redirect: indexPath}
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}

		var modified time.Time
		if info, err := d.Info(); err == nil {
			modified = info.ModTime().Truncate(time.Second)
		}

		etag := StrongETag(content)
		entries[p] = entry{
			content: content,
			meta: Metadata{
				ContentType:  contentTypeFor(p),
				ETag:         &etag,
				LastModified: modified,
			},
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("asset: build table: %w", err)
	}

	return &Table{entries: entries}, nil
}

// Resolve looks up path in the table, following directory redirects up to the
// hop limit. Content is returned as a reader over the in-memory bytes, so no
// cleanup is needed if the request is abandoned mid-stream.
func (t *Table) Resolve(_ context.Context, path string) (*Asset, error) {
	for hop := 0; hop <= redirectHopLimit; hop++ {
		e, ok := t.entries[path]
		if !ok {
			return nil, ErrNotFound
		}
		if e.redirect != "" {
			path = e.redirect
			continue
		}
		return &Asset{
			Content:  io.NopCloser(bytes.NewReader(e.content)),
			Metadata: e.meta,
		}, nil
	}
	return nil, fmt.Errorf("asset: redirect limit exceeded at %q", path)
}

// Len returns the number of table entries, redirects included.
func (t *Table) Len() int {
	return len(t.entries)
}
