package asset

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
)

// dirConfig holds configuration for the filesystem backend.
type dirConfig struct {
	index string
}

// DirOption is a functional option type for configuring the filesystem
// backend.
type DirOption func(*dirConfig)

// WithDirIndex sets the index file served for directory paths
// (default: "index.html").
func WithDirIndex(name string) DirOption {
	return func(c *dirConfig) {
		c.index = name
	}
}

// Dir is the filesystem passthrough backend, intended for local iteration:
// paths resolve directly against a root directory and files are opened lazily
// and streamed chunk by chunk. Assets carry only a media type — no
// entity-tag or modification time — so conditional checks are skipped.
type Dir struct {
	root  string
	index string
	open  atomic.Int64
}

// NewDir creates a filesystem backend rooted at root. It fails if root does
// not exist or is not a directory.
func NewDir(root string, opts ...DirOption) (*Dir, error) {
	cfg := dirConfig{index: DefaultIndexFile}
	for _, opt := range opts {
		opt(&cfg)
	}

	cleanRoot := filepath.Clean(root)
	info, err := os.Stat(cleanRoot)
	if err != nil {
		return nil, fmt.Errorf("asset: root directory %s: %w", cleanRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("asset: root path is not a directory: %s", cleanRoot)
	}

	return &Dir{root: cleanRoot, index: cfg.index}, nil
}

// Resolve opens the file at p relative to the root. Directory paths get the
// index file appended. Paths escaping the root resolve to nothing.
func (d *Dir) Resolve(_ context.Context, p string) (*Asset, error) {
	full := filepath.Join(d.root, filepath.FromSlash(path.Clean("/"+p)))
	if !strings.HasPrefix(full, d.root+string(filepath.Separator)) && full != d.root {
		return nil, ErrNotFound
	}

	if info, err := os.Stat(full); err == nil && info.IsDir() {
		full = filepath.Join(full, d.index)
	}

	f, err := os.Open(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("asset: open %s: %w", full, err)
	}
	d.open.Add(1)

	return &Asset{
		Content:  &countedFile{file: f, open: &d.open},
		Metadata: Metadata{ContentType: contentTypeFor(full)},
	}, nil
}

// OpenHandles reports the number of files currently held open by this
// backend. It exists so tests and debug endpoints can observe that abandoned
// requests release their handles.
func (d *Dir) OpenHandles() int64 {
	return d.open.Load()
}

// countedFile decrements the backend's open-handle counter exactly once, even
// if Close is called repeatedly.
type countedFile struct {
	file *os.File
	open *atomic.Int64
	once sync.Once
}

func (c *countedFile) Read(p []byte) (int, error) {
	return c.file.Read(p)
}

func (c *countedFile) Close() error {
	c.once.Do(func() { c.open.Add(-1) })
	return c.file.Close()
}
