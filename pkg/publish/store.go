package publish

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrBadKey reports a page key that would escape the store root.
var ErrBadKey = errors.New("publish: invalid page key")

// Store persists rendered pages under string keys.
type Store interface {
	// Put stores the rendered HTML under key and returns the location
	// the page can be retrieved from (a path or URL).
	Put(ctx context.Context, key string, html []byte) (string, error)
}

// DirStore writes rendered pages into a local directory.
type DirStore struct {
	root string
}

// NewDirStore creates a store rooted at the given directory. The
// directory is created on first Put.
func NewDirStore(root string) *DirStore {
	return &DirStore{root: root}
}

// Put writes the page to <root>/<key>, creating parent directories as
// needed. Keys must be relative paths without traversal segments.
func (s *DirStore) Put(_ context.Context, key string, html []byte) (string, error) {
	if !validKey(key) {
		return "", ErrBadKey
	}
	dest := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(dest, html, 0o644); err != nil {
		return "", err
	}
	return dest, nil
}

// validKey rejects absolute keys and traversal segments.
func validKey(key string) bool {
	if key == "" || strings.HasPrefix(key, "/") || strings.HasPrefix(key, "\\") {
		return false
	}
	for _, seg := range strings.Split(filepath.ToSlash(key), "/") {
		if seg == ".." || seg == "" {
			return false
		}
	}
	return true
}
