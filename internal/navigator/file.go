package navigator

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"sync"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
)

// File is a leaf entry: a blob, symlink or submodule.
// Content is fetched from the store on first use and cached.
type File struct {
	entry TreeEntry
	path  string
	store ObjectStore

	mu      sync.Mutex
	content []byte
	loaded  bool
}

// NewFile wraps a leaf entry found at p
func NewFile(store ObjectStore, p string, entry TreeEntry) *File {
	return &File{
		entry: entry,
		path:  p,
		store: store,
	}
}

func (f *File) object() {}

// Hash returns the object hash
func (f *File) Hash() plumbing.Hash {
	return f.entry.Hash
}

// Path returns the file path relative to the worktree root
func (f *File) Path() string {
	return f.path
}

// Name returns the entry name
func (f *File) Name() string {
	if f.entry.Name != "" {
		return f.entry.Name
	}
	return path.Base(f.path)
}

// Size returns the blob size in bytes
func (f *File) Size() int64 {
	return f.entry.Size
}

// Mode returns the git file mode
func (f *File) Mode() filemode.FileMode {
	return f.entry.Mode
}

// Type returns the entry type
func (f *File) Type() EntryType {
	return f.entry.Type()
}

// Entry returns the underlying tree entry
func (f *File) Entry() TreeEntry {
	return f.entry
}

// Content returns a copy of the blob bytes. The store is consulted once;
// later calls copy the cached bytes. Failed fetches are not cached.
// For symlinks this is the link target.
func (f *File) Content(ctx context.Context) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.loaded {
		return bytes.Clone(f.content), nil
	}

	data, err := f.store.ReadBlob(ctx, f.entry.Hash)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	f.content = data
	f.loaded = true
	return bytes.Clone(f.content), nil
}
