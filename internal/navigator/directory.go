package navigator

import (
	"context"
	"fmt"
	"iter"
	"path"

	"github.com/go-git/go-git/v5/plumbing"

	xgiterrors "xgit.dev/xgit/internal/errors"
)

// Directory is a read-only view of one tree object
type Directory struct {
	hash    plumbing.Hash
	path    string
	entries []TreeEntry
	index   map[string]int
	store   ObjectStore
}

// NewDirectory builds a view over entries already fetched for hash.
// Entries are copied; their order is kept as given.
func NewDirectory(store ObjectStore, hash plumbing.Hash, p string, entries []TreeEntry) *Directory {
	d := &Directory{
		hash:    hash,
		path:    p,
		entries: make([]TreeEntry, len(entries)),
		index:   make(map[string]int, len(entries)),
		store:   store,
	}
	copy(d.entries, entries)
	for i, e := range d.entries {
		d.index[e.Name] = i
	}
	return d
}

func (d *Directory) object() {}

// Hash returns the tree hash
func (d *Directory) Hash() plumbing.Hash {
	return d.hash
}

// Path returns the directory path relative to the worktree root
func (d *Directory) Path() string {
	return d.path
}

// Name returns the last path segment, or "" for the root
func (d *Directory) Name() string {
	if d.path == "" {
		return ""
	}
	return path.Base(d.path)
}

// Type always returns TypeDirectory
func (d *Directory) Type() EntryType {
	return TypeDirectory
}

// Len returns the number of immediate entries
func (d *Directory) Len() int {
	return len(d.entries)
}

// Entries returns a copy of the entries in tree order
func (d *Directory) Entries() []TreeEntry {
	out := make([]TreeEntry, len(d.entries))
	copy(out, d.entries)
	return out
}

// All iterates over the entries in tree order
func (d *Directory) All() iter.Seq[TreeEntry] {
	return func(yield func(TreeEntry) bool) {
		for _, e := range d.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Names returns the entry names in tree order
func (d *Directory) Names() []string {
	names := make([]string, len(d.entries))
	for i, e := range d.entries {
		names[i] = e.Name
	}
	return names
}

// Get returns the entry called name
func (d *Directory) Get(name string) (TreeEntry, error) {
	e, ok := d.lookup(name)
	if !ok {
		return TreeEntry{}, xgiterrors.NewNotFoundError(d.child(name), name, suggest(name, d.Names()))
	}
	return e, nil
}

// Open returns the child called name as a *Directory or a *File.
// Opening a subdirectory lists its tree through the same store.
func (d *Directory) Open(ctx context.Context, name string) (Object, error) {
	e, err := d.Get(name)
	if err != nil {
		return nil, err
	}
	return open(ctx, d.store, d.child(name), e)
}

func (d *Directory) lookup(name string) (TreeEntry, bool) {
	i, ok := d.index[name]
	if !ok {
		return TreeEntry{}, false
	}
	return d.entries[i], true
}

func (d *Directory) child(name string) string {
	return path.Join(d.path, name)
}

func open(ctx context.Context, store ObjectStore, p string, e TreeEntry) (Object, error) {
	if !e.IsDir() {
		return NewFile(store, p, e), nil
	}
	entries, err := store.ListTree(ctx, e.Hash)
	if err != nil {
		return nil, fmt.Errorf("list tree %s: %w", p, err)
	}
	return NewDirectory(store, e.Hash, p, entries), nil
}
