package navigator

import (
	"context"
	"fmt"
	"log/slog"
	"path"

	"github.com/go-git/go-git/v5/plumbing"

	xgiterrors "xgit.dev/xgit/internal/errors"
)

// Resolver maps worktree paths to objects in an ObjectStore
type Resolver struct {
	store     ObjectStore
	worktrees WorktreeLister
	logger    *slog.Logger
}

// Option configures a Resolver
type Option func(*Resolver)

// WithLogger sets the logger used for debug output
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithWorktrees lets Cd recognise targets inside sibling worktrees
func WithWorktrees(l WorktreeLister) Option {
	return func(r *Resolver) {
		r.worktrees = l
	}
}

// NewResolver creates a Resolver over store
func NewResolver(store ObjectStore, opts ...Option) *Resolver {
	r := &Resolver{
		store:  store,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type resolveOptions struct {
	root plumbing.Hash
}

// ResolveOption configures a single Resolve call
type ResolveOption func(*resolveOptions)

// WithRoot starts the walk at a commit or tree other than the context's commit
func WithRoot(hash plumbing.Hash) ResolveOption {
	return func(o *resolveOptions) {
		o.root = hash
	}
}

// Resolve returns the *Directory or *File at p.
// An empty p resolves to the context's current directory.
func (r *Resolver) Resolve(ctx context.Context, rc RepoContext, p string, opts ...ResolveOption) (Object, error) {
	if !rc.Valid() {
		return nil, xgiterrors.NewContextUnavailableError(rc.Cwd, nil)
	}

	o := resolveOptions{root: rc.Commit}
	for _, opt := range opts {
		opt(&o)
	}

	full, err := JoinPath(rc.Path, p)
	if err != nil {
		return nil, err
	}
	return r.walk(ctx, o.root, full)
}

// walk descends from root one segment at a time
func (r *Resolver) walk(ctx context.Context, root plumbing.Hash, full string) (Object, error) {
	if root.IsZero() {
		return nil, xgiterrors.NewObjectNotFoundError("HEAD", nil)
	}

	r.logger.Debug("resolve", "root", root.String(), "path", full)

	tree, err := r.store.PeelTree(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("peel %s: %w", root, err)
	}
	entries, err := r.store.ListTree(ctx, tree)
	if err != nil {
		return nil, fmt.Errorf("list tree %s: %w", tree, err)
	}
	dir := NewDirectory(r.store, tree, "", entries)

	segments := splitPath(full)
	for i, name := range segments {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entry, ok := dir.lookup(name)
		if !ok {
			return nil, xgiterrors.NewNotFoundError(dir.child(name), name, suggest(name, dir.Names()))
		}

		last := i == len(segments)-1
		if !entry.IsDir() {
			if !last {
				return nil, xgiterrors.NewTypeNotTraversableError(dir.child(name), entry.Type().ObjectType())
			}
			return NewFile(r.store, dir.child(name), entry), nil
		}

		obj, err := open(ctx, r.store, dir.child(name), entry)
		if err != nil {
			return nil, err
		}
		dir = obj.(*Directory)
	}

	return dir, nil
}

// ResolveDir is Resolve restricted to directories
func (r *Resolver) ResolveDir(ctx context.Context, rc RepoContext, p string, opts ...ResolveOption) (*Directory, error) {
	obj, err := r.Resolve(ctx, rc, p, opts...)
	if err != nil {
		return nil, err
	}
	dir, ok := obj.(*Directory)
	if !ok {
		return nil, xgiterrors.NewTypeNotTraversableError(displayPath(obj.Path()), obj.Type().ObjectType())
	}
	return dir, nil
}

func displayPath(p string) string {
	if p == "" {
		return "."
	}
	return path.Clean(p)
}
