package navigator

import (
	"context"
	"path/filepath"

	"github.com/go-git/go-git/v5/plumbing"
)

// ObjectStore resolves hashes to tree entries and blob content.
// Implementations must be safe for concurrent reads.
type ObjectStore interface {
	// ListTree returns the entries of a tree in git's native order.
	// A commit hash is peeled to its root tree.
	ListTree(ctx context.Context, hash plumbing.Hash) ([]TreeEntry, error)
	// ReadBlob returns the raw bytes of a blob
	ReadBlob(ctx context.Context, hash plumbing.Hash) ([]byte, error)
	// PeelTree returns the root tree of a commit, or hash itself for a tree
	PeelTree(ctx context.Context, hash plumbing.Hash) (plumbing.Hash, error)
}

// WorktreeLister lists the worktrees attached to the current repository
type WorktreeLister interface {
	Worktrees(ctx context.Context) ([]Worktree, error)
}

// ContextProvider supplies the current repository context
type ContextProvider interface {
	WorktreeLister
	Current(ctx context.Context) (RepoContext, error)
}

// Worktree describes one checkout of a repository
type Worktree struct {
	Path     string
	Head     plumbing.Hash
	Branch   string
	Detached bool
	Bare     bool
}

// RepoContext is an immutable snapshot of where navigation happens
type RepoContext struct {
	// RepositoryPath is the git dir; for a linked worktree this is the
	// worktree-specific part under the common dir
	RepositoryPath string
	CommonPath     string
	WorktreeRoot   string
	// Path is slash-separated and relative to WorktreeRoot; empty at the root
	Path     string
	Branch   string
	Detached bool
	Commit   plumbing.Hash
	Cwd      string
}

// Valid reports whether the context points at a worktree
func (rc RepoContext) Valid() bool {
	return rc.WorktreeRoot != ""
}

// WithPath returns a copy of the context with a different path-within-repository
func (rc RepoContext) WithPath(p string) RepoContext {
	rc.Path = p
	return rc
}

// Dir returns the absolute filesystem directory for the context's path
func (rc RepoContext) Dir() string {
	return filepath.Join(rc.WorktreeRoot, filepath.FromSlash(rc.Path))
}

// BranchName returns the branch or a detached-HEAD marker
func (rc RepoContext) BranchName() string {
	if rc.Detached || rc.Branch == "" {
		return "HEAD (detached)"
	}
	return rc.Branch
}
