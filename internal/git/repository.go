package git

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Repository wraps a go-git repository
type Repository struct {
	*git.Repository
	path string
}

// OpenRepository opens the git repository containing path.
// Linked worktrees are supported: objects come from the common dir.
func OpenRepository(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := git.PlainOpenWithOptions(absPath, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	return &Repository{
		Repository: repo,
		path:       absPath,
	}, nil
}

// Path returns the path the repository was opened from
func (r *Repository) Path() string {
	return r.path
}

// HeadState describes where HEAD points
type HeadState struct {
	Branch   string
	Detached bool
	// Commit is zero on an unborn branch
	Commit plumbing.Hash
}

// Head reports the current branch and commit
func (r *Repository) Head() (HeadState, error) {
	head, err := r.Repository.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		// Unborn branch: HEAD is symbolic but its target has no commits yet
		sym, symErr := r.Reference(plumbing.HEAD, false)
		if symErr != nil {
			return HeadState{}, fmt.Errorf("failed to read HEAD: %w", symErr)
		}
		return HeadState{Branch: sym.Target().Short()}, nil
	}
	if err != nil {
		return HeadState{}, fmt.Errorf("failed to get HEAD: %w", err)
	}

	if !head.Name().IsBranch() {
		return HeadState{Detached: true, Commit: head.Hash()}, nil
	}
	return HeadState{Branch: head.Name().Short(), Commit: head.Hash()}, nil
}

// ResolveRevision resolves a revision such as a branch, tag or abbreviated hash
func (r *Repository) ResolveRevision(rev string) (plumbing.Hash, error) {
	h, err := r.Repository.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to resolve %s: %w", rev, err)
	}
	return *h, nil
}

// RevisionNames lists local branches and tags, for completing --rev
func (r *Repository) RevisionNames() ([]string, error) {
	refs, err := r.References()
	if err != nil {
		return nil, fmt.Errorf("failed to list references: %w", err)
	}
	defer refs.Close()

	var names []string
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		if ref.Name().IsBranch() || ref.Name().IsTag() {
			names = append(names, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(names)
	return names, nil
}

// PeelCommit loads the commit at hash, following annotated tags
func (r *Repository) PeelCommit(hash plumbing.Hash) (*object.Commit, error) {
	obj, err := r.Object(plumbing.AnyObject, hash)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", hash, err)
	}

	switch o := obj.(type) {
	case *object.Commit:
		return o, nil
	case *object.Tag:
		return r.PeelCommit(o.Target)
	default:
		return nil, fmt.Errorf("object %s is a %s, not a commit", hash, obj.Type())
	}
}
