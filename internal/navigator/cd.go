package navigator

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	xgiterrors "xgit.dev/xgit/internal/errors"
)

// SwitchKind tells the caller whether a cd leaves the current worktree
type SwitchKind int

const (
	// SwitchNone keeps the current worktree
	SwitchNone SwitchKind = iota
	// SwitchWorktree lands in another worktree of the same repository
	SwitchWorktree
	// SwitchOutside lands outside every known worktree
	SwitchOutside
)

func (k SwitchKind) String() string {
	switch k {
	case SwitchWorktree:
		return "worktree"
	case SwitchOutside:
		return "outside"
	default:
		return "none"
	}
}

// CdResult describes where a cd would go. The navigator never applies it.
type CdResult struct {
	// Context is the input context with the new path; only meaningful for SwitchNone
	Context RepoContext
	// Dir is the absolute filesystem directory
	Dir      string
	Switch   SwitchKind
	Worktree *Worktree
}

// Cd plans a change of directory. An empty path goes to the worktree root.
// Targets above the worktree root are reported through Switch rather than
// as an error.
func (r *Resolver) Cd(ctx context.Context, rc RepoContext, p string) (CdResult, error) {
	if !rc.Valid() {
		return CdResult{}, xgiterrors.NewContextUnavailableError(rc.Cwd, nil)
	}

	var target string
	switch p {
	case "":
		target = ""
	case ".":
		target = rc.Path
	default:
		var err error
		target, err = JoinPath(rc.Path, p)
		if errors.Is(err, xgiterrors.ErrOutsideWorktree) {
			abs := filepath.Clean(filepath.Join(rc.Dir(), filepath.FromSlash(p)))
			return r.crossBoundary(ctx, rc, abs)
		}
		if err != nil {
			return CdResult{}, err
		}
	}

	obj, err := r.walk(ctx, rc.Commit, target)
	if err != nil {
		return CdResult{}, err
	}
	if _, ok := obj.(*Directory); !ok {
		return CdResult{}, xgiterrors.NewTypeNotTraversableError(target, obj.Type().ObjectType())
	}

	next := rc.WithPath(target)
	return CdResult{
		Context: next,
		Dir:     next.Dir(),
		Switch:  SwitchNone,
	}, nil
}

func (r *Resolver) crossBoundary(ctx context.Context, rc RepoContext, abs string) (CdResult, error) {
	result := CdResult{
		Context: rc,
		Dir:     abs,
		Switch:  SwitchOutside,
	}
	if r.worktrees == nil {
		return result, nil
	}

	worktrees, err := r.worktrees.Worktrees(ctx)
	if err != nil {
		return CdResult{}, fmt.Errorf("failed to list worktrees: %w", err)
	}

	var best *Worktree
	for i := range worktrees {
		wt := worktrees[i]
		if wt.Bare || sameDir(wt.Path, rc.WorktreeRoot) || !within(wt.Path, abs) {
			continue
		}
		if best == nil || len(wt.Path) > len(best.Path) {
			best = &wt
		}
	}
	if best != nil {
		r.logger.Debug("cd crosses into worktree", "worktree", best.Path, "dir", abs)
		result.Switch = SwitchWorktree
		result.Worktree = best
	}
	return result, nil
}

// within reports whether p is root or below it
func within(root, p string) bool {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func sameDir(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}
