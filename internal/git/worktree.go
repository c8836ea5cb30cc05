package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"

	"xgit.dev/xgit/internal/navigator"
)

// ListWorktrees returns the worktrees attached to the repository at the runner's directory
func ListWorktrees(ctx context.Context, runner *CommandRunner) ([]navigator.Worktree, error) {
	lines, err := runner.RunLines(ctx, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("failed to list worktrees: %w", err)
	}
	return parseWorktrees(lines), nil
}

// parseWorktrees parses `git worktree list --porcelain` output
func parseWorktrees(lines []string) []navigator.Worktree {
	var worktrees []navigator.Worktree
	var current *navigator.Worktree

	flush := func() {
		if current != nil {
			worktrees = append(worktrees, *current)
			current = nil
		}
	}

	for _, line := range lines {
		key, value, _ := strings.Cut(line, " ")
		switch key {
		case "worktree":
			flush()
			current = &navigator.Worktree{Path: value}
		case "HEAD":
			if current != nil {
				current.Head = plumbing.NewHash(value)
			}
		case "branch":
			if current != nil {
				current.Branch = plumbing.ReferenceName(value).Short()
			}
		case "detached":
			if current != nil {
				current.Detached = true
			}
		case "bare":
			if current != nil {
				current.Bare = true
			}
		case "":
			flush()
		}
	}
	flush()

	return worktrees
}
