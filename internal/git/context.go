package git

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	xgiterrors "xgit.dev/xgit/internal/errors"
	"xgit.dev/xgit/internal/navigator"
)

// ContextProvider builds a RepoContext for a working directory
type ContextProvider struct {
	runner *CommandRunner
	logger *slog.Logger
}

var _ navigator.ContextProvider = (*ContextProvider)(nil)

// NewContextProvider creates a provider for dir; an empty dir means the process working directory
func NewContextProvider(dir string, logger *slog.Logger) *ContextProvider {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ContextProvider{
		runner: NewCommandRunner(dir, logger),
		logger: logger,
	}
}

// Current returns a fresh snapshot of the repository context
func (p *ContextProvider) Current(ctx context.Context) (navigator.RepoContext, error) {
	cwd := p.runner.WorkingDir()
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return navigator.RepoContext{}, fmt.Errorf("failed to get working directory: %w", err)
		}
		cwd = wd
	}

	out, err := p.runner.RunRaw(ctx,
		"rev-parse", "--path-format=absolute",
		"--git-dir", "--git-common-dir", "--show-toplevel", "--show-prefix")
	if err != nil {
		return navigator.RepoContext{}, xgiterrors.NewContextUnavailableError(cwd, err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) < 3 {
		return navigator.RepoContext{}, xgiterrors.NewContextUnavailableError(cwd, fmt.Errorf("unexpected rev-parse output %q", out))
	}
	prefix := ""
	if len(lines) > 3 {
		prefix = strings.TrimSuffix(lines[3], "/")
	}

	rc := navigator.RepoContext{
		RepositoryPath: filepath.Clean(lines[0]),
		CommonPath:     filepath.Clean(lines[1]),
		WorktreeRoot:   filepath.Clean(lines[2]),
		Path:           prefix,
		Cwd:            cwd,
	}

	repo, err := OpenRepository(rc.WorktreeRoot)
	if err != nil {
		return navigator.RepoContext{}, xgiterrors.NewContextUnavailableError(cwd, err)
	}
	head, err := repo.Head()
	if err != nil {
		return navigator.RepoContext{}, err
	}
	rc.Branch = head.Branch
	rc.Detached = head.Detached
	rc.Commit = head.Commit

	p.logger.Debug("repository context",
		"worktree", rc.WorktreeRoot, "path", rc.Path,
		"branch", rc.BranchName(), "commit", rc.Commit.String())

	return rc, nil
}

// Worktrees lists every worktree of the repository
func (p *ContextProvider) Worktrees(ctx context.Context) ([]navigator.Worktree, error) {
	return ListWorktrees(ctx, p.runner)
}
