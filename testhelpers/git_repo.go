package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// GitRepo represents a Git repository for testing purposes.
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a new Git repository in the specified directory using 'git init'.
func NewGitRepo(dir string) (*GitRepo, error) {
	// Use git -c flags to avoid reading global config and set local configs
	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "-c", "core.autocrlf=false", "init", dir, "-b", "main")
	cmd.Env = gitEnv()
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("failed to init repo: %w: %s", err, out)
	}

	repo := &GitRepo{Dir: dir}

	// Configure Git user (required for commits)
	if err := repo.RunGitCommand("config", "user.name", "Test User"); err != nil {
		return nil, err
	}
	if err := repo.RunGitCommand("config", "user.email", "test@example.com"); err != nil {
		return nil, err
	}

	return repo, nil
}

// gitEnv avoids reading global git config for faster, reproducible operations in tests
func gitEnv() []string {
	return append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null", "GIT_CONFIG_NOSYSTEM=1")
}

// RunGitCommand executes a git command in the repository directory.
func (r *GitRepo) RunGitCommand(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = gitEnv()
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git %s failed: %w: %s", strings.Join(args, " "), err, out)
	}
	return nil
}

// RunGitCommandAndGetOutput executes a git command and returns its trimmed output.
func (r *GitRepo) RunGitCommandAndGetOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = gitEnv()
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git command failed: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// WriteFile writes content at a slash-separated path inside the worktree and stages it.
func (r *GitRepo) WriteFile(path string, content string, mode os.FileMode) error {
	filePath := filepath.Join(r.Dir, filepath.FromSlash(path))

	if err := os.MkdirAll(filepath.Dir(filePath), 0750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(filePath, []byte(content), mode); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	// os.WriteFile does not change the mode of an existing file
	if err := os.Chmod(filePath, mode); err != nil {
		return fmt.Errorf("failed to chmod file: %w", err)
	}

	return r.RunGitCommand("add", path)
}

// Symlink creates a symlink at path pointing to target and stages it.
func (r *GitRepo) Symlink(target, path string) error {
	linkPath := filepath.Join(r.Dir, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(linkPath), 0750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.Symlink(target, linkPath); err != nil {
		return fmt.Errorf("failed to create symlink: %w", err)
	}
	return r.RunGitCommand("add", path)
}

// Commit commits everything that is staged.
func (r *GitRepo) Commit(message string) error {
	return r.RunGitCommand("commit", "-m", message)
}

// GetRevision returns the SHA for a revision.
func (r *GitRepo) GetRevision(rev string) (string, error) {
	return r.RunGitCommandAndGetOutput("rev-parse", rev)
}

// GetObjectHash returns the object hash at path in HEAD.
func (r *GitRepo) GetObjectHash(path string) (string, error) {
	return r.RunGitCommandAndGetOutput("rev-parse", "HEAD:"+path)
}

// AddWorktree creates a linked worktree at path on a new branch.
func (r *GitRepo) AddWorktree(path, branch string) error {
	return r.RunGitCommand("worktree", "add", "-b", branch, path)
}

// CheckoutDetached detaches HEAD at rev.
func (r *GitRepo) CheckoutDetached(rev string) error {
	return r.RunGitCommand("checkout", "--detach", rev)
}
