package testhelpers

import (
	"path/filepath"
	"testing"
)

// Scene represents a test scene with a temporary directory and Git repository.
type Scene struct {
	Dir  string
	Repo *GitRepo
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a repository under t.TempDir() and runs setup on it.
// The repository lives in a "repo" subdirectory so tests can create
// sibling worktrees next to it.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	// Resolve symlinks so paths compare equal to what git reports
	base, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to resolve temp dir: %v", err)
	}
	dir := filepath.Join(base, "repo")

	repo, err := NewGitRepo(dir)
	if err != nil {
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{
		Dir:  dir,
		Repo: repo,
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	return scene
}

// Path returns an absolute path inside the scene's worktree
func (s *Scene) Path(elem ...string) string {
	return filepath.Join(append([]string{s.Dir}, elem...)...)
}

// ProjectSceneSetup commits a small project layout:
//
//	README.md
//	bin/run.sh        (executable)
//	docs/guide.md
//	docs/api/index.md
//	latest            (symlink to docs/guide.md)
func ProjectSceneSetup(scene *Scene) error {
	r := scene.Repo
	files := []struct {
		path    string
		content string
		mode    uint32
	}{
		{"README.md", "# project\n", 0o644},
		{"bin/run.sh", "#!/bin/sh\necho run\n", 0o755},
		{"docs/guide.md", "# Guide\n", 0o644},
		{"docs/api/index.md", "# API\n", 0o644},
	}
	for _, f := range files {
		if err := r.WriteFile(f.path, f.content, fileMode(f.mode)); err != nil {
			return err
		}
	}
	if err := r.Symlink("docs/guide.md", "latest"); err != nil {
		return err
	}
	return r.Commit("initial")
}
