package navigator

import (
	"path"
	"path/filepath"
	"strings"

	xgiterrors "xgit.dev/xgit/internal/errors"
)

// JoinPath resolves p against base, both relative to the worktree root.
// A leading "/" makes p worktree-root-relative. The result is clean,
// slash-separated and "" for the root.
func JoinPath(base, p string) (string, error) {
	p = filepath.ToSlash(p)

	var full string
	if strings.HasPrefix(p, "/") {
		full = strings.TrimPrefix(path.Clean(p), "/")
	} else {
		full = path.Clean(path.Join(filepath.ToSlash(base), p))
	}

	if full == ".." || strings.HasPrefix(full, "../") {
		return "", xgiterrors.NewOutsideWorktreeError(p)
	}
	if full == "." {
		return "", nil
	}
	return full, nil
}

// splitPath returns the segments of a clean path
func splitPath(p string) []string {
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
