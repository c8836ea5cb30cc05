// Package git provides read-only access to git repositories.
//
// It supplies the collaborators the navigator consumes:
//   - Store, an object store over go-git storage (trees, blobs, sizes)
//   - ContextProvider, the current repository/worktree/branch/commit/path
//   - worktree listing and revision resolution
//
// Paths are discovered with the git binary through CommandRunner; objects
// are read through go-git. Nothing in this package writes to a repository.
package git
