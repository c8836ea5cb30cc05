// Package navigator resolves worktree paths to git tree and blob objects.
//
// It is strictly read-only. Callers supply a RepoContext describing the
// current repository, branch, commit and path, and an ObjectStore that can
// list trees and read blobs by hash. The Resolver walks path segments
// against nested trees and returns either a *Directory or a *File:
//   - Directory exposes the ordered, name-indexed entries of one tree
//   - File exposes hash, size and mode immediately and fetches content lazily
//
// Neither type owns the object store; they keep a reference so further
// lookups (descending into a subdirectory, reading content) reuse it.
package navigator
