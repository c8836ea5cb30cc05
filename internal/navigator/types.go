package navigator

import (
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
)

// EntryType classifies a tree entry by its mode
type EntryType int

const (
	TypeFile EntryType = iota
	TypeExecutable
	TypeDirectory
	TypeSymlink
	TypeSubmodule
)

// EntryTypeFromMode maps a git file mode to an EntryType.
// Unknown modes are treated as regular files.
func EntryTypeFromMode(mode filemode.FileMode) EntryType {
	switch mode {
	case filemode.Dir:
		return TypeDirectory
	case filemode.Executable:
		return TypeExecutable
	case filemode.Symlink:
		return TypeSymlink
	case filemode.Submodule:
		return TypeSubmodule
	default:
		return TypeFile
	}
}

func (t EntryType) String() string {
	switch t {
	case TypeExecutable:
		return "executable"
	case TypeDirectory:
		return "directory"
	case TypeSymlink:
		return "symlink"
	case TypeSubmodule:
		return "submodule"
	default:
		return "file"
	}
}

// ObjectType returns the git object type an entry of this type points at
func (t EntryType) ObjectType() string {
	switch t {
	case TypeDirectory:
		return "tree"
	case TypeSubmodule:
		return "commit"
	default:
		return "blob"
	}
}

// Prefix returns the single-letter marker used in listings
func (t EntryType) Prefix() string {
	switch t {
	case TypeDirectory:
		return "D"
	case TypeSymlink:
		return "L"
	case TypeSubmodule:
		return "S"
	case TypeExecutable:
		return "X"
	default:
		return "-"
	}
}

// TreeEntry is one line of a resolved tree
type TreeEntry struct {
	Name string
	Mode filemode.FileMode
	Hash plumbing.Hash
	// Size is the blob size in bytes; zero for trees and submodules
	Size int64
}

// Type returns the entry type derived from the mode
func (e TreeEntry) Type() EntryType {
	return EntryTypeFromMode(e.Mode)
}

// IsDir reports whether the entry is a tree
func (e TreeEntry) IsDir() bool {
	return e.Mode == filemode.Dir
}

// Object is the result of resolving a path: either a *Directory or a *File
type Object interface {
	Hash() plumbing.Hash
	Path() string
	Type() EntryType

	object()
}
