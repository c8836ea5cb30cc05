package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-git/go-git/v5/plumbing/object"

	"xgit.dev/xgit/internal/navigator"
)

// ContextRecord is the printable form of a repository context
type ContextRecord struct {
	Repository string `json:"repository" yaml:"repository"`
	Common     string `json:"common" yaml:"common"`
	Worktree   string `json:"worktree" yaml:"worktree"`
	Path       string `json:"path" yaml:"path"`
	Branch     string `json:"branch" yaml:"branch"`
	Detached   bool   `json:"detached" yaml:"detached"`
	Commit     string `json:"commit" yaml:"commit"`
	Cwd        string `json:"cwd" yaml:"cwd"`
	// Head is nil on an unborn branch
	Head *CommitRecord `json:"head,omitempty" yaml:"head,omitempty"`
}

// CommitRecord is the printable form of a commit object
type CommitRecord struct {
	Hash          string   `json:"hash" yaml:"hash"`
	Tree          string   `json:"tree" yaml:"tree"`
	Parents       []string `json:"parents" yaml:"parents"`
	Author        string   `json:"author" yaml:"author"`
	AuthorDate    string   `json:"author_date" yaml:"author_date"`
	Committer     string   `json:"committer" yaml:"committer"`
	CommitterDate string   `json:"committer_date" yaml:"committer_date"`
	Summary       string   `json:"summary" yaml:"summary"`
	Message       string   `json:"message" yaml:"message"`
}

// EntryRecord is the printable form of a tree entry
type EntryRecord struct {
	Name   string `json:"name" yaml:"name"`
	Type   string `json:"type" yaml:"type"`
	Object string `json:"object" yaml:"object"`
	Mode   string `json:"mode" yaml:"mode"`
	Hash   string `json:"hash" yaml:"hash"`
	Size   int64  `json:"size" yaml:"size"`
}

// DirectoryRecord is the printable form of a directory view
type DirectoryRecord struct {
	Path    string        `json:"path" yaml:"path"`
	Hash    string        `json:"hash" yaml:"hash"`
	Entries []EntryRecord `json:"entries" yaml:"entries"`
}

// FileRecord is the printable form of a file entry
type FileRecord struct {
	Path string `json:"path" yaml:"path"`
	EntryRecord `yaml:",inline"`
}

// CdRecord is the printable form of a change-directory plan
type CdRecord struct {
	Dir      string `json:"dir" yaml:"dir"`
	Path     string `json:"path" yaml:"path"`
	Switch   string `json:"switch" yaml:"switch"`
	Worktree string `json:"worktree,omitempty" yaml:"worktree,omitempty"`
	Branch   string `json:"branch,omitempty" yaml:"branch,omitempty"`
}

// NewContextRecord projects a repository context
func NewContextRecord(rc navigator.RepoContext, abbrev int) ContextRecord {
	commit := ""
	if !rc.Commit.IsZero() {
		commit = abbreviate(rc.Commit.String(), abbrev)
	}
	return ContextRecord{
		Repository: rc.RepositoryPath,
		Common:     rc.CommonPath,
		Worktree:   rc.WorktreeRoot,
		Path:       rc.Path,
		Branch:     rc.BranchName(),
		Detached:   rc.Detached,
		Commit:     commit,
		Cwd:        rc.Cwd,
	}
}

// NewCommitRecord projects a commit; nil yields nil
func NewCommitRecord(c *object.Commit, abbrev int) *CommitRecord {
	if c == nil {
		return nil
	}
	parents := make([]string, 0, len(c.ParentHashes))
	for _, p := range c.ParentHashes {
		parents = append(parents, abbreviate(p.String(), abbrev))
	}
	summary, _, _ := strings.Cut(c.Message, "\n")
	return &CommitRecord{
		Hash:          abbreviate(c.Hash.String(), abbrev),
		Tree:          abbreviate(c.TreeHash.String(), abbrev),
		Parents:       parents,
		Author:        signature(c.Author),
		AuthorDate:    c.Author.When.Format(time.RFC3339),
		Committer:     signature(c.Committer),
		CommitterDate: c.Committer.When.Format(time.RFC3339),
		Summary:       summary,
		Message:       c.Message,
	}
}

func signature(s object.Signature) string {
	return fmt.Sprintf("%s <%s>", s.Name, s.Email)
}

// NewEntryRecord projects a tree entry
func NewEntryRecord(e navigator.TreeEntry, abbrev int) EntryRecord {
	return EntryRecord{
		Name:   e.Name,
		Type:   e.Type().String(),
		Object: e.Type().ObjectType(),
		Mode:   e.Mode.String(),
		Hash:   abbreviate(e.Hash.String(), abbrev),
		Size:   e.Size,
	}
}

// NewDirectoryRecord projects a directory view
func NewDirectoryRecord(d *navigator.Directory, abbrev int) DirectoryRecord {
	entries := make([]EntryRecord, 0, d.Len())
	for e := range d.All() {
		entries = append(entries, NewEntryRecord(e, abbrev))
	}
	return DirectoryRecord{
		Path:    d.Path(),
		Hash:    abbreviate(d.Hash().String(), abbrev),
		Entries: entries,
	}
}

// NewFileRecord projects a file entry
func NewFileRecord(f *navigator.File, abbrev int) FileRecord {
	return FileRecord{
		Path:        f.Path(),
		EntryRecord: NewEntryRecord(f.Entry(), abbrev),
	}
}

// NewCdRecord projects a change-directory plan
func NewCdRecord(res navigator.CdResult) CdRecord {
	rec := CdRecord{
		Dir:    res.Dir,
		Switch: res.Switch.String(),
	}
	if res.Switch == navigator.SwitchNone {
		rec.Path = res.Context.Path
	}
	if res.Worktree != nil {
		rec.Worktree = res.Worktree.Path
		rec.Branch = res.Worktree.Branch
	}
	return rec
}

func abbreviate(hash string, n int) string {
	if n <= 0 || n >= len(hash) {
		return hash
	}
	return hash[:n]
}
