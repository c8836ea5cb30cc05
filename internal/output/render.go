package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/object"
	"gopkg.in/yaml.v3"

	"xgit.dev/xgit/internal/navigator"
)

// Renderer prints records in a single format
type Renderer struct {
	w      io.Writer
	format Format
	abbrev int
}

// NewRenderer creates a renderer. An empty format means text.
// abbrev shortens hashes to that many characters; zero keeps full hashes.
func NewRenderer(w io.Writer, format Format, abbrev int) *Renderer {
	if format == "" {
		format = FormatText
	}
	return &Renderer{w: w, format: format, abbrev: abbrev}
}

// Format returns the renderer's output format
func (r *Renderer) Format() Format {
	return r.format
}

// Context prints a repository context and, when known, its head commit
func (r *Renderer) Context(rc navigator.RepoContext, head *object.Commit) error {
	rec := NewContextRecord(rc, r.abbrev)
	rec.Head = NewCommitRecord(head, r.abbrev)
	if r.format != FormatText {
		return r.encode(rec)
	}

	var b strings.Builder
	writeField(&b, "repository", rec.Repository)
	writeField(&b, "common", rec.Common)
	writeField(&b, "worktree", rec.Worktree)
	writeField(&b, "path", displayPath(rec.Path))
	writeField(&b, "branch", rec.Branch)
	writeField(&b, "commit", rec.Commit)
	if c := rec.Head; c != nil {
		writeField(&b, "tree", c.Tree)
		writeField(&b, "parents", strings.Join(c.Parents, " "))
		writeField(&b, "author", c.Author)
		writeField(&b, "authored", c.AuthorDate)
		writeField(&b, "committer", c.Committer)
		writeField(&b, "committed", c.CommitterDate)
		writeField(&b, "summary", c.Summary)
	}
	writeField(&b, "cwd", rec.Cwd)
	return r.write(b.String())
}

// Object prints a directory listing or a single file entry
func (r *Renderer) Object(obj navigator.Object) error {
	switch o := obj.(type) {
	case *navigator.Directory:
		return r.Directory(o)
	case *navigator.File:
		return r.File(o)
	default:
		return fmt.Errorf("cannot render %T", obj)
	}
}

// Directory prints a directory view, one long-format line per entry
func (r *Renderer) Directory(d *navigator.Directory) error {
	rec := NewDirectoryRecord(d, r.abbrev)
	if r.format != FormatText {
		return r.encode(rec)
	}

	var b strings.Builder
	for e := range d.All() {
		b.WriteString(r.entryLine(e, e.Name))
	}
	return r.write(b.String())
}

// File prints a single file entry
func (r *Renderer) File(f *navigator.File) error {
	rec := NewFileRecord(f, r.abbrev)
	if r.format != FormatText {
		return r.encode(rec)
	}
	return r.write(r.entryLine(f.Entry(), f.Path()))
}

// Cd prints a change-directory plan. Text output is just the target directory.
func (r *Renderer) Cd(res navigator.CdResult) error {
	rec := NewCdRecord(res)
	if r.format != FormatText {
		return r.encode(rec)
	}
	return r.write(rec.Dir + "\n")
}

// entryLine formats an entry like `ls-tree -l`, prefixed with the type marker
func (r *Renderer) entryLine(e navigator.TreeEntry, name string) string {
	typ := e.Type()
	size := "-"
	if typ != navigator.TypeDirectory && typ != navigator.TypeSubmodule {
		size = fmt.Sprintf("%d", e.Size)
	}
	if typ == navigator.TypeDirectory {
		name += "/"
	}
	return fmt.Sprintf("%s %-6s %s %8s\t%s\n",
		typ.Prefix(), typ.ObjectType(), abbreviate(e.Hash.String(), r.abbrev), size, name)
}

func (r *Renderer) encode(v any) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", r.format)
	}
}

func (r *Renderer) write(s string) error {
	_, err := io.WriteString(r.w, s)
	return err
}

func writeField(b *strings.Builder, key, value string) {
	fmt.Fprintf(b, "%-11s %s\n", key+":", value)
}

func displayPath(p string) string {
	return "/" + p
}
