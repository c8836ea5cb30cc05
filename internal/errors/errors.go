// Package errors provides sentinel errors and custom error types for xgit.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrNotFound indicates that a path segment has no matching entry
	ErrNotFound = errors.New("not found")

	// ErrNotTraversable indicates an attempt to descend into something that is not a tree
	ErrNotTraversable = errors.New("not a directory")

	// ErrObjectNotFound indicates that a hash is missing from the object store
	ErrObjectNotFound = errors.New("object not found")

	// ErrContextUnavailable indicates that there is no current repository context
	ErrContextUnavailable = errors.New("not in a git repository")

	// ErrOutsideWorktree indicates that a path climbs above the worktree root
	ErrOutsideWorktree = errors.New("path is outside the worktree")
)

// NotFoundError represents a path segment that does not exist in its parent tree
type NotFoundError struct {
	Path        string
	Name        string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("%s: no such file or directory", e.Path)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

// Is returns true if the target error is ErrNotFound
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(path, name string, suggestions []string) *NotFoundError {
	return &NotFoundError{
		Path:        path,
		Name:        name,
		Suggestions: suggestions,
	}
}

// TypeNotTraversableError represents an attempt to descend into a blob or submodule
type TypeNotTraversableError struct {
	Path string
	Type string
}

func (e *TypeNotTraversableError) Error() string {
	return fmt.Sprintf("%s: not a directory (%s)", e.Path, e.Type)
}

// Is returns true if the target error is ErrNotTraversable
func (e *TypeNotTraversableError) Is(target error) bool {
	return target == ErrNotTraversable
}

// NewTypeNotTraversableError creates a new TypeNotTraversableError
func NewTypeNotTraversableError(path, typ string) *TypeNotTraversableError {
	return &TypeNotTraversableError{Path: path, Type: typ}
}

// ObjectNotFoundError represents a hash that is absent from the object store
type ObjectNotFoundError struct {
	Hash string
	Err  error
}

func (e *ObjectNotFoundError) Error() string {
	return fmt.Sprintf("object %s not found", e.Hash)
}

// Is returns true if the target error is ErrObjectNotFound
func (e *ObjectNotFoundError) Is(target error) bool {
	return target == ErrObjectNotFound
}

func (e *ObjectNotFoundError) Unwrap() error {
	return e.Err
}

// NewObjectNotFoundError creates a new ObjectNotFoundError
func NewObjectNotFoundError(hash string, err error) *ObjectNotFoundError {
	return &ObjectNotFoundError{Hash: hash, Err: err}
}

// ContextUnavailableError represents a request made outside of any worktree
type ContextUnavailableError struct {
	Dir string
	Err error
}

func (e *ContextUnavailableError) Error() string {
	if e.Dir != "" {
		return fmt.Sprintf("not in a git repository: %s", e.Dir)
	}
	return "not in a git repository"
}

// Is returns true if the target error is ErrContextUnavailable
func (e *ContextUnavailableError) Is(target error) bool {
	return target == ErrContextUnavailable
}

func (e *ContextUnavailableError) Unwrap() error {
	return e.Err
}

// NewContextUnavailableError creates a new ContextUnavailableError
func NewContextUnavailableError(dir string, err error) *ContextUnavailableError {
	return &ContextUnavailableError{Dir: dir, Err: err}
}

// OutsideWorktreeError represents a path that escapes the worktree root
type OutsideWorktreeError struct {
	Path string
}

func (e *OutsideWorktreeError) Error() string {
	return fmt.Sprintf("%s: outside the worktree", e.Path)
}

// Is returns true if the target error is ErrOutsideWorktree
func (e *OutsideWorktreeError) Is(target error) bool {
	return target == ErrOutsideWorktree
}

// NewOutsideWorktreeError creates a new OutsideWorktreeError
func NewOutsideWorktreeError(path string) *OutsideWorktreeError {
	return &OutsideWorktreeError{Path: path}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
