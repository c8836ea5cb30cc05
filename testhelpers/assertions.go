// Package testhelpers provides testing utilities for xgit,
// including a scene system and Git repository helpers.
package testhelpers

import (
	"os"
	"os/exec"
	"testing"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value. This is useful for test setup code
// where errors are not expected and should halt execution immediately.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// RequireGit skips the test when no git binary is available
func RequireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

func fileMode(m uint32) os.FileMode {
	return os.FileMode(m)
}
