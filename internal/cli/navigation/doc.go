// Package navigation provides the commands that walk the git object tree.
package navigation
