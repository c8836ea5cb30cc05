package navigator_test

import (
	"context"
	"sync"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"

	xgiterrors "xgit.dev/xgit/internal/errors"
	"xgit.dev/xgit/internal/navigator"
)

// fakeStore is an in-memory ObjectStore that counts calls
type fakeStore struct {
	mu        sync.Mutex
	trees     map[plumbing.Hash][]navigator.TreeEntry
	blobs     map[plumbing.Hash][]byte
	commits   map[plumbing.Hash]plumbing.Hash
	listCalls map[plumbing.Hash]int
	readCalls map[plumbing.Hash]int
	failReads int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		trees:     map[plumbing.Hash][]navigator.TreeEntry{},
		blobs:     map[plumbing.Hash][]byte{},
		commits:   map[plumbing.Hash]plumbing.Hash{},
		listCalls: map[plumbing.Hash]int{},
		readCalls: map[plumbing.Hash]int{},
	}
}

func (s *fakeStore) ListTree(_ context.Context, hash plumbing.Hash) ([]navigator.TreeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listCalls[hash]++
	if tree, ok := s.commits[hash]; ok {
		hash = tree
	}
	entries, ok := s.trees[hash]
	if !ok {
		return nil, xgiterrors.NewObjectNotFoundError(hash.String(), nil)
	}
	out := make([]navigator.TreeEntry, len(entries))
	copy(out, entries)
	return out, nil
}

func (s *fakeStore) ReadBlob(_ context.Context, hash plumbing.Hash) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readCalls[hash]++
	if s.failReads > 0 {
		s.failReads--
		return nil, xgiterrors.NewObjectNotFoundError(hash.String(), nil)
	}
	data, ok := s.blobs[hash]
	if !ok {
		return nil, xgiterrors.NewObjectNotFoundError(hash.String(), nil)
	}
	return data, nil
}

func (s *fakeStore) PeelTree(_ context.Context, hash plumbing.Hash) (plumbing.Hash, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tree, ok := s.commits[hash]; ok {
		return tree, nil
	}
	if _, ok := s.trees[hash]; ok {
		return hash, nil
	}
	return plumbing.ZeroHash, xgiterrors.NewObjectNotFoundError(hash.String(), nil)
}

func (s *fakeStore) reads(hash plumbing.Hash) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readCalls[hash]
}

func (s *fakeStore) lists(hash plumbing.Hash) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listCalls[hash]
}

func (s *fakeStore) addBlob(hash string, content string) navigator.TreeEntry {
	h := plumbing.NewHash(hash)
	s.blobs[h] = []byte(content)
	return navigator.TreeEntry{Mode: filemode.Regular, Hash: h, Size: int64(len(content))}
}

func (s *fakeStore) addTree(hash string, entries ...navigator.TreeEntry) navigator.TreeEntry {
	h := plumbing.NewHash(hash)
	s.trees[h] = entries
	return navigator.TreeEntry{Mode: filemode.Dir, Hash: h}
}

func named(name string, e navigator.TreeEntry) navigator.TreeEntry {
	e.Name = name
	return e
}

func withMode(mode filemode.FileMode, e navigator.TreeEntry) navigator.TreeEntry {
	e.Mode = mode
	return e
}

func padding(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'x'
	}
	return string(b)
}

const (
	fixtureCommit = "1f2e3d4c5b6a79881f2e3d4c5b6a79881f2e3d4c"
	fixtureTree   = "c000f7a0b1c2d3e4f5a6b7c8d9e0f1a2b3c4d5e6"
	readmeHash    = "505d8917cd9697185e30bb79238be4d84d02693e"
	readmeContent = "# xontrib-xgit\n\nExplore git from the xonsh shell.\n"
)

// newFixture builds the repository layout used throughout the tests:
//
//	.gitignore        blob 3207
//	.vscode/          tree
//	LICENSE           blob 1066
//	README.md         blob 50
//	bstring/          tree
//	requirements.txt  blob 23
//	xontrib-xgit/     tree
func newFixture() (*fakeStore, navigator.RepoContext) {
	s := newFakeStore()

	vscode := s.addTree("0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a",
		named("settings.json", s.addBlob("0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b", "{}\n")),
	)
	bstring := s.addTree("0c0c0c0c0c0c0c0c0c0c0c0c0c0c0c0c0c0c0c0c",
		named("__init__.py", s.addBlob("0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d", "")),
		named("bstring.py", s.addBlob("0e0e0e0e0e0e0e0e0e0e0e0e0e0e0e0e0e0e0e0e", "class bstring: pass\n")),
	)
	xgitDir := s.addTree("1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a",
		named("link", withMode(filemode.Symlink, s.addBlob("1b1b1b1b1b1b1b1b1b1b1b1b1b1b1b1b1b1b1b1b", "../README.md"))),
		named("run.sh", withMode(filemode.Executable, s.addBlob("1c1c1c1c1c1c1c1c1c1c1c1c1c1c1c1c1c1c1c1c", "#!/bin/sh\n"))),
		named("vendor", navigator.TreeEntry{Mode: filemode.Submodule, Hash: plumbing.NewHash("1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d")}),
	)

	s.addTree(fixtureTree,
		named(".gitignore", s.addBlob("2a2a2a2a2a2a2a2a2a2a2a2a2a2a2a2a2a2a2a2a", padding(3207))),
		named(".vscode", vscode),
		named("LICENSE", s.addBlob("2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b", padding(1066))),
		named("README.md", s.addBlob(readmeHash, readmeContent)),
		named("bstring", bstring),
		named("requirements.txt", s.addBlob("2c2c2c2c2c2c2c2c2c2c2c2c2c2c2c2c2c2c2c2c", padding(23))),
		named("xontrib-xgit", xgitDir),
	)
	s.commits[plumbing.NewHash(fixtureCommit)] = plumbing.NewHash(fixtureTree)

	rc := navigator.RepoContext{
		RepositoryPath: "/work/xgit/.git",
		CommonPath:     "/work/xgit/.git",
		WorktreeRoot:   "/work/xgit",
		Branch:         "main",
		Commit:         plumbing.NewHash(fixtureCommit),
		Cwd:            "/work/xgit",
	}
	return s, rc
}
