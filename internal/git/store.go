package git

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	xgiterrors "xgit.dev/xgit/internal/errors"
	"xgit.dev/xgit/internal/navigator"
)

// Store reads trees and blobs from go-git object storage.
// It works with both the filesystem and in-memory storers.
type Store struct {
	storer storer.EncodedObjectStorer
	logger *slog.Logger
}

var _ navigator.ObjectStore = (*Store)(nil)

// NewStore creates a Store over s
func NewStore(s storer.EncodedObjectStorer, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{storer: s, logger: logger}
}

// NewRepositoryStore creates a Store over an opened repository
func NewRepositoryStore(repo *Repository, logger *slog.Logger) *Store {
	return NewStore(repo.Storer, logger)
}

// PeelTree follows commits and annotated tags down to a tree
func (s *Store) PeelTree(ctx context.Context, hash plumbing.Hash) (plumbing.Hash, error) {
	if err := ctx.Err(); err != nil {
		return plumbing.ZeroHash, err
	}

	obj, err := s.storer.EncodedObject(plumbing.AnyObject, hash)
	if err != nil {
		return plumbing.ZeroHash, objectError(hash, err)
	}

	switch obj.Type() {
	case plumbing.TreeObject:
		return hash, nil
	case plumbing.CommitObject:
		commit, err := object.DecodeCommit(s.storer, obj)
		if err != nil {
			return plumbing.ZeroHash, fmt.Errorf("failed to decode commit %s: %w", hash, err)
		}
		return commit.TreeHash, nil
	case plumbing.TagObject:
		tag, err := object.DecodeTag(s.storer, obj)
		if err != nil {
			return plumbing.ZeroHash, fmt.Errorf("failed to decode tag %s: %w", hash, err)
		}
		return s.PeelTree(ctx, tag.Target)
	default:
		return plumbing.ZeroHash, xgiterrors.NewTypeNotTraversableError(hash.String(), obj.Type().String())
	}
}

// ListTree returns the entries of the tree at hash in stored order.
// Blob sizes come from the object header; trees and submodules get 0.
func (s *Store) ListTree(ctx context.Context, hash plumbing.Hash) ([]navigator.TreeEntry, error) {
	treeHash, err := s.PeelTree(ctx, hash)
	if err != nil {
		return nil, err
	}

	tree, err := object.GetTree(s.storer, treeHash)
	if err != nil {
		return nil, objectError(treeHash, err)
	}

	s.logger.Debug("list tree", "hash", treeHash.String(), "entries", len(tree.Entries))

	entries := make([]navigator.TreeEntry, 0, len(tree.Entries))
	for _, e := range tree.Entries {
		entry := navigator.TreeEntry{
			Name: e.Name,
			Mode: e.Mode,
			Hash: e.Hash,
		}
		if e.Mode.IsFile() {
			size, err := s.blobSize(e.Hash)
			if err != nil {
				return nil, err
			}
			entry.Size = size
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// ReadBlob returns the full content of a blob
func (s *Store) ReadBlob(ctx context.Context, hash plumbing.Hash) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	blob, err := object.GetBlob(s.storer, hash)
	if err != nil {
		return nil, objectError(hash, err)
	}

	s.logger.Debug("read blob", "hash", hash.String(), "size", blob.Size)

	reader, err := blob.Reader()
	if err != nil {
		return nil, fmt.Errorf("failed to open blob %s: %w", hash, err)
	}
	defer reader.Close()

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read blob %s: %w", hash, err)
	}
	return content, nil
}

func (s *Store) blobSize(hash plumbing.Hash) (int64, error) {
	obj, err := s.storer.EncodedObject(plumbing.BlobObject, hash)
	if err != nil {
		return 0, objectError(hash, err)
	}
	return obj.Size(), nil
}

func objectError(hash plumbing.Hash, err error) error {
	if errors.Is(err, plumbing.ErrObjectNotFound) {
		return xgiterrors.NewObjectNotFoundError(hash.String(), err)
	}
	return fmt.Errorf("failed to read object %s: %w", hash, err)
}
