package runtime

import (
	"context"
	"fmt"

	"github.com/go-git/go-git/v5/plumbing/object"

	"xgit.dev/xgit/internal/config"
	"xgit.dev/xgit/internal/git"
	"xgit.dev/xgit/internal/navigator"
	"xgit.dev/xgit/internal/output"
)

// Context provides access to the repository and output for commands
type Context struct {
	Splog       *output.Splog
	Config      config.Config
	Provider    *git.ContextProvider
	Repo        *git.Repository
	Store       *git.Store
	Resolver    *navigator.Resolver
	RepoContext navigator.RepoContext
}

// NewContext builds a context for dir (the process working directory when empty).
// Repository overrides from the common git dir are merged into cfg.
// Fails with ContextUnavailableError outside a repository.
func NewContext(ctx context.Context, dir string, cfg config.Config, splog *output.Splog) (*Context, error) {
	if splog == nil {
		splog = output.NewSplog()
	}
	logger := splog.Logger()

	provider := git.NewContextProvider(dir, logger)
	rc, err := provider.Current(ctx)
	if err != nil {
		return nil, err
	}

	repoCfg, err := config.GetRepoConfig(rc.CommonPath)
	if err != nil {
		return nil, err
	}

	repo, err := git.OpenRepository(rc.WorktreeRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	store := git.NewRepositoryStore(repo, logger)
	return &Context{
		Splog:       splog,
		Config:      config.MergeRepo(cfg, repoCfg),
		Provider:    provider,
		Repo:        repo,
		Store:       store,
		Resolver:    navigator.NewResolver(store, navigator.WithLogger(logger), navigator.WithWorktrees(provider)),
		RepoContext: rc,
	}, nil
}

// RootOption returns the resolve option for a revision, or nil for HEAD
func (c *Context) RootOption(rev string) ([]navigator.ResolveOption, error) {
	if rev == "" {
		return nil, nil
	}
	hash, err := c.Repo.ResolveRevision(rev)
	if err != nil {
		return nil, err
	}
	return []navigator.ResolveOption{navigator.WithRoot(hash)}, nil
}

// HeadCommit loads the context's current commit; nil on an unborn branch
func (c *Context) HeadCommit() (*object.Commit, error) {
	if c.RepoContext.Commit.IsZero() {
		return nil, nil
	}
	return c.Repo.PeelCommit(c.RepoContext.Commit)
}
