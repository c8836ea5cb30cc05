package navigator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	xgiterrors "xgit.dev/xgit/internal/errors"
	"xgit.dev/xgit/internal/navigator"
)

type fakeWorktrees struct {
	worktrees []navigator.Worktree
	err       error
}

func (f *fakeWorktrees) Worktrees(context.Context) ([]navigator.Worktree, error) {
	return f.worktrees, f.err
}

func TestCd_WithinWorktree(t *testing.T) {
	store, rc := newFixture()
	r := navigator.NewResolver(store)
	ctx := context.Background()

	tests := []struct {
		name     string
		ctxPath  string
		path     string
		wantPath string
		wantDir  string
	}{
		{"empty goes to root", "bstring", "", "", "/work/xgit"},
		{"dot stays", "bstring", ".", "bstring", "/work/xgit/bstring"},
		{"subdirectory", "", "bstring", "bstring", "/work/xgit/bstring"},
		{"parent", "bstring", "..", "", "/work/xgit"},
		{"sibling", "bstring", "../.vscode/", ".vscode", "/work/xgit/.vscode"},
		{"absolute", "bstring", "/xontrib-xgit", "xontrib-xgit", "/work/xgit/xontrib-xgit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := r.Cd(ctx, rc.WithPath(tt.ctxPath), tt.path)
			require.NoError(t, err)
			require.Equal(t, navigator.SwitchNone, res.Switch)
			require.Equal(t, tt.wantPath, res.Context.Path)
			require.Equal(t, tt.wantDir, res.Dir)
			require.Nil(t, res.Worktree)
		})
	}
}

func TestCd_DoesNotMutateInput(t *testing.T) {
	store, rc := newFixture()
	r := navigator.NewResolver(store)

	_, err := r.Cd(context.Background(), rc, "bstring")
	require.NoError(t, err)
	require.Equal(t, "", rc.Path)
}

func TestCd_Errors(t *testing.T) {
	store, rc := newFixture()
	r := navigator.NewResolver(store)
	ctx := context.Background()

	_, err := r.Cd(ctx, rc, "README.md")
	require.ErrorIs(t, err, xgiterrors.ErrNotTraversable)

	_, err = r.Cd(ctx, rc, "nowhere")
	require.ErrorIs(t, err, xgiterrors.ErrNotFound)

	_, err = r.Cd(ctx, navigator.RepoContext{}, "bstring")
	require.ErrorIs(t, err, xgiterrors.ErrContextUnavailable)
}

func TestCd_CrossingWorktrees(t *testing.T) {
	store, rc := newFixture()
	lister := &fakeWorktrees{worktrees: []navigator.Worktree{
		{Path: "/work/xgit", Branch: "main"},
		{Path: "/work/xgit-feature", Branch: "feature"},
		{Path: "/work/bare.git", Bare: true},
	}}
	r := navigator.NewResolver(store, navigator.WithWorktrees(lister))
	ctx := context.Background()

	t.Run("into a sibling worktree", func(t *testing.T) {
		res, err := r.Cd(ctx, rc, "../xgit-feature/src")
		require.NoError(t, err)
		require.Equal(t, navigator.SwitchWorktree, res.Switch)
		require.Equal(t, "/work/xgit-feature/src", res.Dir)
		require.NotNil(t, res.Worktree)
		require.Equal(t, "feature", res.Worktree.Branch)
		require.Equal(t, rc, res.Context, "context is returned unchanged")
	})

	t.Run("outside every worktree", func(t *testing.T) {
		res, err := r.Cd(ctx, rc.WithPath("bstring"), "../../tmp")
		require.NoError(t, err)
		require.Equal(t, navigator.SwitchOutside, res.Switch)
		require.Equal(t, "/work/tmp", res.Dir)
		require.Nil(t, res.Worktree)
	})

	t.Run("bare repositories are skipped", func(t *testing.T) {
		res, err := r.Cd(ctx, rc, "../bare.git")
		require.NoError(t, err)
		require.Equal(t, navigator.SwitchOutside, res.Switch)
	})

	t.Run("lister failure", func(t *testing.T) {
		failing := navigator.NewResolver(store, navigator.WithWorktrees(&fakeWorktrees{err: errors.New("boom")}))
		_, err := failing.Cd(ctx, rc, "../xgit-feature")
		require.Error(t, err)
	})
}

func TestCd_WithoutWorktreeLister(t *testing.T) {
	store, rc := newFixture()
	r := navigator.NewResolver(store)

	res, err := r.Cd(context.Background(), rc, "..")
	require.NoError(t, err)
	require.Equal(t, navigator.SwitchOutside, res.Switch)
	require.Equal(t, "/work", res.Dir)
}

func TestSwitchKindString(t *testing.T) {
	require.Equal(t, "none", navigator.SwitchNone.String())
	require.Equal(t, "worktree", navigator.SwitchWorktree.String())
	require.Equal(t, "outside", navigator.SwitchOutside.String())
}
