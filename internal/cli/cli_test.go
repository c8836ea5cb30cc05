package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"xgit.dev/xgit/internal/cli"
	xgiterrors "xgit.dev/xgit/internal/errors"
	"xgit.dev/xgit/internal/output"
	"xgit.dev/xgit/testhelpers"
)

type result struct {
	stdout string
	stderr string
	err    error
}

// runXgit executes the root command in-process with an isolated user config
func runXgit(t *testing.T, args ...string) result {
	t.Helper()
	t.Setenv("XGIT_CONFIG", filepath.Join(t.TempDir(), "config.toml"))
	t.Setenv("XGIT_LOG_FILE", "")

	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd("1.2.3", "abc123", "2026-01-01")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cli.Execute(cmd)
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestPwdCommand(t *testing.T) {
	testhelpers.RequireGit(t)
	scene := testhelpers.NewScene(t, testhelpers.ProjectSceneSetup)

	t.Run("json at the root", func(t *testing.T) {
		res := runXgit(t, "-C", scene.Dir, "pwd", "--format", "json")
		require.NoError(t, res.err)

		var rec output.ContextRecord
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &rec))
		require.Equal(t, scene.Dir, rec.Worktree)
		require.Equal(t, scene.Path(".git"), rec.Common)
		require.Equal(t, "main", rec.Branch)
		require.Equal(t, "", rec.Path)
		require.Equal(t, testhelpers.Must(scene.Repo.GetRevision("HEAD")), rec.Commit)

		require.NotNil(t, rec.Head)
		require.Equal(t, "Test User <test@example.com>", rec.Head.Author)
		require.Equal(t, "Test User <test@example.com>", rec.Head.Committer)
		require.Equal(t, "initial", rec.Head.Summary)
		require.Equal(t, "initial\n", rec.Head.Message)
		require.Empty(t, rec.Head.Parents)
		require.Equal(t, testhelpers.Must(scene.Repo.GetRevision("HEAD^{tree}")), rec.Head.Tree)
	})

	t.Run("text shows the head commit", func(t *testing.T) {
		res := runXgit(t, "-C", scene.Dir, "pwd", "--format", "text")
		require.NoError(t, res.err)
		require.Contains(t, res.stdout, "author:     Test User <test@example.com>\n")
		require.Contains(t, res.stdout, "summary:    initial\n")
	})

	t.Run("text from a subdirectory", func(t *testing.T) {
		res := runXgit(t, "-C", scene.Path("docs", "api"), "pwd", "--format", "text", "--abbrev", "7")
		require.NoError(t, res.err)
		require.Contains(t, res.stdout, "path:       /docs/api\n")
		require.Contains(t, res.stdout, "branch:     main\n")
	})

	t.Run("piped output defaults to json", func(t *testing.T) {
		res := runXgit(t, "-C", scene.Dir, "pwd")
		require.NoError(t, res.err)
		require.True(t, json.Valid([]byte(res.stdout)))
	})
}

func TestLsCommand(t *testing.T) {
	testhelpers.RequireGit(t)
	scene := testhelpers.NewScene(t, testhelpers.ProjectSceneSetup)

	t.Run("lists the root tree in long format", func(t *testing.T) {
		res := runXgit(t, "-C", scene.Dir, "ls", "--format", "text")
		require.NoError(t, res.err)

		lines := strings.Split(strings.TrimSuffix(res.stdout, "\n"), "\n")
		require.Len(t, lines, 4)
		require.True(t, strings.HasPrefix(lines[0], "- blob "))
		require.True(t, strings.HasSuffix(lines[0], "\tREADME.md"))
		require.True(t, strings.HasPrefix(lines[1], "D tree "))
		require.True(t, strings.HasSuffix(lines[1], "\tbin/"))
		require.True(t, strings.HasPrefix(lines[3], "L blob "))
	})

	t.Run("relative path from a subdirectory", func(t *testing.T) {
		res := runXgit(t, "-C", scene.Path("docs"), "ls", "api", "--format", "yaml")
		require.NoError(t, res.err)

		var rec output.DirectoryRecord
		require.NoError(t, yaml.Unmarshal([]byte(res.stdout), &rec))
		require.Equal(t, "docs/api", rec.Path)
		require.Len(t, rec.Entries, 1)
		require.Equal(t, "index.md", rec.Entries[0].Name)
	})

	t.Run("single executable entry", func(t *testing.T) {
		res := runXgit(t, "-C", scene.Dir, "ls", "/bin/run.sh", "--format", "json")
		require.NoError(t, res.err)

		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &m))
		require.Equal(t, "bin/run.sh", m["path"])
		require.Equal(t, "executable", m["type"])
	})

	t.Run("abbreviated hashes", func(t *testing.T) {
		res := runXgit(t, "-C", scene.Dir, "ls", "README.md", "--format", "text", "--abbrev", "7")
		require.NoError(t, res.err)
		hash := testhelpers.Must(scene.Repo.GetObjectHash("README.md"))
		require.Contains(t, res.stdout, " "+hash[:7]+" ")
		require.NotContains(t, res.stdout, hash)
	})

	t.Run("missing path suggests names", func(t *testing.T) {
		res := runXgit(t, "-C", scene.Dir, "ls", "READM")
		require.ErrorIs(t, res.err, xgiterrors.ErrNotFound)
		require.Contains(t, res.err.Error(), "did you mean README.md")
	})

	t.Run("descending into a file fails", func(t *testing.T) {
		res := runXgit(t, "-C", scene.Dir, "ls", "README.md/x")
		require.ErrorIs(t, res.err, xgiterrors.ErrNotTraversable)
	})

	t.Run("climbing above the worktree fails", func(t *testing.T) {
		res := runXgit(t, "-C", scene.Dir, "ls", "..")
		require.ErrorIs(t, res.err, xgiterrors.ErrOutsideWorktree)
	})
}

func TestLsRevision(t *testing.T) {
	testhelpers.RequireGit(t)
	scene := testhelpers.NewScene(t, testhelpers.ProjectSceneSetup)
	require.NoError(t, scene.Repo.WriteFile("NEW.md", "new\n", 0o644))
	require.NoError(t, scene.Repo.Commit("second"))

	res := runXgit(t, "-C", scene.Dir, "ls", "--rev", "HEAD~1", "--format", "json")
	require.NoError(t, res.err)
	require.NotContains(t, res.stdout, "NEW.md")

	res = runXgit(t, "-C", scene.Dir, "ls", "--format", "json")
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "NEW.md")

	res = runXgit(t, "-C", scene.Dir, "ls", "--rev", "no-such-branch")
	require.Error(t, res.err)
}

func TestCatCommand(t *testing.T) {
	testhelpers.RequireGit(t)
	scene := testhelpers.NewScene(t, testhelpers.ProjectSceneSetup)

	t.Run("prints blob content", func(t *testing.T) {
		res := runXgit(t, "-C", scene.Dir, "cat", "README.md")
		require.NoError(t, res.err)
		require.Equal(t, "# project\n", res.stdout)
	})

	t.Run("prints the committed content, not the worktree", func(t *testing.T) {
		require.NoError(t, os.WriteFile(scene.Path("docs", "guide.md"), []byte("edited\n"), 0o644))
		res := runXgit(t, "-C", scene.Path("docs"), "cat", "guide.md")
		require.NoError(t, res.err)
		require.Equal(t, "# Guide\n", res.stdout)
	})

	t.Run("symlink prints its target", func(t *testing.T) {
		res := runXgit(t, "-C", scene.Dir, "cat", "latest")
		require.NoError(t, res.err)
		require.Equal(t, "docs/guide.md", res.stdout)
	})

	t.Run("directory is rejected", func(t *testing.T) {
		res := runXgit(t, "-C", scene.Dir, "cat", "docs")
		require.ErrorContains(t, res.err, "docs: is a directory")
	})
}

func TestCdCommand(t *testing.T) {
	testhelpers.RequireGit(t)
	scene := testhelpers.NewScene(t, testhelpers.ProjectSceneSetup)

	t.Run("prints the target directory", func(t *testing.T) {
		res := runXgit(t, "-C", scene.Dir, "cd", "docs/api", "--format", "text")
		require.NoError(t, res.err)
		require.Equal(t, scene.Path("docs", "api")+"\n", res.stdout)
	})

	t.Run("no path goes to the worktree root", func(t *testing.T) {
		res := runXgit(t, "-C", scene.Path("docs", "api"), "cd", "--format", "text")
		require.NoError(t, res.err)
		require.Equal(t, scene.Dir+"\n", res.stdout)
	})

	t.Run("file is not a directory", func(t *testing.T) {
		res := runXgit(t, "-C", scene.Dir, "cd", "README.md")
		require.ErrorIs(t, res.err, xgiterrors.ErrNotTraversable)
	})

	t.Run("sibling worktree is reported", func(t *testing.T) {
		featureDir := filepath.Join(filepath.Dir(scene.Dir), "feature")
		require.NoError(t, scene.Repo.AddWorktree(featureDir, "feature"))

		res := runXgit(t, "-C", scene.Dir, "cd", "../feature/docs", "--format", "json")
		require.NoError(t, res.err)

		var rec output.CdRecord
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &rec))
		require.Equal(t, "worktree", rec.Switch)
		require.Equal(t, filepath.Join(featureDir, "docs"), rec.Dir)
		require.Equal(t, featureDir, rec.Worktree)
		require.Equal(t, "feature", rec.Branch)
		require.Contains(t, res.stderr, "warning: ")
		require.Contains(t, res.stderr, "(feature)")
	})

	t.Run("outside every worktree", func(t *testing.T) {
		res := runXgit(t, "-C", scene.Dir, "cd", "../elsewhere", "--format", "json")
		require.NoError(t, res.err)
		require.Contains(t, res.stdout, `"switch": "outside"`)
		require.Contains(t, res.stderr, "is outside the repository")
	})
}

func TestRepoConfigOverridesFormat(t *testing.T) {
	testhelpers.RequireGit(t)
	scene := testhelpers.NewScene(t, testhelpers.ProjectSceneSetup)
	require.NoError(t, os.WriteFile(scene.Path(".git", ".xgit_config"), []byte(`{"format": "yaml", "abbrev": 10}`), 0o600))

	res := runXgit(t, "-C", scene.Dir, "pwd")
	require.NoError(t, res.err)

	var rec output.ContextRecord
	require.NoError(t, yaml.Unmarshal([]byte(res.stdout), &rec))
	require.Len(t, rec.Commit, 10)

	res = runXgit(t, "-C", scene.Dir, "pwd", "--format", "json", "--abbrev", "0")
	require.NoError(t, res.err)
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &rec))
	require.Len(t, rec.Commit, 40)
}

func TestOutsideRepository(t *testing.T) {
	testhelpers.RequireGit(t)
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))

	res := runXgit(t, "-C", dir, "ls")
	require.ErrorIs(t, res.err, xgiterrors.ErrContextUnavailable)
	require.Equal(t, "error: "+res.err.Error()+"\n", res.stderr)
	require.Contains(t, res.stderr, "not in a git repository")
}

func TestUsageErrorsArePrintedOnce(t *testing.T) {
	res := runXgit(t, "cat")
	require.Error(t, res.err)
	require.Equal(t, "error: accepts 1 arg(s), received 0\n", res.stderr)
	require.Empty(t, res.stdout)
}

func TestGlobalFlagValidation(t *testing.T) {
	testhelpers.RequireGit(t)
	scene := testhelpers.NewScene(t, testhelpers.ProjectSceneSetup)

	res := runXgit(t, "-C", scene.Dir, "ls", "--format", "xml")
	require.ErrorContains(t, res.err, `unknown format "xml"`)

	res = runXgit(t, "-C", scene.Dir, "ls", "--abbrev", "-1")
	require.ErrorContains(t, res.err, "must not be negative")
}

func TestVersionCommand(t *testing.T) {
	res := runXgit(t, "version")
	require.NoError(t, res.err)
	require.Equal(t, "xgit 1.2.3\ncommit: abc123\nbuilt:  2026-01-01\n", res.stdout)

	res = runXgit(t, "--version")
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "1.2.3 (commit abc123, built 2026-01-01)")
}
