package navigation

import (
	"github.com/spf13/cobra"

	"xgit.dev/xgit/internal/cli/helpers"
	"xgit.dev/xgit/internal/output"
	"xgit.dev/xgit/internal/runtime"
)

// NewPwdCmd creates the pwd command
func NewPwdCmd(opts *helpers.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pwd",
		Short: "Show the current repository context",
		Long: `Show the current repository context.

Prints the repository and common git directories, the worktree root, the
path within the repository, the current branch (or a detached HEAD marker),
the current commit with its tree, parents, author, committer and summary,
and the working directory.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, opts, func(ctx *runtime.Context, r *output.Renderer) error {
				head, err := ctx.HeadCommit()
				if err != nil {
					return err
				}
				return r.Context(ctx.RepoContext, head)
			})
		},
	}

	return cmd
}
