package navigation

import (
	"github.com/spf13/cobra"

	"xgit.dev/xgit/internal/cli/helpers"
	"xgit.dev/xgit/internal/navigator"
	"xgit.dev/xgit/internal/output"
	"xgit.dev/xgit/internal/runtime"
)

// NewCdCmd creates the cd command
func NewCdCmd(opts *helpers.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cd [path]",
		Short: "Print the directory a cd would move to",
		Long: `Print the directory a cd would move to.

The path must name a directory in the current commit. Without a path the
target is the worktree root. The working directory is never changed; use
it as:

  cd "$(xgit cd docs --format text)"

When the target leaves the current worktree a warning names the worktree
(and branch) it falls in, or reports that it is outside the repository.`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		ValidArgsFunction: helpers.CompletePaths(opts, true),
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, opts, func(ctx *runtime.Context, r *output.Renderer) error {
				p := ""
				if len(args) > 0 {
					p = args[0]
				}

				res, err := ctx.Resolver.Cd(cmd.Context(), ctx.RepoContext, p)
				if err != nil {
					return err
				}

				switch res.Switch {
				case navigator.SwitchWorktree:
					ctx.Splog.Warn("%s is in worktree %s (%s)", res.Dir, res.Worktree.Path, worktreeBranch(res.Worktree))
				case navigator.SwitchOutside:
					ctx.Splog.Warn("%s is outside the repository", res.Dir)
				}
				return r.Cd(res)
			})
		},
	}

	return cmd
}

func worktreeBranch(wt *navigator.Worktree) string {
	if wt.Detached || wt.Branch == "" {
		return "HEAD (detached)"
	}
	return wt.Branch
}
