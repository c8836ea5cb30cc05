package navigation

import (
	"github.com/spf13/cobra"

	"xgit.dev/xgit/internal/cli/helpers"
	"xgit.dev/xgit/internal/output"
	"xgit.dev/xgit/internal/runtime"
)

// NewLsCmd creates the ls command
func NewLsCmd(opts *helpers.Options) *cobra.Command {
	var rev string

	cmd := &cobra.Command{
		Use:   "ls [path]",
		Short: "List a tree or show a single entry",
		Long: `List a tree or show a single entry.

Paths are relative to the current directory within the repository; a leading
"/" makes them relative to the worktree root. Without a path the current
directory is listed. Each line shows the type marker (D tree, L symlink,
S submodule, X executable, - file), the object type, hash, size and name.

Use --rev to list the tree of another commit, branch or tag.`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		ValidArgsFunction: helpers.CompletePaths(opts, false),
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, opts, func(ctx *runtime.Context, r *output.Renderer) error {
				p := ""
				if len(args) > 0 {
					p = args[0]
				}

				resolveOpts, err := ctx.RootOption(rev)
				if err != nil {
					return err
				}
				obj, err := ctx.Resolver.Resolve(cmd.Context(), ctx.RepoContext, p, resolveOpts...)
				if err != nil {
					return err
				}
				return r.Object(obj)
			})
		},
	}

	cmd.Flags().StringVar(&rev, "rev", "", "Commit, branch or tag to list instead of HEAD")
	_ = cmd.RegisterFlagCompletionFunc("rev", helpers.CompleteRevisions(opts))

	return cmd
}
