package navigation

import (
	"fmt"

	"github.com/spf13/cobra"

	"xgit.dev/xgit/internal/cli/helpers"
	"xgit.dev/xgit/internal/navigator"
	"xgit.dev/xgit/internal/output"
	"xgit.dev/xgit/internal/runtime"
)

// NewCatCmd creates the cat command
func NewCatCmd(opts *helpers.Options) *cobra.Command {
	var rev string

	cmd := &cobra.Command{
		Use:   "cat <path>",
		Short: "Print the content of a blob",
		Long: `Print the content of a blob.

Writes the raw bytes of the file at path as stored in the current commit
(or --rev). For a symlink the link target is printed.`,
		Args:              cobra.ExactArgs(1),
		SilenceUsage:      true,
		ValidArgsFunction: helpers.CompletePaths(opts, false),
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, opts, func(ctx *runtime.Context, _ *output.Renderer) error {
				resolveOpts, err := ctx.RootOption(rev)
				if err != nil {
					return err
				}
				obj, err := ctx.Resolver.Resolve(cmd.Context(), ctx.RepoContext, args[0], resolveOpts...)
				if err != nil {
					return err
				}

				file, ok := obj.(*navigator.File)
				if !ok {
					return fmt.Errorf("%s: is a directory", args[0])
				}
				if file.Type() == navigator.TypeSubmodule {
					return fmt.Errorf("%s: is a submodule", args[0])
				}

				content, err := file.Content(cmd.Context())
				if err != nil {
					return err
				}
				ctx.Splog.Page(string(content))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&rev, "rev", "", "Commit, branch or tag to read from instead of HEAD")
	_ = cmd.RegisterFlagCompletionFunc("rev", helpers.CompleteRevisions(opts))

	return cmd
}
