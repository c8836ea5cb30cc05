package helpers

import (
	"io"
	"path"
	"strings"

	"github.com/spf13/cobra"

	"xgit.dev/xgit/internal/config"
	"xgit.dev/xgit/internal/output"
	"xgit.dev/xgit/internal/runtime"
)

// CompletionFunc matches cobra.Command.ValidArgsFunction
type CompletionFunc func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective)

func completionContext(cmd *cobra.Command, opts *Options) (*runtime.Context, error) {
	// Anything written to stdout would corrupt the completion protocol
	splog, err := output.NewSplogWithOptions(io.Discard, io.Discard, output.LogOptions{})
	if err != nil {
		return nil, err
	}
	return runtime.NewContext(cmd.Context(), opts.Dir, config.Default(), splog)
}

// CompletePaths returns a completion function listing tree entries under the
// directory part of the word being completed. dirsOnly restricts it to trees.
func CompletePaths(opts *Options, dirsOnly bool) CompletionFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		ctx, err := completionContext(cmd, opts)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		parent, prefix := path.Split(toComplete)
		dir, err := ctx.Resolver.ResolveDir(cmd.Context(), ctx.RepoContext, parent)
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		var names []string
		for e := range dir.All() {
			if dirsOnly && !e.IsDir() {
				continue
			}
			if !strings.HasPrefix(e.Name, prefix) {
				continue
			}
			name := parent + e.Name
			if e.IsDir() {
				name += "/"
			}
			names = append(names, name)
		}
		return names, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
	}
}

// CompleteRevisions is a helper for RegisterFlagCompletionFunc
// that returns all branch and tag names in the repository.
func CompleteRevisions(opts *Options) CompletionFunc {
	return func(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		ctx, err := completionContext(cmd, opts)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		names, err := ctx.Repo.RevisionNames()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}
