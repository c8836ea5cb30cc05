package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"xgit.dev/xgit/internal/cli/helpers"
	"xgit.dev/xgit/internal/cli/navigation"
	"xgit.dev/xgit/internal/config"
	"xgit.dev/xgit/internal/output"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	opts := &helpers.Options{}

	rootCmd := &cobra.Command{
		Use:   "xgit",
		Short: "xgit navigates the git object tree of the current commit",
		Long: `xgit navigates the git object tree of the current commit.

Paths are resolved against the tree of HEAD, starting from the current
directory within the worktree. Nothing in the repository is ever modified.

Output defaults to text on a terminal and JSON otherwise; set "format" in
~/.config/xgit/config.toml or <git-common-dir>/.xgit_config to change it.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.Dir, "dir", "C", "", "Run as if xgit was started in this directory")
	flags.StringVar(&opts.Format, "format", "", "Output format: text, json or yaml")
	flags.IntVar(&opts.Abbrev, "abbrev", 0, "Abbreviate hashes to this many characters (0 for full hashes)")
	flags.BoolVar(&opts.Debug, "debug", false, "Print debug logging to stderr")
	_ = rootCmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(config.ValidFormats, cobra.ShellCompDirectiveNoFileComp))

	rootCmd.AddCommand(
		navigation.NewPwdCmd(opts),
		navigation.NewLsCmd(opts),
		navigation.NewCdCmd(opts),
		navigation.NewCatCmd(opts),
		newVersionCmd(version, commit, date),
	)

	return rootCmd
}

// Execute runs the root command and prints a failure once on its error stream
func Execute(rootCmd *cobra.Command) error {
	err := rootCmd.Execute()
	if err != nil {
		splog, logErr := output.NewSplogWithOptions(rootCmd.OutOrStdout(), rootCmd.ErrOrStderr(), output.LogOptions{
			Debug: os.Getenv("DEBUG") != "",
		})
		if logErr != nil {
			return err
		}
		splog.Error("%v", err)
	}
	return err
}

// newVersionCmd creates the version command
func newVersionCmd(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the xgit version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "xgit %s\ncommit: %s\nbuilt:  %s\n", version, commit, date)
		},
	}
}
