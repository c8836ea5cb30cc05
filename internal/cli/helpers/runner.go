// Package helpers provides shared helper functions for CLI commands.
package helpers

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"xgit.dev/xgit/internal/config"
	"xgit.dev/xgit/internal/output"
	"xgit.dev/xgit/internal/runtime"
)

// Options holds the global flags shared by every command
type Options struct {
	Dir    string
	Format string
	Abbrev int
	Debug  bool
}

// Run is a helper that provides a runtime context and a renderer to a command's execution function
func Run(cmd *cobra.Command, opts *Options, fn func(ctx *runtime.Context, r *output.Renderer) error) error {
	format, err := output.ParseFormat(opts.Format)
	if err != nil {
		return err
	}
	if opts.Abbrev < 0 {
		return fmt.Errorf("invalid --abbrev %d: must not be negative", opts.Abbrev)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	splog, err := output.NewSplogWithOptions(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.LogOptions{
		File:       cfg.LogFile,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Debug:      opts.Debug || os.Getenv("DEBUG") != "",
	})
	if err != nil {
		return err
	}
	defer func() { _ = splog.Close() }()

	ctx, err := runtime.NewContext(cmd.Context(), opts.Dir, cfg, splog)
	if err != nil {
		splog.Debug("no repository context in %q: %v", opts.Dir, err)
		return err
	}

	if err := fn(ctx, newRenderer(ctx, opts, cmd.Flags().Changed("abbrev"), format)); err != nil {
		splog.Debug("%s failed: %v", cmd.Name(), err)
		return err
	}
	return nil
}

// newRenderer picks the format from the flag, then config, then the terminal
func newRenderer(ctx *runtime.Context, opts *Options, abbrevSet bool, format output.Format) *output.Renderer {
	out := ctx.Splog.Out()
	if format == "" {
		format = output.Format(ctx.Config.Format)
	}
	if format == "" {
		format = output.DefaultFormat(out)
	}

	abbrev := ctx.Config.Abbrev
	if abbrevSet {
		abbrev = opts.Abbrev
	}
	return output.NewRenderer(out, format, abbrev)
}
