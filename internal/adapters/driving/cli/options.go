package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/convert-code-refs/internal/core/domain"
	"github.com/custodia-labs/convert-code-refs/internal/core/ports/driven"
)

// Config keys read from the TOML file.
const (
	keyColor       = "output.color"
	keyDiff        = "output.diff"
	keyDiffContext = "output.diff_context"
	keyDryRun      = "run.dry_run"
	keyVerbose     = "log.verbose"
	keyQuiet       = "log.quiet"
)

// resolveOptions layers defaults, the config file and explicit flags,
// in that order.
func resolveOptions(cmd *cobra.Command) (domain.Options, error) {
	opts := domain.DefaultOptions()

	if loadConfig != nil {
		store, err := loadConfig(flagConfig)
		if err != nil {
			return opts, err
		}
		applyConfig(&opts, store)
	}

	flags := cmd.Flags()
	if flags.Changed("dry-run") {
		opts.DryRun = flagDryRun
	}
	if flags.Changed("diff") {
		opts.ShowDiff = flagDiff
	}
	if flags.Changed("diff-context") {
		opts.DiffContext = flagDiffContext
	}
	if flags.Changed("color") {
		opts.Color = domain.ColorMode(flagColor)
	}
	if flags.Changed("verbose") {
		opts.Verbose = flagVerbose
		opts.Quiet = false
	}
	if flags.Changed("quiet") {
		opts.Quiet = flagQuiet
		opts.Verbose = false
	}

	if !opts.Color.IsValid() {
		return opts, fmt.Errorf("%q: %w", opts.Color, domain.ErrInvalidColorMode)
	}
	if opts.DiffContext < 0 {
		return opts, fmt.Errorf("diff context %d: %w", opts.DiffContext, domain.ErrInvalidInput)
	}
	if opts.Verbose {
		opts.Quiet = false
	}
	return opts, nil
}

func applyConfig(opts *domain.Options, store driven.ConfigStore) {
	if _, ok := store.Get(keyColor); ok {
		opts.Color = domain.ColorMode(store.GetString(keyColor))
	}
	if _, ok := store.Get(keyDiff); ok {
		opts.ShowDiff = store.GetBool(keyDiff)
	}
	if _, ok := store.Get(keyDiffContext); ok {
		opts.DiffContext = store.GetInt(keyDiffContext)
	}
	if _, ok := store.Get(keyDryRun); ok {
		opts.DryRun = store.GetBool(keyDryRun)
	}
	if _, ok := store.Get(keyVerbose); ok {
		opts.Verbose = store.GetBool(keyVerbose)
	}
	if _, ok := store.Get(keyQuiet); ok {
		opts.Quiet = store.GetBool(keyQuiet)
	}
}
