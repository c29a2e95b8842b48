package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/convert-code-refs/internal/core/domain"
	"github.com/custodia-labs/convert-code-refs/internal/core/ports/driven"
	"github.com/custodia-labs/convert-code-refs/internal/core/ports/driving"
	"github.com/custodia-labs/convert-code-refs/internal/logger"
)

// version is set at build time with -ldflags "-X .../cli.version=...".
var version = "dev"

// usageLine is printed when no files are given.
const usageLine = "Usage: convert-code-refs <file> [<file2> ...]"

// Config holds the services and adapters the CLI drives.
type Config struct {
	// ConvertService performs the conversion.
	ConvertService driving.ConvertService

	// LoadConfig opens the run configuration. An empty path selects the
	// default location, which may be absent. Nil disables config files.
	LoadConfig func(path string) (driven.ConfigStore, error)
}

var (
	convertService driving.ConvertService
	loadConfig     func(path string) (driven.ConfigStore, error)
)

// Configure wires the services used by the commands.
func Configure(cfg Config) {
	convertService = cfg.ConvertService
	loadConfig = cfg.LoadConfig
}

var (
	flagDryRun      bool
	flagDiff        bool
	flagDiffContext int
	flagColor       string
	flagConfig      string
	flagVerbose     bool
	flagQuiet       bool
)

var rootCmd = &cobra.Command{
	Use:   "convert-code-refs <file> [<file2> ...]",
	Short: "Link code references in HTML documents",
	Long: `Rewrites HTML files in place, turning the code references inside
<p class="code-ref"> blocks into links to the repository on GitHub.

File paths such as src/foo/bar.scala:10-20 link to the file and line range.
Bare identifiers such as favScoreHalfLife100Days link to a code search.
Blocks that already contain a link are left untouched, so running the
command twice is safe.

Arguments may be glob patterns (docs/**/*.html).`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runConvert,
}

func init() {
	flags := rootCmd.Flags()
	flags.BoolVarP(&flagDryRun, "dry-run", "n", false, "report conversions without writing files")
	flags.BoolVar(&flagDiff, "diff", false, "print a line diff of each changed file")
	flags.IntVar(&flagDiffContext, "diff-context", domain.DefaultDiffContext, "unchanged lines shown around each diff hunk")
	flags.StringVar(&flagColor, "color", string(domain.ColorAuto), "colour output: auto, always or never")
	flags.StringVar(&flagConfig, "config", "", "TOML file with flag defaults (default ~/.convert-code-refs/config.toml)")
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "log every block decision to stderr")
	flags.BoolVarP(&flagQuiet, "quiet", "q", false, "suppress warnings")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}

// Execute runs the root command with stdout as the report destination.
func Execute() error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.Execute()
}

func runConvert(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), usageLine)
		return domain.ErrNoFiles
	}

	if convertService == nil {
		return errors.New("convert service not configured")
	}

	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}
	applyLogLevel(opts)

	paths, err := expandArgs(args)
	if err != nil {
		return err
	}
	logger.Debug("converting %d files", len(paths))

	rep := newReporter(cmd.OutOrStdout(), opts)
	summary, err := convertService.ConvertFiles(cmd.Context(), paths, opts, rep)
	if err != nil {
		return err
	}

	rep.Total(summary)
	return nil
}

func applyLogLevel(opts domain.Options) {
	switch {
	case opts.Verbose:
		logger.SetLevel(logger.LevelVerbose)
	case opts.Quiet:
		logger.SetLevel(logger.LevelQuiet)
	default:
		logger.SetLevel(logger.LevelNormal)
	}
}
