package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/tinvalidate/create-validator/internal/branding"
	"github.com/tinvalidate/create-validator/internal/config"
	"github.com/tinvalidate/create-validator/internal/scaffold"
	"github.com/tinvalidate/create-validator/internal/templates"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <country>/<tin>",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates the skeleton of a new TIN validator: <root>/<country>/<tin>.ts,
its <tin>.spec.ts test file, and an export line in <root>/<country>/index.ts.
Existing files are never overwritten.

The identifier is the only required input. Settings in ` + branding.ConfigName() + `.yaml,
` + branding.EnvPrefix() + `_* environment variables and --verbose are optional: when none
are given, validators go under ` + branding.DefaultRoot() + `/ and the built-in templates are used.`,
	Example:       "  " + branding.CLIName() + " us/ein",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}

		m := scaffold.New(e.fs, e.cfg.Root, e.templateSource(), scaffold.WithLogger(e.logger))
		result, err := m.Materialize(args[0])
		if err != nil {
			return err
		}

		printResult(cmd.OutOrStdout(), result)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every file system change")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// env is the per-invocation state shared by commands.
type env struct {
	fs     afero.Fs
	dir    string
	cfg    *config.Config
	logger *log.Logger
}

func loadEnv(cmd *cobra.Command) (*env, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolving working directory: %w", err)
	}

	afs := afero.NewOsFs()
	cfg, err := config.Load(afs, dir)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	return &env{fs: afs, dir: dir, cfg: cfg, logger: logger}, nil
}

func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", config.KeyLogLevel, level, err)
	}
	if verbose {
		lvl = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Prefix: branding.CLIName(),
		Level:  lvl,
	}), nil
}

func (e *env) templateSource() *templates.Loader {
	if e.cfg.TemplatesDir != "" {
		return templates.Dir(e.fs, e.cfg.TemplatesDir, buildVersion)
	}
	return templates.Embedded(buildVersion)
}

func printResult(w io.Writer, result *scaffold.Result) {
	fmt.Fprintf(w, "Created validator %s at %s/\n", result.Identifier, result.Dir)
	for _, f := range result.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}
	fmt.Fprintf(w, "  %s (appended)\n", result.Index)

	if len(result.Warnings) > 0 {
		fmt.Fprintln(w, "\nWarnings:")
		for _, warning := range result.Warnings {
			fmt.Fprintf(w, "  - %s\n", warning)
		}
	}

	fmt.Fprintln(w, "\nNext steps:")
	fmt.Fprintf(w, "  1. Fill in the validation logic in %s\n", result.Files[0])
	fmt.Fprintf(w, "  2. Replace the VALUE samples in %s\n", result.Files[1])
}
