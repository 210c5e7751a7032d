package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/OpenTraceLab/OpenTraceDP/internal/config"
	"github.com/OpenTraceLab/OpenTraceDP/pkg/errors"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "opendp",
	Short: "Placement model builder for detailed placement",
	Long: `Import a placed design, discretize it into a site grid and check that
it can be legalized.

Examples:
  opendp run top.dsn --constraints top.cons   # Full pipeline and write-back
  opendp info top.dsn                         # Design analysis only
  opendp grid top.dsn                         # Print the site validity map`,
	Version:           "0.1.0",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and exits with a status derived from the
// error: 1 for fatal design errors and general failures, 2 for missing
// input files.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styleError.Render("error:"), err)
		atexit.Exit(exitCode(err))
	}
	atexit.Exit(0)
}

func exitCode(err error) int {
	if !errors.IsFatal(err) && errors.Is(err, errors.ErrCodeFileNotFound) {
		return 2
	}
	return 1
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML run configuration")
}

// setup loads the configuration and builds the logger shared by every
// subcommand.
func setup(cmd *cobra.Command, args []string) error {
	cfg = config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if len(args) > 0 {
		cfg.Design = args[0]
	}
	if verbose {
		cfg.Log.Level = "debug"
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	logger = newLogger(cmd.ErrOrStderr(), level)
	return nil
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
