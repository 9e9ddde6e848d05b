package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/sitewatch/sitecheck/internal/config"
	"github.com/sitewatch/sitecheck/internal/healthcheck"
	"github.com/sitewatch/sitecheck/internal/request"
	"github.com/spf13/cobra"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"

	// Global config
	cfg *config.Config

	// Global logger, built from cfg before the command runs
	logger *slog.Logger
)

// rootCmd represents the base command
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sitecheck <interval_seconds> <site_url>",
		Short: "sitecheck - simulated site health reporter",
		Long: `sitecheck prints the health of a site once every interval, until it is killed.
No request is sent: the URL path is the simulated HTTP status.
  /200 or no path  reports OK(200)
  /<code>          reports ERR(<code>)

The interval is a whole number of seconds between 0 and 255.
Example: sitecheck 5 http://www.example.com/503`,
		Args: cobra.ArbitraryArgs,
		// Flags are not parsed so that "-1" reaches the interval validator.
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			logger = createLogger(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
			return nil
		},
		RunE: runHealthCheck,
	}
}

// runHealthCheck validates the arguments and reports until the process is killed
func runHealthCheck(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		switch args[0] {
		case "-h", "--help":
			return cmd.Help()
		case "--version":
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "sitecheck version %s\ncommit: %s\nbuilt: %s\n", Version, GitCommit, BuildDate)
			return err
		}
	}

	checker, err := healthcheck.New(cmd.OutOrStdout(), logger)
	if err != nil {
		return err
	}

	// Argument 0 is the program name, as in os.Args
	argv := append([]string{cmd.Name()}, args...)
	return checker.Run(cmd.Context(), argv)
}

// Execute runs the root command.
// The context is never cancelled: once validation passes, the command only
// returns on an output failure.
func Execute() error {
	return execute(context.Background(), rootCmd)
}

func execute(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		printError(cmd.ErrOrStderr(), cmd, err)
	}
	return err
}

// printError writes the user-facing message for err
func printError(w io.Writer, cmd *cobra.Command, err error) {
	kind := request.KindOf(err)
	if kind == 0 {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}

	fmt.Fprintln(w, kind.Message())
	if kind == request.KindArgsQty {
		fmt.Fprintf(w, "Usage: %s\n", cmd.UseLine())
	}
	if logger != nil {
		logger.Debug("validation failed", slog.String("kind", kind.String()), slog.String("error", err.Error()))
	}
}

// ExitCode maps an Execute error to a process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case request.IsKind(err, request.KindArgsQty):
		return 2
	default:
		return 1
	}
}
