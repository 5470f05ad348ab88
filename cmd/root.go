package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/marcus/folio/internal/workdir"
	"github.com/spf13/cobra"
)

var (
	version string
	baseDir string

	logLevel string
	logFile  string

	// logCloser is the open --log-file, closed by Execute.
	logCloser io.Closer
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Browse a project catalog in the terminal",
	Long: `folio - Show portfolio projects in a terminal modal.

Each project has a title, optional image or video, a plain-text description
and an optional PDF download. Projects live in a JSON catalog.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(cmd.Name())
	},
}

// Execute runs the root command
func Execute() {
	rootCmd.SetArgs(defaultToShow(os.Args[1:]))
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)

	rootCmd.PersistentFlags().StringVar(&baseDir, "dir", "", "base directory holding .folio/config.json (default: nearest project root)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write JSON logs to this file")
}

func initBaseDir() {
	if baseDir != "" {
		return
	}
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
	baseDir = workdir.ResolveBaseDir(cwd)
}

// getBaseDir returns the base directory for the project
func getBaseDir() string {
	return baseDir
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid --log-level %q: %w", s, err)
	}
	return level, nil
}

// setupLogging installs the default slog logger. JSON goes to --log-file;
// otherwise text goes to stderr, except for the interactive show command
// where stderr belongs to the UI and logs are dropped.
func setupLogging(command string) error {
	level, err := parseLevel(logLevel)
	if err != nil {
		return err
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch {
	case logFile != "":
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logCloser = f
		handler = slog.NewJSONHandler(f, opts)
	case command == showCmd.Name():
		handler = slog.NewTextHandler(io.Discard, opts)
	default:
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

// defaultToShow routes `folio <title>` to `folio show <title>`: when the
// first positional argument is not a subcommand, show is prepended.
func defaultToShow(args []string) []string {
	if firstNonFlagArg(args) == "" {
		return args
	}
	rootCmd.InitDefaultHelpCmd()
	rootCmd.InitDefaultCompletionCmd()
	if c, _, err := rootCmd.Find(args); err == nil && c != rootCmd {
		return args
	}
	return append([]string{showCmd.Name()}, args...)
}

// firstNonFlagArg returns the first argument that is not a flag.
func firstNonFlagArg(args []string) string {
	for _, a := range args {
		if !strings.HasPrefix(a, "-") {
			return a
		}
	}
	return ""
}
