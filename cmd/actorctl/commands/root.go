package commands

import (
	"github.com/spf13/cobra"
)

var (
	// logDir is the directory rotated log files are written to; empty
	// disables file logging.
	logDir string

	// maxLogFiles is the maximum number of rotated log files to keep.
	maxLogFiles int

	// maxLogFileSize is the maximum size, in MB, of a log file before
	// rotation.
	maxLogFileSize int

	// verbose enables debug-level logging on every log handler (console
	// and, when enabled, the rotated log file).
	verbose bool
)

// rootCmd is the base command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "actorctl",
	Short: "actorctl drives the actor runtime and resource supervisor",
	Long: `actorctl is a small demonstration CLI for the actor runtime and
resource-factory supervisor: it spawns actors, sends them messages, and
wires resources through an Overseer's factory protocol so the behavior
described in the package docs can be driven from a terminal.`,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&logDir, "log-dir", "",
		"Directory for rotated log files (default: console only)",
	)
	rootCmd.PersistentFlags().IntVar(
		&maxLogFiles, "max-log-files", 10,
		"Maximum number of rotated log files to keep",
	)
	rootCmd.PersistentFlags().IntVar(
		&maxLogFileSize, "max-log-file-size", 20,
		"Maximum log file size in MB before rotation",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false,
		"Enable debug-level logging",
	)

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(counterCmd)
	rootCmd.AddCommand(overseerCmd)
}
