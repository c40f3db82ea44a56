// tapcount is a counting game for young children, played in the terminal.
//
// Usage:
//
//	tapcount                 - Play the game (same as "tapcount play")
//	tapcount play            - Play the game
//	tapcount serve           - Start SSH server for remote play
//	tapcount cue             - Play the celebration sound once
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible rounds
//	--config <path>     - Path to a custom count.yaml
//	--mute              - Start with the celebration sound off
//	--log-file <path>   - Write debug logs to a file
//	--log-level <level> - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagMute     bool
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tapcount",
	Short: "Number Game - tap the button as many times as the number says",
	Long: `tapcount shows a number from 1 to 5. Tap the big button that many
times: match it and the screen fills with confetti, balloons and a little
fanfare. Tap too many and a new number appears so you can try again.

Available commands:
  play     - Play the game (default)
  serve    - Start SSH server for remote play
  cue      - Play or export the celebration sound

Examples:
  tapcount
  tapcount --mute
  tapcount serve --ssh :2222
  tapcount cue --out tada.wav`,
	RunE: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom count.yaml")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Start with the celebration sound off")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(cueCmd)
}

// newLogger builds the process logger. Output goes to --log-file when set,
// otherwise to fallback. The returned close func is never nil.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}
