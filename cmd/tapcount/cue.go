package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/gopxl/beep"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tapcount/internal/audio"
)

var flagCueOut string

// errCueMuted is returned when the sound is asked for and silenced at once.
var errCueMuted = errors.New("--mute has nothing to silence in cue; drop it, or use --out to write the sound to a file")

var cueCmd = &cobra.Command{
	Use:   "cue",
	Short: "Play the celebration sound once",
	Long: `Play the celebration fanfare through the speakers, or write it to a
WAV file with --out. Handy for checking the volume before handing the
keyboard to a child. --mute is rejected unless --out is given, since
playing the sound is all this command does.

Examples:
  tapcount cue
  TAPCOUNT_MASTER_VOLUME=40 tapcount cue
  tapcount cue --out tada.wav`,
	Args: cobra.NoArgs,
	RunE: runCue,
}

func init() {
	cueCmd.Flags().StringVar(&flagCueOut, "out", "", "Write the sound to this WAV file instead of playing it")
}

// checkCueFlags rejects flag combinations that would make cue a no-op.
func checkCueFlags(mute bool, out string) error {
	if mute && out == "" {
		return errCueMuted
	}
	return nil
}

func runCue(cmd *cobra.Command, _ []string) error {
	if err := checkCueFlags(flagMute, flagCueOut); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr, "tapcount")
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, cfgErr := audio.LoadConfig()
	if cfgErr != nil {
		logger.Warn("using default audio settings", "error", cfgErr)
	}

	if flagCueOut != "" {
		f, createErr := os.Create(flagCueOut)
		if createErr != nil {
			return fmt.Errorf("create %s: %w", flagCueOut, createErr)
		}
		if err := audio.WriteWAV(f, beep.SampleRate(cfg.SampleRate), cfg.Gain()); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close %s: %w", flagCueOut, err)
		}
		logger.Info("wrote celebration", "path", flagCueOut, "duration", audio.CelebrationDuration())
		return nil
	}

	// Playing is an explicit request, so an off switch in the env is overridden.
	cfg.Enabled = true
	player := audio.NewPlayer(cfg, logger)
	defer player.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if err := player.PlayAndWait(ctx); err != nil {
		if errors.Is(err, audio.ErrNoAudioDevice) {
			return fmt.Errorf("no sound device found; try --out to write a WAV file: %w", err)
		}
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}
	return nil
}
