package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tapcount/internal/audio"
	"github.com/vovakirdan/tapcount/internal/config"
	"github.com/vovakirdan/tapcount/internal/core"
	"github.com/vovakirdan/tapcount/internal/games/count"
	"github.com/vovakirdan/tapcount/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the counting game",
	Long: `Start playing the counting game in this terminal.

Controls:
  Space/Enter/T - Tap the button
  M             - Sound on/off
  Q/Ctrl+C      - Quit

Configuration:
  Game tuning is read from --config, ~/.tapcount/count.yaml or
  ./configs/count.yaml, falling back to the built-in defaults.
  Sound is controlled by TAPCOUNT_AUDIO_ENABLED, TAPCOUNT_MASTER_VOLUME
  (0-100) and TAPCOUNT_SAMPLE_RATE.

Examples:
  tapcount play
  tapcount play --seed 42
  tapcount play --config ./count.yaml --log-file tapcount.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The alt screen owns stdout, so logs go nowhere unless --log-file is set.
	logger, closeLog, err := newLogger(io.Discard, "tapcount")
	if err != nil {
		return err
	}
	defer closeLog()

	countCfg, err := config.LoadCount(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	rc := core.DefaultConfig()
	rc.TickRate = flagFPS
	rc.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	audioCfg, audioErr := audio.LoadConfig()
	if audioErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; using default sound settings\n", audioErr)
		logger.Warn("using default audio settings", "error", audioErr)
	}

	player := audio.NewPlayer(audioCfg, logger)
	defer player.Close()
	if flagMute {
		player.ToggleMute()
	}

	game := count.New(countCfg, player)

	logger.Info("starting game",
		"range_min", countCfg.Range.Min,
		"range_max", countCfg.Range.Max,
		"audio", player.Available(),
	)

	model := tui.NewModel(game, rc, player, logger).WithSoundOn(!player.IsMuted())
	if err := tui.RunModel(model); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
