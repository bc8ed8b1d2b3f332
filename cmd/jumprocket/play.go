package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sheacoding/jumprocket/internal/audio"
	"github.com/sheacoding/jumprocket/internal/game"
	"github.com/sheacoding/jumprocket/internal/motion"
	"github.com/sheacoding/jumprocket/internal/platform/tui"
	"github.com/sheacoding/jumprocket/internal/storage"
)

var (
	flagDifficulty string
	flagTrace      string
	flagSeed       int64
	flagNoSound    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a game session.

Controls:
  Space/Up   - Jump (two quick jumps from the idle screen start a game)
  Enter      - Short press: start, cycle difficulty, pause/resume
  R/Esc      - Long press: confirm difficulty, reset, confirm reset
  Q/Ctrl+C   - Quit

Without a trace file, jumps are simulated: each Space press runs a
jump-shaped burst through the same detector a real accelerometer would
feed. With --trace, a recorded "x y z" sample file drives the detector
instead and the keyboard jump key is inert.

Examples:
  jumprocket play
  jumprocket play --difficulty hard
  jumprocket play --trace workout.txt
  jumprocket play --seed 42 --no-sound`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Starting difficulty: easy, normal, hard")
	playCmd.Flags().StringVar(&flagTrace, "trace", "", "Path to a recorded accelerometer trace")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Simulator noise seed (0 = time-based)")
	playCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Disable sound effects")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := newLogger()
	cfg := loadSystem(logger)

	if flagDifficulty != "" {
		cfg.DefaultDifficulty = flagDifficulty
		cfg.Clamp()
	}
	if flagNoSound {
		cfg.SoundEnabled = false
	}

	// The layout needs a minimum canvas; catch hopeless terminals before
	// entering the alt screen.
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && (w < 40 || h < 16) {
		fmt.Fprintf(os.Stderr, "Terminal too small (%dx%d), need at least 40x16\n", w, h)
		os.Exit(1)
	}

	// Sensor source: recorded trace or interactive simulator.
	var (
		source tui.SampleSource
		sim    *motion.Simulator
	)
	if flagTrace != "" {
		samples, err := motion.ReadTrace(flagTrace)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading trace: %v\n", err)
			os.Exit(1)
		}
		source = tui.NewTraceSource(motion.NewTracePlayer(samples))
	} else {
		sim = motion.NewSimulator(flagSeed)
		source = sim
	}

	// Session storage. The game runs fine without it.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open session database: %v\n", err)
		store = nil
	}

	var recorder game.Recorder
	if store != nil {
		recorder = storage.NewRecorder(store, cfg, logger)
	}

	var sounds tui.SoundSink
	if cfg.SoundEnabled {
		player := audio.NewPlayer(cfg, logger)
		//nolint:errcheck // Init failure downgrades to silent play
		player.Init()
		defer player.Close()
		sounds = player
	}

	machine := game.NewMachine(cfg, recorder, logger)
	feed := tui.NewSensorFeed(source, logger)

	model := tui.NewModel(machine, feed, sim, sounds)
	if store != nil {
		if history, err := store.LoadHistory(); err == nil && history.TotalGames > 0 {
			model = model.WithRecommendation(game.RecommendDifficulty(history.TotalGames, history.BestScore))
		}
	}

	runErr := tui.Run(model)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
