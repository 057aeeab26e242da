package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cwbudde/utilityprog/internal/config"
	"github.com/cwbudde/utilityprog/internal/fit"
)

var (
	configPath string
	logLevel   string
	seed       int64
	tries      int
	depth      int
	maxRounds  int
	patience   int
	traceDir   string
	showStats  bool

	cfg    config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "utilityprog",
	Short: "Composable utility programming with reversible local search",
	Long: `utilityprog optimizes objects by declaring what makes them good (utilities),
how to create them (generators) and how to edit them reversibly (modifiers).
A multi-restart hill climber applies edits, keeps the best sequence found and
repeats until the object stops changing.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		applyFlags(cmd)
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid flags: %w", err)
		}

		// Setup logger
		var level slog.Level
		switch cfg.Log.Level {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		default:
			level = slog.LevelInfo
		}

		opts := &slog.HandlerOptions{Level: level}
		handler := slog.NewJSONHandler(os.Stderr, opts)
		logger = slog.New(handler)
		slog.SetDefault(logger)
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "YAML config file")
	flags.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flags.Int64Var(&seed, "seed", 0, "Random seed (0 = seed from clock)")
	flags.IntVar(&tries, "tries", 1000, "Restart attempts per optimizer call")
	flags.IntVar(&depth, "depth", 20, "Edits per attempt before backtracking")
	flags.IntVar(&maxRounds, "max-rounds", 0, "Maximum optimizer calls (0 = until fixed point)")
	flags.IntVar(&patience, "patience", 0, "Stop after N rounds without significant gain (0 = disabled)")
	flags.StringVar(&traceDir, "trace-dir", "", "Write a JSONL progress trace into this directory")
	flags.BoolVar(&showStats, "stats", false, "Print search statistics when done")
}

// applyFlags overrides config values with explicitly set flags.
func applyFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("tries") {
		cfg.Search.Tries = tries
	}
	if flags.Changed("depth") {
		cfg.Search.Depth = depth
	}
	if flags.Changed("max-rounds") {
		cfg.Drive.MaxRounds = maxRounds
	}
	if flags.Changed("patience") {
		cfg.Drive.Patience = patience
	}
}

func newRand() *rand.Rand {
	s := uint64(cfg.Seed)
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	slog.Debug("Random source initialized", "seed", s)
	return rand.New(rand.NewPCG(s, s>>1|1))
}

func driveConfig() fit.DriveConfig {
	conv := fit.DisabledConvergenceConfig()
	if cfg.Drive.Patience > 0 {
		conv = fit.ConvergenceConfig{
			Enabled:   true,
			Patience:  cfg.Drive.Patience,
			Threshold: cfg.Drive.Threshold,
		}
	}
	return fit.DriveConfig{
		MaxRounds:   cfg.Drive.MaxRounds,
		Convergence: conv,
	}
}
