// Package main provides the ninetynine CLI: manual play on the terminal and
// batched random-policy rollouts.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	engine "github.com/jason-s-yu/ninetynine/engine"
	"github.com/jason-s-yu/ninetynine/internal/config"
	"github.com/jason-s-yu/ninetynine/internal/game"
	"github.com/jason-s-yu/ninetynine/internal/rollout"
	"github.com/sirupsen/logrus"
)

// Version information (set by build flags)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// CLI flags. Zero values defer to the environment / .env.
var (
	mode        string
	envFile     string
	seed        uint64
	games       int
	workers     int
	maxSteps    int
	logLevel    string
	logFormat   string
	allSlots    bool
	showBoard   bool
	jsonOut     bool
	showVersion bool
)

func init() {
	flag.StringVar(&mode, "mode", "play", "Run mode: play (interactive) or simulate (batched rollouts)")
	flag.StringVar(&envFile, "env", "", "Load settings from this file instead of .env")
	flag.Uint64Var(&seed, "seed", 0, "Deal seed; for simulate, the master seed (0 = from env or random)")
	flag.IntVar(&games, "games", 0, "Number of games to simulate (0 = from env)")
	flag.IntVar(&workers, "workers", 0, "Number of worker goroutines (0 = from env or CPU count)")
	flag.IntVar(&maxSteps, "max-steps", 0, "Per-game placement cap (0 = from env)")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&logFormat, "log-format", "", "Log format (text, json)")
	flag.BoolVar(&allSlots, "all-slots", false, "Enumerate all 8 hand slots instead of 0-6")
	flag.BoolVar(&showBoard, "board", false, "Print the layout before every prompt in play mode")
	flag.BoolVar(&jsonOut, "json", false, "Print simulate stats as JSON")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Printf("ninetynine %s (built %s)\n", Version, BuildTime)
		os.Exit(0)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(2)
	}

	rules := engine.DefaultRules()
	if allSlots {
		rules.ActionSlots = engine.HandSize
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch mode {
	case "play":
		err = runPlay(ctx, cfg, rules, logger)
	case "simulate":
		err = runSimulate(ctx, cfg, rules, logger)
	default:
		err = fmt.Errorf("unknown mode %q", mode)
	}
	if err != nil {
		logger.WithError(err).Error("ninetynine failed")
		os.Exit(1)
	}
}

// loadConfig reads env settings and applies explicit flags on top.
func loadConfig() (config.Config, error) {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return cfg, err
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if games != 0 {
		cfg.Games = games
	}
	if workers != 0 {
		cfg.Workers = workers
	}
	if maxSteps != 0 {
		cfg.MaxSteps = maxSteps
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}
	return cfg, cfg.Validate()
}

func runPlay(ctx context.Context, cfg config.Config, rules engine.Rules, logger *logrus.Logger) error {
	s := game.NewSession(cfg.Seed, rules, logger)
	var opts []game.LoopOption
	if showBoard {
		opts = append(opts, game.ShowBoard())
	}
	score, err := game.RunTextLoop(ctx, s, os.Stdin, os.Stdout, opts...)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{"game_id": s.ID, "score": score}).Info("Session closed.")
	return nil
}

func runSimulate(ctx context.Context, cfg config.Config, rules engine.Rules, logger *logrus.Logger) error {
	stats, err := rollout.Run(ctx, rollout.Options{
		Games:     cfg.Games,
		Workers:   cfg.EffectiveWorkers(),
		Seed:      cfg.Seed,
		MaxSteps:  cfg.MaxSteps,
		Rules:     rules,
		NewPolicy: rollout.UniformFactory,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}
	fmt.Printf("games:      %d (seed %d)\n", stats.Games, stats.Seed)
	fmt.Printf("cleared:    %d\n", stats.Cleared)
	fmt.Printf("stuck:      %d\n", stats.Stuck)
	fmt.Printf("truncated:  %d\n", stats.Truncated)
	fmt.Printf("mean score: %.2f (max %d of %d)\n", stats.MeanScore, stats.MaxScore, engine.MaxScore)
	fmt.Printf("mean moves: %.2f\n", stats.MeanMoves)
	fmt.Printf("elapsed:    %s\n", stats.Elapsed)
	return nil
}
