// internal/rollout/rollout.go
package rollout

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/google/uuid"
	engine "github.com/jason-s-yu/ninetynine/engine"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ErrNoPolicy is returned when Options.NewPolicy is nil.
var ErrNoPolicy = errors.New("rollout: no policy factory")

// Options configures a batch of games.
type Options struct {
	Games     int
	Workers   int    // 0 = runtime.NumCPU()
	Seed      uint64 // master seed; 0 = ambient randomness
	MaxSteps  int    // per-game placement cap; 0 = unlimited
	Rules     engine.Rules
	NewPolicy PolicyFactory
	Logger    *logrus.Logger // nil = logrus standard logger
}

// EpisodeResult is the outcome of one game.
type EpisodeResult struct {
	ID        uuid.UUID     `json:"id"`
	Index     int           `json:"index"`
	Seed      uint64        `json:"seed"`
	Status    engine.Status `json:"status"`
	Score     int           `json:"score"`
	Moves     int           `json:"moves"`
	Truncated bool          `json:"truncated"` // stopped by MaxSteps
}

// Stats aggregates a batch.
type Stats struct {
	Seed      uint64          `json:"seed"`
	Games     int             `json:"games"`
	Cleared   int             `json:"cleared"`
	Stuck     int             `json:"stuck"`
	Truncated int             `json:"truncated"`
	MeanScore float64         `json:"meanScore"`
	MeanMoves float64         `json:"meanMoves"`
	MaxScore  int             `json:"maxScore"`
	Elapsed   time.Duration   `json:"elapsed"`
	Episodes  []EpisodeResult `json:"episodes"`
}

// gameJob is a single simulation job.
type gameJob struct {
	index int
	seed  uint64
}

// GameSeeds derives n nonzero per-game seeds from master using splitmix64.
// The same master always yields the same sequence.
func GameSeeds(master uint64, n int) []uint64 {
	seeds := make([]uint64, n)
	x := master
	for i := range seeds {
		x += 0x9E3779B97F4A7C15
		z := x
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		z ^= z >> 31
		if z == 0 {
			z = 1
		}
		seeds[i] = z
	}
	return seeds
}

// Run plays opts.Games games in parallel and aggregates the results. Results
// do not depend on the worker count. The first policy error or a cancelled
// ctx stops the batch.
func Run(ctx context.Context, opts Options) (Stats, error) {
	if opts.NewPolicy == nil {
		return Stats{}, ErrNoPolicy
	}
	if opts.Games < 0 {
		return Stats{}, fmt.Errorf("rollout: games = %d", opts.Games)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > opts.Games && opts.Games > 0 {
		workers = opts.Games
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	for opts.Seed == 0 {
		opts.Seed = rand.Uint64()
	}

	log := logger.WithFields(logrus.Fields{"seed": opts.Seed, "games": opts.Games, "workers": workers})
	log.Info("Rollout starting.")
	start := time.Now()

	seeds := GameSeeds(opts.Seed, opts.Games)
	results := make([]EpisodeResult, opts.Games)
	jobs := make(chan gameJob)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer close(jobs)
		for i, s := range seeds {
			select {
			case jobs <- gameJob{index: i, seed: s}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for w := 0; w < workers; w++ {
		eg.Go(func() error {
			for job := range jobs {
				res, err := playEpisode(ctx, job, opts)
				if err != nil {
					return err
				}
				results[job.index] = res
				log.WithFields(logrus.Fields{
					"episode": res.ID,
					"score":   res.Score,
					"status":  res.Status.String(),
				}).Debug("Episode finished.")
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.WithError(err).Error("Rollout failed.")
		return Stats{}, err
	}

	stats := Aggregate(results)
	stats.Seed = opts.Seed
	stats.Elapsed = time.Since(start)
	log.WithFields(logrus.Fields{
		"cleared":    stats.Cleared,
		"mean_score": stats.MeanScore,
		"elapsed":    stats.Elapsed,
	}).Info("Rollout finished.")
	return stats, nil
}

// playEpisode plays one game to the end or to MaxSteps.
func playEpisode(ctx context.Context, job gameJob, opts Options) (EpisodeResult, error) {
	g := engine.NewGame(job.seed, opts.Rules)
	policy := opts.NewPolicy(g.StateHash())

	res := EpisodeResult{ID: uuid.New(), Index: job.index, Seed: job.seed}
	for steps := 0; ; steps++ {
		legal := g.LegalActionsList()
		if len(legal) == 0 {
			break
		}
		if opts.MaxSteps > 0 && steps >= opts.MaxSteps {
			res.Truncated = true
			break
		}
		if steps%16 == 0 {
			if err := ctx.Err(); err != nil {
				return EpisodeResult{}, err
			}
		}

		a := policy.Choose(&g, legal)
		if _, err := g.ApplyAction(a.Index()); err != nil {
			return EpisodeResult{}, fmt.Errorf("game %d (seed %d) step %d: %w", job.index, job.seed, steps, err)
		}
	}

	res.Status = g.Status()
	res.Score = g.Score
	res.Moves = g.Moves
	return res, nil
}

// Aggregate computes batch statistics from per-game results.
func Aggregate(results []EpisodeResult) Stats {
	stats := Stats{Games: len(results), Episodes: results}
	if len(results) == 0 {
		return stats
	}
	var scoreSum, moveSum int
	for _, r := range results {
		scoreSum += r.Score
		moveSum += r.Moves
		if r.Score > stats.MaxScore {
			stats.MaxScore = r.Score
		}
		switch {
		case r.Truncated:
			stats.Truncated++
		case r.Status == engine.StatusCleared:
			stats.Cleared++
		case r.Status == engine.StatusStuck:
			stats.Stuck++
		}
	}
	stats.MeanScore = float64(scoreSum) / float64(len(results))
	stats.MeanMoves = float64(moveSum) / float64(len(results))
	return stats
}
