package holdeq

import (
	"context"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// mcConfig holds [MonteCarlo]'s functional options.
type mcConfig struct {
	workers int
	rng     *rand.Rand
}

// Option configures [MonteCarlo].
type Option func(*mcConfig)

// WithWorkers sets the number of goroutines MonteCarlo shards trials
// across. WithWorkers(1) forces the sequential path regardless of trial
// count. The default is runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(c *mcConfig) {
		c.workers = n
	}
}

// WithRNG sets the RNG MonteCarlo draws from. In the parallel path, each
// worker gets its own independently seeded *rand.Rand derived from this
// one, so workers never contend on shared RNG state.
func WithRNG(r *rand.Rand) Option {
	return func(c *mcConfig) {
		c.rng = r
	}
}

// MonteCarlo estimates each hand's equity by random sampling instead of
// exhaustive enumeration, for hand counts or board sizes too large to
// enumerate in full. It draws a single random permutation of the
// remaining deck per outer iteration and partitions it into as many
// disjoint five-card boards as the deck allows, amortizing the shuffle
// cost across all of them — the same trick [FullEnumeration] gets for
// free from walking combinations directly.
//
// trials is an approximate target: the effective trial count is
// nboards * (trials / nboards), which may be slightly less than trials
// due to flooring.
func MonteCarlo(hands [][2]Card, trials int, opts ...Option) ([]float64, error) {
	if len(hands) == 0 {
		return nil, ErrEmptyHandList
	}
	cfg := &mcConfig{workers: runtime.NumCPU(), rng: rand.New(rand.NewSource(1))}
	for _, o := range opts {
		o(cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}

	nboards := (52 - 2*len(hands)) / 5
	if nboards < 1 {
		return nil, ErrTooFewCards
	}
	outerIters := trials / nboards
	if outerIters == 0 {
		return nil, ErrTooFewCards
	}

	dead := dealt(hands, nil)

	// Small trial counts stay sequential: the goroutine and channel
	// overhead isn't worth it below one outer iteration per worker.
	if cfg.workers == 1 || outerIters < cfg.workers {
		wins, count := monteCarloPass(hands, dead, nboards, outerIters, cfg.rng)
		return normalizeWins(wins, count)
	}
	return monteCarloParallel(hands, dead, nboards, outerIters, cfg.workers, cfg.rng)
}

// boardSizes returns a slice of n fives, the partition shape one shuffled
// deck pass is carved into.
func boardSizes(n int) []int {
	sizes := make([]int, n)
	for i := range sizes {
		sizes[i] = 5
	}
	return sizes
}

// monteCarloPass runs outerIters shuffle-and-partition passes against a
// fresh deck built from dead, accumulating fractional wins.
func monteCarloPass(hands [][2]Card, dead []Card, nboards, outerIters int, rng *rand.Rand) ([]float64, int) {
	wins := make([]float64, len(hands))
	var count int
	sizes := boardSizes(nboards)
	for t := 0; t < outerIters; t++ {
		deck := NewDeck(dead...)
		deck.Shuffle(rng.Shuffle)
		groups, err := deck.Partition(sizes...)
		if err != nil {
			continue
		}
		for _, g := range groups {
			var board [5]Card
			copy(board[:], g)
			winners := Winners(hands, board)
			share := 1 / float64(len(winners))
			for _, w := range winners {
				wins[w] += share
			}
			count++
		}
	}
	return wins, count
}

// monteCarloParallel shards outerIters across workers goroutines via
// errgroup, each with its own RNG seeded from rng so workers never share
// state.
func monteCarloParallel(hands [][2]Card, dead []Card, nboards, outerIters, workers int, rng *rand.Rand) ([]float64, error) {
	per := outerIters / workers
	remainder := outerIters % workers

	type result struct {
		wins  []float64
		count int
	}
	results := make([]result, workers)
	seeds := make([]int64, workers)
	for w := 0; w < workers; w++ {
		seeds[w] = rng.Int63()
	}

	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		w := w
		iters := per
		if w < remainder {
			iters++
		}
		g.Go(func() error {
			workerRNG := rand.New(rand.NewSource(seeds[w]))
			wins, count := monteCarloPass(hands, dead, nboards, iters, workerRNG)
			results[w] = result{wins: wins, count: count}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	wins := make([]float64, len(hands))
	var count int
	for _, r := range results {
		for i, v := range r.wins {
			wins[i] += v
		}
		count += r.count
	}
	return normalizeWins(wins, count)
}

// normalizeWins divides accumulated fractional wins by the effective
// trial count.
func normalizeWins(wins []float64, count int) ([]float64, error) {
	if count == 0 {
		return nil, ErrTooFewCards
	}
	out := make([]float64, len(wins))
	for i, w := range wins {
		out[i] = w / float64(count)
	}
	return out, nil
}
