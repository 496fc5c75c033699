package holdeq

import (
	"context"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ehsConfig holds [EHS]'s functional options.
type ehsConfig struct {
	boardIters int
	oppIters   int
	workers    int
	rng        *rand.Rand
}

// EHSOption configures [EHS].
type EHSOption func(*ehsConfig)

// WithBoardIters sets the number of random board completions sampled.
// Default 1000.
func WithBoardIters(n int) EHSOption {
	return func(c *ehsConfig) { c.boardIters = n }
}

// WithOppIters sets the number of random opponent hole-card pairs sampled
// per board. Default 100.
func WithOppIters(n int) EHSOption {
	return func(c *ehsConfig) { c.oppIters = n }
}

// WithEHSWorkers sets the number of goroutines EHS shards board iterations
// across. The default is runtime.NumCPU(); 1 forces the sequential path.
func WithEHSWorkers(n int) EHSOption {
	return func(c *ehsConfig) { c.workers = n }
}

// WithEHSRNG sets the RNG EHS draws from; each worker in the parallel path
// gets its own independently seeded *rand.Rand derived from it.
func WithEHSRNG(r *rand.Rand) EHSOption {
	return func(c *ehsConfig) { c.rng = r }
}

// EHS estimates a hand's expected strength against a random, unknown
// opponent — its average equity, and the average of the squared per-board
// equity (the second moment) — by sampling random completions of board
// ([WithBoardIters]) and, for each, random opponent hole-card pairs
// ([WithOppIters]).
func EHS(hand [2]Card, board []Card, opts ...EHSOption) (mean, mean2 float64) {
	cfg := &ehsConfig{
		boardIters: 1000,
		oppIters:   100,
		workers:    runtime.NumCPU(),
		rng:        rand.New(rand.NewSource(1)),
	}
	for _, o := range opts {
		o(cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}
	if cfg.boardIters <= 0 || cfg.oppIters <= 0 {
		return 0, 0
	}

	if cfg.workers == 1 || cfg.boardIters < cfg.workers {
		sum, sum2 := ehsPass(hand, board, cfg.boardIters, cfg.oppIters, cfg.rng)
		n := float64(cfg.boardIters)
		return sum / n, sum2 / n
	}
	return ehsParallel(hand, board, cfg)
}

// ehsPass runs n board-completion samples, each followed by oppIters
// opponent samples, and returns the sums (not yet averaged) of the
// per-board equity and its square.
func ehsPass(hand [2]Card, board []Card, n, oppIters int, rng *rand.Rand) (sum, sum2 float64) {
	needed := 5 - len(board)
	for i := 0; i < n; i++ {
		boardDeck := NewDeck(dealt([][2]Card{hand}, board)...)
		boardDeck.Shuffle(rng.Shuffle)
		completion, err := boardDeck.Draw(needed)
		if err != nil {
			continue
		}
		full := make([]Card, 0, 5)
		full = append(full, board...)
		full = append(full, completion...)

		oppDead := dealt([][2]Card{hand}, full)
		var wins, ties int
		var board5 [5]Card
		copy(board5[:], full)
		for t := 0; t < oppIters; t++ {
			// Each opponent draw samples uniformly from the whole
			// remaining pool, independent of earlier draws in this
			// loop, matching the original's random.sample semantics.
			oppDeck := NewDeck(oppDead...)
			oppDeck.Shuffle(rng.Shuffle)
			oppHole, err := oppDeck.Draw(2)
			if err != nil {
				continue
			}
			var opp [2]Card
			copy(opp[:], oppHole)
			switch Holdem2p(hand, opp, board5) {
			case 0:
				wins++
			case 2:
				ties++
			}
		}
		eq := (float64(wins) + 0.5*float64(ties)) / float64(oppIters)
		sum += eq
		sum2 += eq * eq
	}
	return sum, sum2
}

// ehsParallel shards boardIters across workers goroutines via errgroup,
// each with its own RNG seeded from cfg.rng.
func ehsParallel(hand [2]Card, board []Card, cfg *ehsConfig) (mean, mean2 float64) {
	per := cfg.boardIters / cfg.workers
	remainder := cfg.boardIters % cfg.workers

	sums := make([]float64, cfg.workers)
	sums2 := make([]float64, cfg.workers)
	seeds := make([]int64, cfg.workers)
	for w := 0; w < cfg.workers; w++ {
		seeds[w] = cfg.rng.Int63()
	}

	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < cfg.workers; w++ {
		w := w
		iters := per
		if w < remainder {
			iters++
		}
		g.Go(func() error {
			workerRNG := rand.New(rand.NewSource(seeds[w]))
			sums[w], sums2[w] = ehsPass(hand, board, iters, cfg.oppIters, workerRNG)
			return nil
		})
	}
	_ = g.Wait()

	var sum, sum2 float64
	for i := range sums {
		sum += sums[i]
		sum2 += sums2[i]
	}
	n := float64(cfg.boardIters)
	return sum / n, sum2 / n
}
