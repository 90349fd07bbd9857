package zeitplan

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MaxHalford/eaopt"
	"golang.org/x/sync/errgroup"
)

// raceWorkers implements C7: it runs the deterministic solver (the
// "primary" worker, using ms's existing most-constrained-first order)
// alongside cfg.shuffleWorkers additional workers searching the same
// problem in a randomly permuted order, and returns whichever concludes
// first with a definitive answer.
//
// Semantics (spec.md §4.7, §5): a success from any worker wins
// immediately. A NoSolution from any worker is authoritative, since
// feasibility does not depend on search order, and also wins immediately.
// A NoSolutionWithinBudget from a shuffle worker carries no information
// about the other orderings and is discarded. The primary's own
// NoSolutionWithinBudget is not discarded outright - it is the fallback
// answer if no worker ever produces a success or a NoSolution.
func raceWorkers(ms []solverMeeting, cfg *config) (solveResult, error) {
	var stop atomic.Bool

	var mu sync.Mutex
	var winner solveResult
	var winnerErr error
	haveWinner := false

	recordWinner := func(res solveResult, err error) {
		mu.Lock()
		defer mu.Unlock()
		if !haveWinner {
			winner, winnerErr, haveWinner = res, err, true
		}
		stop.Store(true)
	}

	var primaryResult solveResult
	var primaryErr error

	g, _ := errgroup.WithContext(context.Background())

	g.Go(func() error {
		res, err := solve(ms, cfg.budget, stop.Load)
		primaryResult, primaryErr = res, err
		switch err.(type) {
		case nil:
			recordWinner(res, nil)
		case *NoSolution:
			recordWinner(res, err)
		}
		return nil
	})

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for w := 0; w < cfg.shuffleWorkers; w++ {
		shuffled := shuffleOrder(ms, w, rng)
		g.Go(func() error {
			res, err := solve(shuffled, cfg.budget, stop.Load)
			switch err.(type) {
			case nil:
				recordWinner(res, nil)
			case *NoSolution:
				recordWinner(res, err)
			}
			// NoSolutionWithinBudget and interrupted from a shuffle
			// worker carry no information the primary doesn't already
			// have about this instance - discard both.
			return nil
		})
	}

	_ = g.Wait()

	if haveWinner {
		return winner, winnerErr
	}

	// No worker reached a definitive answer; the primary's own
	// conclusion stands unless it was itself preempted mid-search (which
	// cannot happen here since haveWinner is false - nothing raised
	// stop).
	return primaryResult, primaryErr
}

// shuffleOrder builds worker w's copy of ms in a randomly permuted order,
// alternating with the fully-reversed order for broader exploration, per
// spec.md §4.7. The permutation itself is produced by
// eaopt.MutPermuteInt, the same mutation operator the teacher library
// uses to perturb a genome's gene order - repurposed here to generate one
// worker's search order instead of one generation's mutation.
func shuffleOrder(ms []solverMeeting, w int, rng *rand.Rand) []solverMeeting {
	order := make([]int, len(ms))
	for i := range order {
		order[i] = i
	}

	if w%2 == 1 {
		for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	} else {
		eaopt.MutPermuteInt(order, uint(len(order)), rng)
	}

	out := make([]solverMeeting, len(ms))
	for i, idx := range order {
		out[i] = ms[idx]
	}
	return out
}
