package generator

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/varkel/sudoku/internal/grid"
	"github.com/varkel/sudoku/internal/rule"
	"github.com/varkel/sudoku/internal/solver"
)

// Remover blanks cells from a solved grid while keeping the solution
// unique. Cells named by the rule's derived constraints are tried first,
// each with a chance of being skipped, then the remaining cells in
// uniform random order.
type Remover struct {
	cfg Config
	rng *rand.Rand
}

// NewRemover creates a remover with the given config and random source.
func NewRemover(cfg Config, rng *rand.Rand) *Remover {
	return &Remover{cfg: cfg, rng: rng}
}

// Remove digs clues out of the puzzle in place until a stop condition
// hits: failure limit, target reached, clock expiry, or the iteration
// cap. The puzzle always remains uniquely solvable when Remove returns.
func (rm *Remover) Remove(puzzle *grid.Grid, r rule.Rule, clock *solver.Clock) {
	queue := rm.buildQueue(puzzle, r)

	var counter solver.Counter
	failures := 0
	maxIterations := 10 * puzzle.CellCount()

	for i := 0; i < maxIterations && len(queue) > 0; i++ {
		if clock.Expired() {
			break
		}
		if failures >= rm.cfg.FailureLimit {
			break
		}
		if rm.targetReached(puzzle) {
			break
		}

		pos := queue[0]
		queue = queue[1:]

		val := puzzle.Get(pos)
		if val == grid.EmptyCell {
			continue
		}
		puzzle.ClearPos(pos)

		n := counter.Count(puzzle, r, clock)
		if n != 1 || clock.TimedOut() {
			// A timed-out count proved nothing, treat it like a
			// uniqueness break and put the clue back.
			puzzle.SetForce(pos, val)
			failures++
			continue
		}
		failures = 0
	}

	logrus.WithFields(logrus.Fields{
		"variant": r.Name(),
		"clues":   puzzle.ClueCount(),
		"empty":   puzzle.EmptyCount(),
	}).Debug("removal pass finished")
}

// targetReached reports whether the pass has blanked enough cells. Hard
// has no empty-cell target; it digs until time or failures stop it.
func (rm *Remover) targetReached(puzzle *grid.Grid) bool {
	if rm.cfg.Difficulty == Hard {
		return false
	}
	return puzzle.EmptyCount() >= rm.cfg.TargetEmpty
}

// buildQueue orders candidate positions: thinned priority cells first,
// then every other filled position shuffled uniformly.
func (rm *Remover) buildQueue(puzzle *grid.Grid, r rule.Rule) []int {
	inQueue := make([]bool, puzzle.CellCount())
	var queue []int

	priority := r.PriorityCells()
	rm.rng.Shuffle(len(priority), func(i, j int) {
		priority[i], priority[j] = priority[j], priority[i]
	})
	for _, c := range priority {
		pos := puzzle.Pos(c.Row, c.Col)
		if pos < 0 || inQueue[pos] {
			continue
		}
		if rm.rng.Float64() < rm.cfg.PriorityDropProb {
			continue
		}
		inQueue[pos] = true
		queue = append(queue, pos)
	}

	rest := rm.rng.Perm(puzzle.CellCount())
	for _, pos := range rest {
		if !inQueue[pos] {
			inQueue[pos] = true
			queue = append(queue, pos)
		}
	}

	return queue
}
