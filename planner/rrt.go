package planner

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/natesimon/sampling-based-planners/constraint"
	"github.com/natesimon/sampling-based-planners/spatial"
)

// RRT is a Rapidly-exploring Random Tree planner: it returns the first
// feasible path found within its sampling budget (spec §1, §4.5).
type RRT struct {
	cfg    RRTConfig
	rng    *rand.Rand
	logger *zap.SugaredLogger

	tree *tree
	path []spatial.State
}

// NewRRT constructs an RRT planner. A nil rng defaults to a
// time-seeded source (the reference's behavior, which sacrifices
// cross-call determinism); pass a seeded *rand.Rand for reproducible
// runs (spec §5, §9). A nil logger is replaced with a no-op logger.
func NewRRT(cfg RRTConfig, rng *rand.Rand, logger *zap.SugaredLogger) (*RRT, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		//nolint:gosec // deterministic seeding is opt-in via the rng parameter
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RRT{cfg: cfg, rng: rng, logger: withLogger(logger)}, nil
}

// Path returns the path found by the most recent Solve call, or nil if
// that call failed or Solve has not been called.
func (p *RRT) Path() []spatial.State {
	return p.path
}

// Solve runs the RRT sampling loop described in spec §4.5 against
// oracle, between start and goal, which must both have dimension
// cfg.Dim. It returns true and records the path on success; on budget
// exhaustion it returns false, nil -- a planning outcome, not an error
// (spec §7). Solve is safe to call again with new endpoints; each call
// builds a fresh tree.
func (p *RRT) Solve(ctx context.Context, start, goal spatial.State, oracle constraint.Oracle) (bool, error) {
	p.tree = newTree(start)
	p.path = nil

	space := oracle.Space()

	for i := 0; i < p.cfg.MaxSamplingNum; i++ {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
		}

		candidate := sampleGoalBiasedUniform(space, goal, p.cfg.GoalSamplingRate, oracle, p.rng)

		nearestIdx := p.tree.nearest(candidate)
		nearest := p.tree.state(nearestIdx)

		newState, step := steer(nearest, candidate, p.cfg.ExpandDist)
		if !oracle.SegmentFree(nearest, newState) {
			continue
		}

		newIdx := p.tree.add(newState, nearestIdx, p.tree.cost(nearestIdx)+step)

		if newState.Distance(goal) <= p.cfg.ExpandDist {
			p.tree.add(goal, newIdx, p.tree.cost(newIdx)+newState.Distance(goal))
			p.path = p.tree.path(p.tree.size() - 1)
			p.logger.Debugf("rrt: solved in %d iterations, path length %d", i+1, len(p.path))
			return true, nil
		}
	}

	p.logger.Debugf("rrt: exhausted %d iterations without a solution", p.cfg.MaxSamplingNum)
	return false, nil
}
