package planner

import "github.com/pkg/errors"

// RRTConfig configures a single RRT Solve call (spec §6).
type RRTConfig struct {
	// Dim is the configuration-space dimension D.
	Dim int `json:"dim"`

	// MaxSamplingNum bounds the number of sampling iterations attempted
	// before Solve reports failure.
	MaxSamplingNum int `json:"max_sampling_num"`

	// GoalSamplingRate is the per-iteration probability of sampling the
	// goal outright rather than drawing a uniform candidate. Must be in [0,1].
	GoalSamplingRate float64 `json:"goal_sampling_rate"`

	// ExpandDist is the maximum steering step length.
	ExpandDist float64 `json:"expand_dist"`
}

// Validate checks RRTConfig against spec §6/§7: GoalSamplingRate outside
// [0,1] is a configuration failure (ErrInvalidArg), as are a non-positive
// Dim, MaxSamplingNum, or ExpandDist.
func (c RRTConfig) Validate() error {
	if c.Dim <= 0 {
		return errors.Wrap(ErrInvalidDim, "planner: RRTConfig.Dim must be positive")
	}
	if c.MaxSamplingNum <= 0 {
		return errors.Wrap(ErrInvalidArg, "planner: RRTConfig.MaxSamplingNum must be positive")
	}
	if c.GoalSamplingRate < 0 || c.GoalSamplingRate > 1 {
		return errors.Wrap(ErrInvalidArg, "planner: RRTConfig.GoalSamplingRate must be in [0,1]")
	}
	if c.ExpandDist <= 0 {
		return errors.Wrap(ErrInvalidArg, "planner: RRTConfig.ExpandDist must be positive")
	}
	return nil
}

// InformedRRTStarConfig configures a single Informed RRT* Solve call (spec §6).
type InformedRRTStarConfig struct {
	// Dim is the configuration-space dimension D. Must be >= 2: the
	// rotation builder requires it (spec §4.6).
	Dim int `json:"dim"`

	// MaxSamplingNum is the fixed number of sampling iterations run; unlike
	// RRT, Informed RRT* never exits early on first solution.
	MaxSamplingNum int `json:"max_sampling_num"`

	// GoalSamplingRate is the per-iteration probability of sampling the
	// goal outright. Must be in [0,1].
	GoalSamplingRate float64 `json:"goal_sampling_rate"`

	// ExpandDist is the maximum steering step length. It also doubles as
	// the radius used for final goal-node selection (spec §4.5, §9 Open
	// Questions) -- this asymmetry with GoalRegionRadius is intentional.
	ExpandDist float64 `json:"expand_dist"`

	// R is the near-radius coefficient in r_near = R * (ln|V|/|V|)^(1/D).
	R float64 `json:"r"`

	// GoalRegionRadius is the distance from goal within which a node is
	// added to the goal-region set used to compute cBest during sampling.
	GoalRegionRadius float64 `json:"goal_region_radius"`

	// LoggingInterval, if > 0, logs progress every that many iterations.
	// A zero value disables periodic progress logging.
	LoggingInterval int `json:"logging_interval"`
}

// Validate checks InformedRRTStarConfig against spec §6/§7.
func (c InformedRRTStarConfig) Validate() error {
	if c.Dim < 2 {
		return errors.Wrap(ErrInvalidDim, "planner: InformedRRTStarConfig.Dim must be >= 2")
	}
	if c.MaxSamplingNum <= 0 {
		return errors.Wrap(ErrInvalidArg, "planner: InformedRRTStarConfig.MaxSamplingNum must be positive")
	}
	if c.GoalSamplingRate < 0 || c.GoalSamplingRate > 1 {
		return errors.Wrap(ErrInvalidArg, "planner: InformedRRTStarConfig.GoalSamplingRate must be in [0,1]")
	}
	if c.ExpandDist <= 0 {
		return errors.Wrap(ErrInvalidArg, "planner: InformedRRTStarConfig.ExpandDist must be positive")
	}
	if c.R <= 0 {
		return errors.Wrap(ErrInvalidArg, "planner: InformedRRTStarConfig.R must be positive")
	}
	if c.GoalRegionRadius <= 0 {
		return errors.Wrap(ErrInvalidArg, "planner: InformedRRTStarConfig.GoalRegionRadius must be positive")
	}
	return nil
}
