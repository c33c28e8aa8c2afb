package planner

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"go.viam.com/test"

	"github.com/natesimon/sampling-based-planners/spatial"
)

func TestInformedRRTStarConfigValidation(t *testing.T) {
	valid := InformedRRTStarConfig{
		Dim: 2, MaxSamplingNum: 100, GoalSamplingRate: 0.1,
		ExpandDist: 1.0, R: 5, GoalRegionRadius: 0.5,
	}
	test.That(t, valid.Validate(), test.ShouldBeNil)

	t.Run("dim too small", func(t *testing.T) {
		cfg := valid
		cfg.Dim = 1
		test.That(t, cfg.Validate(), test.ShouldNotBeNil)
	})

	t.Run("bad R", func(t *testing.T) {
		cfg := valid
		cfg.R = 0
		test.That(t, cfg.Validate(), test.ShouldNotBeNil)
	})

	t.Run("bad goal region radius", func(t *testing.T) {
		cfg := valid
		cfg.GoalRegionRadius = -1
		test.That(t, cfg.Validate(), test.ShouldNotBeNil)
	})
}

// TestInformedRRTStarEmptySpace covers spec §8 scenario 4.
func TestInformedRRTStarEmptySpace(t *testing.T) {
	oracle := &rectOracle{space: mustSpace(t, spatial.Bound{Low: 0, High: 10}, spatial.Bound{Low: 0, High: 10})}

	cfg := InformedRRTStarConfig{
		Dim: 2, MaxSamplingNum: 2000, GoalSamplingRate: 0.1,
		ExpandDist: 1.0, R: 5, GoalRegionRadius: 0.5,
	}
	star, err := NewInformedRRTStar(cfg, rand.New(rand.NewSource(1)), nil)
	test.That(t, err, test.ShouldBeNil)

	start := spatial.NewState(1, 1)
	goal := spatial.NewState(9, 9)
	ok, err := star.Solve(context.Background(), start, goal, oracle)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, ok, test.ShouldBeTrue)

	path := star.Path()
	test.That(t, path[0], test.ShouldResemble, start)
	test.That(t, path[len(path)-1], test.ShouldResemble, goal)

	// star.Cost() is a stored bookkeeping value that can lag behind a
	// rewired ancestor (see DESIGN.md on descendant cost staleness), so
	// it only ever overestimates the true walked length, never
	// underestimates it.
	length := 0.0
	for i := 1; i < len(path); i++ {
		length += path[i-1].Distance(path[i])
	}
	test.That(t, length, test.ShouldBeLessThanOrEqualTo, star.Cost()+1e-9)

	optimal := start.Distance(goal)
	test.That(t, star.Cost(), test.ShouldBeLessThanOrEqualTo, optimal*1.1)
}

// TestInformedRRTStarCostDecreasesWithBudget covers spec §8 scenario 5.
func TestInformedRRTStarCostDecreasesWithBudget(t *testing.T) {
	oracle := &rectOracle{space: mustSpace(t, spatial.Bound{Low: 0, High: 10}, spatial.Bound{Low: 0, High: 10})}
	start := spatial.NewState(1, 1)
	goal := spatial.NewState(9, 9)
	optimal := start.Distance(goal)

	run := func(maxSamplingNum int) float64 {
		cfg := InformedRRTStarConfig{
			Dim: 2, MaxSamplingNum: maxSamplingNum, GoalSamplingRate: 0.1,
			ExpandDist: 1.0, R: 5, GoalRegionRadius: 0.5,
		}
		star, err := NewInformedRRTStar(cfg, rand.New(rand.NewSource(123)), nil)
		test.That(t, err, test.ShouldBeNil)
		ok, err := star.Solve(context.Background(), start, goal, oracle)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, ok, test.ShouldBeTrue)
		return star.Cost()
	}

	cost500 := run(500)
	cost2000 := run(2000)
	cost8000 := run(8000)

	test.That(t, cost500, test.ShouldBeGreaterThanOrEqualTo, cost2000-1e-9)
	test.That(t, cost2000, test.ShouldBeGreaterThanOrEqualTo, cost8000-1e-9)
	test.That(t, cost8000, test.ShouldBeLessThanOrEqualTo, optimal*1.1)
}

func TestInformedRRTStarNodesExposesTree(t *testing.T) {
	oracle := &rectOracle{space: mustSpace(t, spatial.Bound{Low: 0, High: 10}, spatial.Bound{Low: 0, High: 10})}
	cfg := InformedRRTStarConfig{
		Dim: 2, MaxSamplingNum: 300, GoalSamplingRate: 0.1,
		ExpandDist: 1.0, R: 5, GoalRegionRadius: 0.5,
	}
	star, err := NewInformedRRTStar(cfg, rand.New(rand.NewSource(5)), nil)
	test.That(t, err, test.ShouldBeNil)

	_, err = star.Solve(context.Background(), spatial.NewState(1, 1), spatial.NewState(9, 9), oracle)
	test.That(t, err, test.ShouldBeNil)

	nodes := star.Nodes()
	test.That(t, len(nodes), test.ShouldBeGreaterThan, 1)
	test.That(t, nodes[0].Parent, test.ShouldEqual, rootParent)

	roots := 0
	for _, n := range nodes {
		if n.Parent == rootParent {
			roots++
		}
	}
	test.That(t, roots, test.ShouldEqual, 1)

	for i := range nodes {
		hops := 0
		cur := i
		for cur != rootParent {
			cur = nodes[cur].Parent
			hops++
			test.That(t, hops, test.ShouldBeLessThanOrEqualTo, len(nodes))
		}
	}
}

func TestRNearFormula(t *testing.T) {
	r, dim := 5.0, 2
	for _, n := range []int{2, 10, 1000} {
		got := rNear(n, r, dim)
		want := r * math.Pow(math.Log(float64(n))/float64(n), 1.0/float64(dim))
		test.That(t, got, test.ShouldAlmostEqual, want, 1e-12)
	}
	test.That(t, rNear(1, r, dim), test.ShouldAlmostEqual, 0.0, 1e-12)
}
