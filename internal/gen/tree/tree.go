// Package tree generates a branching tree as flat segment and leaf lists.
//
// Generation is recursive: each branch spawns shorter, thinner children
// until the depth counter reaches zero, where a single leaf cluster is
// emitted instead. The whole structure is a pure function of the config
// and seed, so a season change simply regenerates the tree.
package tree

import (
	gomath "math"
	"math/rand"

	"github.com/Faultbox/skyglide/internal/config"
	"github.com/Faultbox/skyglide/pkg/math"
)

// Segment is one tapered branch piece.
type Segment struct {
	Base       math.Vec3
	Tip        math.Vec3
	BaseRadius float32
	TipRadius  float32
}

// LeafCluster is a foliage blob at a branch tip. Frequency and Phase
// drive per-cluster sway animation at render time.
type LeafCluster struct {
	Position  math.Vec3
	Size      float32
	Frequency float32
	Phase     float32
}

// Tree holds the generated structure as flat lists.
type Tree struct {
	Segments []Segment
	Leaves   []LeafCluster
}

type generator struct {
	cfg  config.TreeConfig
	rng  *rand.Rand
	tree *Tree
}

// Generate builds a tree rooted at pos. The same config and seed always
// produce the same tree.
func Generate(cfg config.TreeConfig, pos math.Vec3, seed int64) *Tree {
	g := &generator{
		cfg:  cfg,
		rng:  rand.New(rand.NewSource(seed)),
		tree: &Tree{},
	}
	g.grow(pos, math.Vec3{Y: 1}, cfg.TrunkLength, cfg.TrunkRadius, cfg.MaxDepth)
	return g.tree
}

// grow emits one branch segment and recurses into its children. At depth
// zero it emits a single leaf cluster instead of a segment.
func (g *generator) grow(base, dir math.Vec3, length, radius float32, depth int) {
	if depth <= 0 {
		g.tree.Leaves = append(g.tree.Leaves, LeafCluster{
			Position:  base,
			Size:      g.cfg.LeafSize * (0.8 + g.rng.Float32()*0.4),
			Frequency: 0.8 + g.rng.Float32()*0.8,
			Phase:     g.rng.Float32() * 2 * gomath.Pi,
		})
		return
	}

	tip := base.Add(dir.Scale(length))
	g.tree.Segments = append(g.tree.Segments, Segment{
		Base:       base,
		Tip:        tip,
		BaseRadius: radius,
		TipRadius:  radius * g.cfg.ShrinkFactor,
	})

	children := 2
	if g.rng.Float32() < g.cfg.BranchChance {
		children++
	}

	for i := 0; i < children; i++ {
		childDir := g.perturb(dir)
		g.grow(tip, childDir, length*g.cfg.ShrinkFactor, radius*g.cfg.ShrinkFactor, depth-1)
	}
}

// perturb rotates dir by bounded random angles around two axes
// perpendicular to it, then applies the constant wind lean and
// renormalizes.
func (g *generator) perturb(dir math.Vec3) math.Vec3 {
	axis1, axis2 := perpendicularAxes(dir)

	a1 := (g.rng.Float32()*2 - 1) * g.cfg.SpreadAngle
	a2 := (g.rng.Float32()*2 - 1) * g.cfg.SpreadAngle

	q := math.QuatFromAxisAngle(axis2, a2).Mul(math.QuatFromAxisAngle(axis1, a1))
	out := q.Rotate(dir)

	out = out.Add(math.Vec3{X: g.cfg.WindLean})
	return out.Normalize()
}

// perpendicularAxes returns two unit vectors orthogonal to dir and to
// each other.
func perpendicularAxes(dir math.Vec3) (math.Vec3, math.Vec3) {
	ref := math.Vec3{Y: 1}
	if dir.Y > 0.99 || dir.Y < -0.99 {
		ref = math.Vec3{X: 1}
	}
	axis1 := dir.Cross(ref).Normalize()
	axis2 := dir.Cross(axis1).Normalize()
	return axis1, axis2
}
