package model

// Capacity is a resource-unit quantity: run-frames, heat-frames,
// shinecharge-frames, or ammo/energy units consumed along a path. It is a
// distinct type from plain float64 so that traversal code never confuses a
// frame count with an arbitrary float, mirroring the original's `Capacity`
// type alias.
type Capacity float64

// NumCostMetrics is the number of parallel cost lanes tracked per vertex by
// the traversal engine (§3 LocalState / §9 "Multi-metric Pareto costs").
// Each lane represents a different resource-use tradeoff a path can make;
// keeping them separate avoids committing to one before a bireachability
// check can pair the cheapest compatible pair from forward and reverse.
const NumCostMetrics = 3

// Cost metric indices, in the order DebugData and spoiler route
// reconstruction iterate them.
const (
	MetricEnergy = iota // minimize energy (and reserve) consumption
	MetricMissile       // minimize ammo (missile + super + power bomb) consumption
	MetricFull          // minimize total frame count regardless of resource mix
)
