// Package stats records per-phase timing and interaction counters for
// a single simulation step, exposed as a read-only snapshot after
// step() the way gotetra's Manager logs runtime.MemStats after a
// render pass.
package stats

import "time"

// Snapshot is the set of measurements StatsRecorder exposes after a
// step: wall-clock duration of each phase, interaction counts, arena
// high-water mark, and the deepest tree level reached.
type Snapshot struct {
	BoundsFitDuration time.Duration
	BuildDuration     time.Duration
	AggregateDuration time.Duration
	ForceDuration     time.Duration
	IntegrateDuration time.Duration

	ParticleCellInteractions int64
	DirectPairInteractions   int64
	CoLocatedOverflows       int

	ArenaHighWater int
	MaxTreeDepth   int
}

// Total returns the sum of every recorded phase duration.
func (s Snapshot) Total() time.Duration {
	return s.BoundsFitDuration + s.BuildDuration + s.AggregateDuration +
		s.ForceDuration + s.IntegrateDuration
}

// Recorder accumulates a single step's Snapshot. The public facade
// calls Reset at the start of each step() and reads Snapshot() after.
type Recorder struct {
	current Snapshot
}

// Reset clears the recorder for a new step.
func (r *Recorder) Reset() {
	r.current = Snapshot{}
}

// Time runs fn, recording its wall-clock duration into *into.
func (r *Recorder) Time(into *time.Duration, fn func()) {
	start := time.Now()
	fn()
	*into = time.Since(start)
}

// TimeBoundsFit runs fn, recording its duration as the step's bounds-fit phase.
func (r *Recorder) TimeBoundsFit(fn func()) { r.Time(&r.current.BoundsFitDuration, fn) }

// TimeBuild runs fn, recording its duration as the step's tree-build phase.
func (r *Recorder) TimeBuild(fn func()) { r.Time(&r.current.BuildDuration, fn) }

// TimeAggregate runs fn, recording its duration as the step's mass-aggregation phase.
func (r *Recorder) TimeAggregate(fn func()) { r.Time(&r.current.AggregateDuration, fn) }

// TimeForce runs fn, recording its duration as the step's force-evaluation phase.
func (r *Recorder) TimeForce(fn func()) { r.Time(&r.current.ForceDuration, fn) }

// TimeIntegrate runs fn, recording its duration as the step's integration phase.
func (r *Recorder) TimeIntegrate(fn func()) { r.Time(&r.current.IntegrateDuration, fn) }

// SetInteractionCounts records the force-evaluation interaction
// counters for the step.
func (r *Recorder) SetInteractionCounts(particleCell, directPair int64) {
	r.current.ParticleCellInteractions = particleCell
	r.current.DirectPairInteractions = directPair
}

// SetTreeShape records the arena high-water mark, the deepest level
// reached, and the number of co-located-overflow warnings raised
// during this step's tree build.
func (r *Recorder) SetTreeShape(arenaHighWater, maxDepth, coLocatedOverflows int) {
	r.current.ArenaHighWater = arenaHighWater
	r.current.MaxTreeDepth = maxDepth
	r.current.CoLocatedOverflows = coLocatedOverflows
}

// Snapshot returns the current step's recorded measurements.
func (r *Recorder) Snapshot() Snapshot {
	return r.current
}
