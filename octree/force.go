package octree

import (
	"math"
	"sync"

	"github.com/phil-mansfield/barnes-hut/particle"
)

// ForceParams bundles the physical constants ForceEvaluator needs: the
// gravitational/Coulomb constant G, the softening ε² that keeps the
// force law non-singular at vanishing separation, and the opening
// angle θ governing the multipole acceptance criterion.
type ForceParams struct {
	G        float64
	Epsilon2 float64
	Theta    float64
}

// ForceStats counts the interaction kinds ForceEvaluator performed in
// one call, surfaced through stats.Snapshot.
type ForceStats struct {
	ParticleCellInteractions int64
	DirectPairInteractions   int64
}

// EvaluateForces computes the Barnes-Hut approximation to the force on
// every particle, writing into each particle's Force field. Callers
// must reset Force to zero first (particle.ResetForces); on entry
// ForceEvaluator assumes this has already happened.
//
// This is the hot path and is parallel over particles: each goroutine
// owns a disjoint index range and writes only to its own particles'
// Force accumulators, so no locks or atomics are needed. workers <= 1
// runs sequentially.
func EvaluateForces(
	arena *Arena, root NodeRef, particles []particle.Particle,
	params ForceParams, workers int,
) ForceStats {
	n := len(particles)
	if n == 0 {
		return ForceStats{}
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	partials := make([]ForceStats, workers)
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= n {
			break
		}
		hi := lo + chunk
		if hi > n {
			hi = n
		}

		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			var local ForceStats
			for i := lo; i < hi; i++ {
				c, d := forceOnParticle(arena, root, particles, i, params)
				local.ParticleCellInteractions += c
				local.DirectPairInteractions += d
			}
			partials[w] = local
		}(w, lo, hi)
	}
	wg.Wait()

	var total ForceStats
	for _, p := range partials {
		total.ParticleCellInteractions += p.ParticleCellInteractions
		total.DirectPairInteractions += p.DirectPairInteractions
	}
	return total
}

// forceOnParticle visits every non-empty child of root for particle
// idx, the per-particle traversal entry point for force accumulation.
func forceOnParticle(
	arena *Arena, root NodeRef, particles []particle.Particle,
	idx int, params ForceParams,
) (cellCount, directCount int64) {
	p := &particles[idx]
	rootNode := arena.Node(root)
	for _, childRef := range rootNode.Children {
		if childRef == NoNode {
			continue
		}
		c, d := visitNode(arena, childRef, particles, p, params)
		cellCount += c
		directCount += d
	}
	return
}

// visitNode applies the multipole acceptance criterion at node ref: if
// satisfied, the node is treated as a single mass (particle-cell
// interaction); otherwise the traversal descends into an Internal
// node's children or enumerates an exhausted Leaf's bucket directly.
func visitNode(
	arena *Arena, ref NodeRef, particles []particle.Particle,
	p *particle.Particle, params ForceParams,
) (cellCount, directCount int64) {
	n := arena.Node(ref)

	r2 := p.Position.Dist2(n.MassCenter)
	r := math.Sqrt(r2 + params.Epsilon2)

	if n.Size/r <= params.Theta {
		applyCellForce(p, n, params, r2)
		return 1, 0
	}

	switch n.Kind {
	case Internal:
		for _, childRef := range n.Children {
			if childRef == NoNode {
				continue
			}
			c, d := visitNode(arena, childRef, particles, p, params)
			cellCount += c
			directCount += d
		}
		return

	case Leaf:
		for _, qIdx := range n.LeafBucket {
			q := &particles[qIdx]
			if q.ID == p.ID {
				continue
			}
			applyPairForce(p, q, params)
			directCount++
		}
		return

	default:
		return
	}
}

// applyCellForce adds the particle-cell contribution of cell n to p's
// force accumulator: F_p += -G * m_p * m_n / (r^2 + ε^2)^{3/2} * (x_p - x_n).
func applyCellForce(p *particle.Particle, n *Node, params ForceParams, r2 float64) {
	denom := math.Pow(r2+params.Epsilon2, 1.5)
	diff := p.Position.Sub(n.MassCenter)
	coeff := -params.G * p.Mass * n.Mass / denom
	p.Force.AddAt(diff.Scale(coeff), &p.Force)
}

// applyPairForce adds the direct pairwise force of q on p to p's force
// accumulator. Forces are not symmetrised: this updates only p, never
// crediting q with the equal-and-opposite reaction, which is what lets
// each particle's traversal run independently in parallel.
func applyPairForce(p, q *particle.Particle, params ForceParams) {
	r2 := p.Position.Dist2(q.Position)
	denom := math.Pow(r2+params.Epsilon2, 1.5)
	diff := p.Position.Sub(q.Position)
	coeff := -params.G * p.Mass * q.Mass / denom
	p.Force.AddAt(diff.Scale(coeff), &p.Force)
}
