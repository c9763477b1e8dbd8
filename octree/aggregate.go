package octree

import (
	"github.com/phil-mansfield/barnes-hut/particle"
	"github.com/phil-mansfield/barnes-hut/vector"
)

// Aggregate performs the post-order mass-aggregation pass: after it
// returns, invariants 1 and 2 hold for every node reachable from root
// (every Internal node's Mass/MassCenter is the mass-weighted sum of
// its non-empty children; every Leaf's is the monopole of its
// bucket).
//
// It also recomputes ParticleCount bottom-up as the sum of children's
// ParticleCount (Leaf: len(bucket)). TreeBuilder's insertion path
// cannot increment ParticleCount correctly across a leaf promotion
// without either double-counting the re-inserted bucket or threading
// extra bookkeeping through recursive re-insertion; recomputing it
// here, once, bottom-up, is simpler and provably correct.
func Aggregate(arena *Arena, root NodeRef, particles []particle.Particle) {
	aggregateNode(arena, root, particles)
}

func aggregateNode(arena *Arena, ref NodeRef, particles []particle.Particle) {
	n := arena.Node(ref)

	switch n.Kind {
	case Empty:
		return

	case Leaf:
		var mass float64
		var weighted vector.Vector3
		for _, idx := range n.LeafBucket {
			p := &particles[idx]
			mass += p.Mass
			weighted = weighted.Add(p.Position.Scale(p.Mass))
		}
		n.Mass = mass
		if mass > 0 {
			n.MassCenter = weighted.Div(mass)
		}
		n.ParticleCount = len(n.LeafBucket)

	case Internal:
		var mass float64
		var weighted vector.Vector3
		count := 0
		for _, childRef := range n.Children {
			if childRef == NoNode {
				continue
			}
			aggregateNode(arena, childRef, particles)
			child := arena.Node(childRef)
			mass += child.Mass
			weighted = weighted.Add(child.MassCenter.Scale(child.Mass))
			count += child.ParticleCount
		}
		n.Mass = mass
		if mass > 0 {
			n.MassCenter = weighted.Div(mass)
		}
		n.ParticleCount = count
	}
}

// AggregateParallel runs Aggregate, fanning out over root's immediate
// non-empty children: MassAggregator traverses a fixed tree and may be
// parallelized over disjoint subtrees, which is exactly what the
// children of root are. Each goroutine's subtree is aggregated
// sequentially; only the top-level fan-out is concurrent.
func AggregateParallel(arena *Arena, root NodeRef, particles []particle.Particle) {
	rootNode := arena.Node(root)

	type job struct{ ref NodeRef }
	var jobs []job
	for _, childRef := range rootNode.Children {
		if childRef != NoNode {
			jobs = append(jobs, job{childRef})
		}
	}

	if len(jobs) <= 1 {
		for _, j := range jobs {
			aggregateNode(arena, j.ref, particles)
		}
	} else {
		done := make(chan struct{}, len(jobs))
		for _, j := range jobs {
			go func(ref NodeRef) {
				aggregateNode(arena, ref, particles)
				done <- struct{}{}
			}(j.ref)
		}
		for range jobs {
			<-done
		}
	}

	var mass float64
	var weighted vector.Vector3
	count := 0
	for _, childRef := range rootNode.Children {
		if childRef == NoNode {
			continue
		}
		child := arena.Node(childRef)
		mass += child.Mass
		weighted = weighted.Add(child.MassCenter.Scale(child.Mass))
		count += child.ParticleCount
	}
	rootNode.Mass = mass
	if mass > 0 {
		rootNode.MassCenter = weighted.Div(mass)
	}
	rootNode.ParticleCount = count
}
