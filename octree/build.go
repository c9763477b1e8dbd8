package octree

import (
	"github.com/phil-mansfield/barnes-hut/particle"
	"github.com/phil-mansfield/barnes-hut/vector"
)

// Tree is an octree built over a fixed particle slice, backed by an
// Arena. TreeBuilder is strictly single-threaded: it mutates shared
// node state and the arena's high-water index.
type Tree struct {
	Arena                *Arena
	Root                 NodeRef
	MaxParticlesPerLeaf  int
	MaxDepth             int
	CoLocatedOverflows   int

	particles []particle.Particle
}

// Build resets arena and inserts every particle exactly once into a
// fresh tree rooted at the BoundsFit cube. On return, every Node's
// ParticleCount equals the number of particles in its subtree and
// every particle lies in the leaf its position maps to.
//
// The returned Tree keeps a reference to particles but reads it only
// during Build's own insertions; callers must not mutate positions
// between Build and the aggregation/force passes that follow it.
//
// Build computes its own bounds via BoundsFit. Callers that need to
// time the bounds fit separately from insertion should call BoundsFit
// themselves and use BuildFromBounds instead.
func Build(arena *Arena, particles []particle.Particle, maxParticlesPerLeaf int) (*Tree, error) {
	center, size := BoundsFit(particles)
	return BuildFromBounds(arena, particles, maxParticlesPerLeaf, center, size)
}

// BuildFromBounds resets arena and inserts every particle exactly once
// into a fresh tree rooted at a cube with the given centre and size.
// It performs only the insertion pass; callers already holding a
// BoundsFit result (e.g. to time it as its own phase) should call this
// directly instead of Build.
func BuildFromBounds(
	arena *Arena, particles []particle.Particle, maxParticlesPerLeaf int,
	center vector.Vector3, size float64,
) (*Tree, error) {
	arena.Reset()

	rootRef, err := arena.Allocate()
	if err != nil {
		return nil, err
	}
	root := arena.Node(rootRef)
	root.GeoCenter = center
	root.Size = size
	root.Level = 0

	t := &Tree{
		Arena:               arena,
		Root:                rootRef,
		MaxParticlesPerLeaf: maxParticlesPerLeaf,
		particles:           particles,
	}

	for i := range particles {
		if err := t.insertFrom(rootRef, i, true); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// insertFrom inserts particle idx starting at node start, walking down
// the tree one octant at a time until it finds an empty slot or a leaf
// with room. countStart controls whether start's own ParticleCount is
// incremented by this call: it is false only for
// the re-insertion of a leaf's already-counted bucket during promotion
// (see promote), and true everywhere else, including every node the
// walk descends into after the first hop.
func (t *Tree) insertFrom(start NodeRef, idx int, countStart bool) error {
	node := start
	count := countStart
	pos := t.particles[idx].Position

	for {
		n := t.Arena.Node(node)
		if n.Size == 0 {
			return newError(InvalidGeometry, "node at level %d has zero size", n.Level)
		}

		c := Octant(pos, n.GeoCenter)
		child := n.Children[c]

		if child == NoNode {
			leafRef, err := t.Arena.Allocate()
			if err != nil {
				return err
			}
			// Allocate may have grown the arena's backing slice; re-fetch
			// n so the writes below land in the live node.
			n = t.Arena.Node(node)
			leaf := t.Arena.Node(leafRef)
			leaf.Kind = Leaf
			leaf.Level = n.Level + 1
			leaf.Size = n.Size / 2
			leaf.GeoCenter = ChildCenter(n.GeoCenter, n.Size, c)
			leaf.LeafBucket = append(leaf.LeafBucket, idx)
			leaf.ParticleCount = 1

			n.Children[c] = leafRef
			if n.Kind == Empty {
				n.Kind = Internal
			}
			if count {
				n.ParticleCount++
			}
			if leaf.Level > t.MaxDepth {
				t.MaxDepth = leaf.Level
			}
			return nil
		}

		cn := t.Arena.Node(child)
		switch cn.Kind {
		case Leaf:
			if len(cn.LeafBucket) < t.MaxParticlesPerLeaf {
				cn.LeafBucket = append(cn.LeafBucket, idx)
				cn.ParticleCount++
				if count {
					n.ParticleCount++
				}
				return nil
			}

			promoted, err := t.promote(child, cn, idx)
			if err != nil {
				return err
			}
			if !promoted {
				cn.LeafBucket = append(cn.LeafBucket, idx)
				cn.ParticleCount++
				if count {
					n.ParticleCount++
				}
				t.CoLocatedOverflows++
				return nil
			}

			// promote's re-insertions may have grown the arena.
			n = t.Arena.Node(node)
			if count {
				n.ParticleCount++
			}
			node = child
			count = true
			continue

		case Internal:
			if count {
				n.ParticleCount++
			}
			node = child
			count = true
			continue

		default:
			return newError(InvalidGeometry, "empty node reachable as a child reference")
		}
	}
}

// promote converts a full leaf at ref into an Internal node and
// re-inserts its bucket into the new children, unless doing so would
// be futile (see the co-located edge case below). currentIdx is the
// particle whose insertion triggered the promotion attempt; it is
// consulted only to detect that edge case; on success it is not
// itself inserted here (the caller continues inserting it separately).
//
// The bucket is extracted into a local slice before any mutation of
// the node so that re-insertion never iterates a slice it is also
// mutating.
func (t *Tree) promote(ref NodeRef, leaf *Node, currentIdx int) (promoted bool, err error) {
	bucket := append([]int(nil), leaf.LeafBucket...)
	center := leaf.GeoCenter

	firstOctant := Octant(t.particles[bucket[0]].Position, center)
	allSame := Octant(t.particles[currentIdx].Position, center) == firstOctant
	if allSame {
		for _, idx := range bucket[1:] {
			if Octant(t.particles[idx].Position, center) != firstOctant {
				allSame = false
				break
			}
		}
	}
	if allSame {
		// Every bucket particle and the one forcing the split land in
		// the same octant: splitting would immediately reproduce the
		// same full-bucket overflow one level down. Abort rather than
		// recurse; the leaf is kept over capacity and the caller
		// records a CoLocatedOverflow warning.
		return false, nil
	}

	leaf.Kind = Internal
	leaf.LeafBucket = leaf.LeafBucket[:0]

	for _, idx := range bucket {
		if err := t.insertFrom(ref, idx, false); err != nil {
			return false, err
		}
	}
	return true, nil
}
