// Package spacecol grows tree-like structures toward attraction points
// using the space-colonization algorithm. See doc.go for an overview.
package spacecol

import "github.com/ramify-go/ramify/geom"

// Engine owns a growing node arena, a live attractor set, and the
// per-run parameters. One Engine instance owns its state exclusively;
// Step must not be called concurrently.
type Engine[P geom.Point[P, V], V geom.Vector[V], I any] struct {
	nodes      []Node[P, V, I]
	attractors []Attractor[P, I]
	opts       Options
	iteration  int
}

// New constructs an empty engine: no nodes, no attractors, iteration
// counter at 0. Type parameters name the point, vector, and payload
// types, e.g.:
//
//	spacecol.New[geom.P2, geom.V2, string]()
func New[P geom.Point[P, V], V geom.Vector[V], I any](opts ...Option) *Engine[P, V, I] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine[P, V, I]{opts: o}
}

// Iteration returns the number of completed steps.
func (e *Engine[P, V, I]) Iteration() int {
	return e.iteration
}

// NodeCount returns the arena size.
func (e *Engine[P, V, I]) NodeCount() int {
	return len(e.nodes)
}

// AttractorCount returns the number of live attractors.
func (e *Engine[P, V, I]) AttractorCount() int {
	return len(e.attractors)
}

// Node returns a copy of the node with the given ID, and whether the ID
// is in range.
func (e *Engine[P, V, I]) Node(id NodeID) (Node[P, V, I], bool) {
	if id < 0 || int(id) >= len(e.nodes) {
		var zero Node[P, V, I]
		return zero, false
	}
	return e.nodes[id], true
}

// SetActiveWindow changes the scan-window limit between steps
// (0 removes the limit).
func (e *Engine[P, V, I]) SetActiveWindow(n int) {
	e.opts.ActiveWindow = n
}

// NewAttractor returns an attractor at pos filled with the engine
// defaults: default radii, strength 1, Kill on connect, active from
// iteration 0, no root exclusions. Adjust fields as needed, then pass
// the value to AddAttractor.
func (e *Engine[P, V, I]) NewAttractor(pos P) Attractor[P, I] {
	return Attractor[P, I]{
		AttractRadius:          e.opts.AttractRadius,
		ConnectRadius:          e.opts.ConnectRadius,
		Strength:               1,
		Position:               pos,
		OnConnect:              Kill(),
		ActiveFrom:             0,
		ExcludedRoot:           NoNode,
		ExcludedConnectingRoot: NoNode,
	}
}

// AddAttractor registers a fully specified attractor. O(1), no geometry.
func (e *Engine[P, V, I]) AddAttractor(a Attractor[P, I]) {
	e.attractors = append(e.attractors, a)
}

// AddDefaultAttractor registers a default attractor at pos (see
// NewAttractor for the recipe). O(1), no geometry.
func (e *Engine[P, V, I]) AddDefaultAttractor(pos P) {
	e.AddAttractor(e.NewAttractor(pos))
}

// AddRoot inserts a new root node at pos and returns its ID, the handle
// for the whole tree grown from it. O(1), no geometry.
func (e *Engine[P, V, I]) AddRoot(pos P) NodeID {
	return e.addRoot(pos, nil)
}

// AddRootWithPayload inserts a new root node carrying an initial payload
// and returns its ID. O(1), no geometry.
func (e *Engine[P, V, I]) AddRootWithPayload(pos P, payload I) NodeID {
	return e.addRoot(pos, &payload)
}

// addRoot appends a root: its own index serves as both parent and root.
func (e *Engine[P, V, I]) addRoot(pos P, payload *I) NodeID {
	id := NodeID(len(e.nodes))
	n := Node[P, V, I]{
		Parent:   id,
		Root:     id,
		Position: pos,
	}
	if payload != nil {
		n.payload = *payload
		n.hasPayload = true
	}
	e.nodes = append(e.nodes, n)
	return id
}

// addLeaf appends a child of parent at pos and bumps the parent's branch
// count. Children always carry an index greater than their parent's, so
// tree edges never need updating.
func (e *Engine[P, V, I]) addLeaf(pos P, parent NodeID) {
	p := &e.nodes[parent]
	p.Branches++
	root, length := p.Root, p.Length+1
	e.nodes = append(e.nodes, Node[P, V, I]{
		Parent:   parent,
		Root:     root,
		Length:   length,
		Position: pos,
	})
}

// Step advances the structure by exactly one growth iteration and
// returns the number of nodes spawned. A return of 0 means the
// structure is quiescent for now — though a disabled attractor may
// reactivate later, so 0 is not a guarantee of permanent termination.
// Callers own the loop and must bound it: competing attractors can make
// a structure oscillate forever.
//
// One iteration:
//
//  1. Every active attractor scans the window (the last ActiveWindow
//     nodes, or all). The first node found inside the connect radius
//     connects — first match in scan order, not nearest. Otherwise the
//     strictly nearest node inside the attraction radius accumulates a
//     unit pull toward the attractor, scaled by Strength.
//  2. On connect, the attractor's payload is assigned to the node and
//     OnConnect runs: Kill swap-removes the attractor (the slot is
//     re-processed with its new occupant), DisableFor hides it for k
//     iterations, DisableForRoot hides it from the connecting tree.
//  3. Every pulled node of the pre-step window spawns one leaf at
//     MoveDistance along its normalized accumulated pull, then resets
//     its accumulator. If opposing pulls cancel to a zero vector the
//     node spawns nothing that step (the accumulator is still reset).
//
// Radii comparisons are strict: a node at exactly the squared connect
// (or attract) distance is out of range.
func (e *Engine[P, V, I]) Step() int {
	iteration := e.iteration
	e.iteration++

	total := len(e.nodes)
	window := total
	if e.opts.ActiveWindow > 0 && e.opts.ActiveWindow < total {
		window = e.opts.ActiveWindow
	}
	start := total - window

	// Attraction pass: each attractor independently finds either a
	// connecting node or its single nearest node in range.
	for i := 0; i < len(e.attractors); {
		// Work on a copy; lifecycle actions write back through the slot.
		a := e.attractors[i]
		if !a.activeIn(iteration) {
			i++
			continue
		}

		connect := NoNode
		nearest := NoNode
		nearestDist := a.AttractRadius
		for j := start; j < total; j++ {
			n := &e.nodes[j]
			if !n.active(e.opts.MaxLength, e.opts.MaxBranches) {
				continue
			}
			if a.ExcludedRoot != NoNode && a.ExcludedRoot == n.Root {
				continue
			}
			if a.ExcludedConnectingRoot != NoNode && a.ExcludedConnectingRoot == n.Root {
				continue
			}

			d := n.Position.SqDistTo(a.Position)
			if d < a.ConnectRadius {
				// First node in scan order wins; a closer one may exist
				// later in the window but is deliberately not searched.
				connect = NodeID(j)
				break
			}
			if d < nearestDist {
				nearestDist = d
				nearest = NodeID(j)
			}
		}

		if connect != NoNode {
			n := &e.nodes[connect]
			n.payload = a.Payload
			n.hasPayload = true
			switch a.OnConnect.Kind {
			case KillAttractor:
				last := len(e.attractors) - 1
				e.attractors[i] = e.attractors[last]
				e.attractors = e.attractors[:last]
				// Re-process slot i, which now holds a different attractor.
				continue
			case DisableAttractor:
				e.attractors[i].ActiveFrom = iteration + a.OnConnect.Iterations
			case DisableForConnectingRoot:
				e.attractors[i].ExcludedConnectingRoot = n.Root
			}
		} else if nearest != NoNode {
			n := &e.nodes[nearest]
			pull := a.Position.Sub(n.Position).Unit().Scale(a.Strength)
			n.growth = n.growth.Add(pull)
			n.growthCount++
		}
		i++
	}

	// Spawning pass over the pre-step window. Index-based access only:
	// appending may reallocate the arena.
	var zero V
	for j := start; j < total; j++ {
		if e.nodes[j].growthCount == 0 {
			continue
		}
		growth := e.nodes[j].growth
		e.nodes[j].growth = zero
		e.nodes[j].growthCount = 0
		if growth.Norm() == 0 {
			// Opposing pulls cancelled exactly; normalizing would be
			// undefined, so this node skips spawning this step.
			continue
		}
		child := e.nodes[j].Position.Add(growth.Unit().Scale(e.opts.MoveDistance))
		e.addLeaf(child, NodeID(j))
	}

	return len(e.nodes) - total
}
