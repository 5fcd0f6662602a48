package spacecol

// Read-only traversal surface. Every visitor walks the arena (or the
// attractor set) in insertion order, hands the callback value copies,
// and mutates nothing: calling a visitor any number of times between
// steps yields identical output. No ordering guarantee is made beyond
// insertion order — and attractor order changes whenever a Kill
// swap-removes an entry.

// VisitAttractorPoints calls visit with the position of every live
// attractor.
func (e *Engine[P, V, I]) VisitAttractorPoints(visit func(P)) {
	for i := range e.attractors {
		visit(e.attractors[i].Position)
	}
}

// VisitAttractors calls visit with the full record of every live
// attractor.
func (e *Engine[P, V, I]) VisitAttractors(visit func(Attractor[P, I])) {
	for i := range e.attractors {
		visit(e.attractors[i])
	}
}

// VisitSegments calls visit with every tree edge as a (child, parent)
// position pair. Roots have no incoming edge and are skipped.
func (e *Engine[P, V, I]) VisitSegments(visit func(child, parent P)) {
	for i := range e.nodes {
		if e.nodes[i].IsRoot() {
			continue
		}
		visit(e.nodes[i].Position, e.nodes[e.nodes[i].Parent].Position)
	}
}

// VisitPayloadNodes calls visit with every payload-carrying node paired
// with its tree's root node. Root nodes themselves are skipped, even
// when they carry a payload.
func (e *Engine[P, V, I]) VisitPayloadNodes(visit func(node, root Node[P, V, I])) {
	for i := range e.nodes {
		if !e.nodes[i].hasPayload || e.nodes[i].IsRoot() {
			continue
		}
		visit(e.nodes[i], e.nodes[e.nodes[i].Root])
	}
}

// VisitRoots calls visit with every root node.
func (e *Engine[P, V, I]) VisitRoots(visit func(Node[P, V, I])) {
	for i := range e.nodes {
		if e.nodes[i].IsRoot() {
			visit(e.nodes[i])
		}
	}
}
