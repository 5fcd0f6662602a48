// Package spacecol implements the space-colonization growth algorithm:
// an iterative procedure that grows branching, tree-like structures
// toward a set of attraction points in continuous space.
//
// 🚀 What is space colonization?
//
//	Attraction points ("attractors") pull the nearest growing node
//	toward them; each step every pulled node sprouts a new leaf node a
//	fixed distance along its accumulated pull direction.  A node that
//	comes within an attractor's connect radius "connects": the
//	attractor's payload is handed to the node and the attractor is
//	killed, temporarily disabled, or hidden from the connecting tree.
//	The result is the organic branching seen in leaf venation, blood
//	vessels, and root systems.
//
// ✨ Key properties:
//   - One engine for any space: generic over geom.Point / geom.Vector
//     (2-D, 3-D, or caller-defined)
//   - Append-only node arena: parent/root links are plain indices,
//     never invalidated, trivially safe to traverse
//   - Caller-driven stepping: Step() advances exactly one iteration and
//     reports how many nodes were spawned; 0 means the structure is
//     quiescent
//   - Multiple independent trees share one arena; per-attractor root
//     exclusions prevent self-attraction
//
// ⚙️ Usage:
//
//	eng := spacecol.New[geom.P2, geom.V2, string](
//	    spacecol.WithAttractRadius(geom.SqDistOf(20)),
//	    spacecol.WithConnectRadius(geom.SqDistOf(1)),
//	    spacecol.WithMoveDistance(1),
//	)
//	eng.AddRoot(geom.Pt2(0, 0))
//	eng.AddDefaultAttractor(geom.Pt2(10, 0))
//
//	for i := 0; i < 1000; i++ { // always cap iterations: see below
//	    if eng.Step() == 0 {
//	        break
//	    }
//	}
//	eng.VisitSegments(func(child, parent geom.P2) { /* render edge */ })
//
// ⚠️ Termination:
//
//	The algorithm does not guarantee termination — a structure can
//	oscillate forever between competing attractors.  Step() is
//	deliberately a single-iteration primitive; callers own the loop and
//	must bound it.
//
// Concurrency:
//
//	An Engine is single-threaded.  Step mutates the arena and the
//	attractor set in place without synchronization; serialize calls or
//	use independent engines for parallel exploration.
//
// Performance (N nodes in the scan window, A attractors):
//
//   - Step: O(A·N) time — every attractor scans the window linearly.
//     No spatial index is built in; callers needing scale should limit
//     the window (WithActiveWindow) or shard attractors externally.
//   - Memory: O(total nodes + A); nodes are never removed.
package spacecol
