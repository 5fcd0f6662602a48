// Package geom defines the point/vector capability set the spacecol
// engine is generic over, together with ready-made 2-D and 3-D
// implementations backed by gonum's spatial types.
//
// What
//
//   - Vector[V]: the direction-type contract — Add, Scale, Unit, Norm.
//   - Point[P, V]: the position-type contract — Sub (point minus point
//     yields a vector), Add (point plus vector yields a point), and
//     SqDistTo (squared distance).
//   - SqDist: a named squared distance, so radii comparisons stay
//     square-root free on the hot path. Build one from a plain distance
//     with SqDistOf.
//   - P2/V2 and P3/V3: concrete planar and spatial types over
//     gonum.org/v1/gonum/spatial/r2 and r3, with Pt2/Vec2/Pt3/Vec3
//     constructors.
//
// Why
//
//	The space-colonization algorithm only ever subtracts points,
//	normalizes and scales directions, and compares squared distances.
//	Expressing exactly that capability as constraints lets one engine
//	grow 2-D venation, 3-D root systems, or structures in any space a
//	caller can model — without duplicated stepping logic.
//
// Zero values
//
//	The zero value of a Vector implementation must be its additive
//	identity; the engine relies on this when resetting growth
//	accumulators. Plain struct vectors (P2/V2, P3/V3) satisfy this
//	for free.
//
// Usage
//
//	root := geom.Pt2(0, 0)
//	target := geom.Pt2(10, 0)
//	pull := target.Sub(root).Unit()        // V2{1, 0}
//	if target.SqDistTo(root) < geom.SqDistOf(20) { ... }
package geom
