package geom

import "gonum.org/v1/gonum/spatial/r2"

// P2 is a position in the plane. It satisfies Point[P2, V2].
type P2 r2.Vec

// V2 is a direction in the plane. It satisfies Vector[V2].
type V2 r2.Vec

// Pt2 builds a planar point from its coordinates.
func Pt2(x, y float64) P2 {
	return P2{X: x, Y: y}
}

// Vec2 builds a planar vector from its components.
func Vec2(x, y float64) V2 {
	return V2{X: x, Y: y}
}

// Sub returns the vector from q to p.
func (p P2) Sub(q P2) V2 {
	return V2(r2.Sub(r2.Vec(p), r2.Vec(q)))
}

// Add returns p translated by v.
func (p P2) Add(v V2) P2 {
	return P2(r2.Add(r2.Vec(p), r2.Vec(v)))
}

// SqDistTo returns the squared Euclidean distance from p to q.
func (p P2) SqDistTo(q P2) SqDist {
	return SqDist(r2.Norm2(r2.Sub(r2.Vec(p), r2.Vec(q))))
}

// Add returns the component-wise sum v + w.
func (v V2) Add(w V2) V2 {
	return V2(r2.Add(r2.Vec(v), r2.Vec(w)))
}

// Scale returns v scaled by f.
func (v V2) Scale(f float64) V2 {
	return V2(r2.Scale(f, r2.Vec(v)))
}

// Unit returns v normalized to length 1. Undefined for the zero vector.
func (v V2) Unit() V2 {
	return V2(r2.Unit(r2.Vec(v)))
}

// Norm returns the Euclidean length of v.
func (v V2) Norm() float64 {
	return r2.Norm(r2.Vec(v))
}
