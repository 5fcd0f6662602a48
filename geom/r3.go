package geom

import "gonum.org/v1/gonum/spatial/r3"

// P3 is a position in space. It satisfies Point[P3, V3].
type P3 r3.Vec

// V3 is a direction in space. It satisfies Vector[V3].
type V3 r3.Vec

// Pt3 builds a spatial point from its coordinates.
func Pt3(x, y, z float64) P3 {
	return P3{X: x, Y: y, Z: z}
}

// Vec3 builds a spatial vector from its components.
func Vec3(x, y, z float64) V3 {
	return V3{X: x, Y: y, Z: z}
}

// Sub returns the vector from q to p.
func (p P3) Sub(q P3) V3 {
	return V3(r3.Sub(r3.Vec(p), r3.Vec(q)))
}

// Add returns p translated by v.
func (p P3) Add(v V3) P3 {
	return P3(r3.Add(r3.Vec(p), r3.Vec(v)))
}

// SqDistTo returns the squared Euclidean distance from p to q.
func (p P3) SqDistTo(q P3) SqDist {
	return SqDist(r3.Norm2(r3.Sub(r3.Vec(p), r3.Vec(q))))
}

// Add returns the component-wise sum v + w.
func (v V3) Add(w V3) V3 {
	return V3(r3.Add(r3.Vec(v), r3.Vec(w)))
}

// Scale returns v scaled by f.
func (v V3) Scale(f float64) V3 {
	return V3(r3.Scale(f, r3.Vec(v)))
}

// Unit returns v normalized to length 1. Undefined for the zero vector.
func (v V3) Unit() V3 {
	return V3(r3.Unit(r3.Vec(v)))
}

// Norm returns the Euclidean length of v.
func (v V3) Norm() float64 {
	return r3.Norm(r3.Vec(v))
}
