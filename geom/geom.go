// Package geom declares the geometry capability contracts shared by all
// growth engines in ramify.
package geom

// SqDist wraps a squared distance. Radii and distance comparisons run
// entirely in squared space, so the hot scan path never takes a square
// root.
type SqDist float64

// SqDistOf converts a plain distance d into its squared form.
func SqDistOf(d float64) SqDist {
	return SqDist(d * d)
}

// Vector is the capability set required of a direction type V.
//
// The zero value of V must be the additive identity (the zero vector);
// the engine resets accumulators by assigning it.
type Vector[V any] interface {
	// Add returns the component-wise sum of the receiver and w.
	Add(w V) V
	// Scale returns the receiver scaled by f.
	Scale(f float64) V
	// Unit returns the receiver normalized to length 1. Calling Unit on
	// a zero vector is undefined; callers must check Norm first.
	Unit() V
	// Norm returns the Euclidean length of the receiver.
	Norm() float64
}

// Point is the capability set required of a position type P whose
// differences are vectors of type V.
type Point[P, V any] interface {
	// Sub returns the vector from q to the receiver (receiver − q).
	Sub(q P) V
	// Add returns the receiver translated by v.
	Add(v V) P
	// SqDistTo returns the squared Euclidean distance to q.
	SqDistTo(q P) SqDist
}
