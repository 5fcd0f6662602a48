package geom_test

import (
	"fmt"

	"github.com/ramify-go/ramify/geom"
)

// ExampleSqDistOf shows the squared-distance convention used by every
// engine radius: configure with a plain distance, compare squared.
func ExampleSqDistOf() {
	connect := geom.SqDistOf(3) // connect radius 3

	node := geom.Pt2(0, 0)
	attractor := geom.Pt2(2, 2)

	fmt.Println("radius²:", connect)
	fmt.Println("distance²:", node.SqDistTo(attractor))
	fmt.Println("in contact:", node.SqDistTo(attractor) < connect)

	// Output:
	// radius²: 9
	// distance²: 8
	// in contact: true
}

// ExamplePoint_Sub derives a unit pull direction the way the engine
// does each step.
func ExamplePoint_Sub() {
	node := geom.Pt2(1, 0)
	attractor := geom.Pt2(4, 4)

	pull := attractor.Sub(node).Unit()
	fmt.Printf("pull: (%.1f, %.1f)\n", pull.X, pull.Y)

	// Output:
	// pull: (0.6, 0.8)
}
