package spacecol_test

import (
	"reflect"
	"testing"

	"github.com/ramify-go/ramify/geom"
	"github.com/ramify-go/ramify/spacecol"
)

// grownChain builds the 10-unit straight-chain fixture: a payload-
// carrying root grown to contact with a single attractor at (2, 0).
func grownChain(t *testing.T) *spacecol.Engine[geom.P2, geom.V2, string] {
	t.Helper()
	eng := newPlanar(
		spacecol.WithAttractRadius(geom.SqDistOf(20)),
		spacecol.WithConnectRadius(geom.SqDistOf(1)),
		spacecol.WithMoveDistance(1),
	)
	eng.AddRootWithPayload(geom.Pt2(0, 0), "seed")
	a := eng.NewAttractor(geom.Pt2(2, 0))
	a.Payload = "mark"
	eng.AddAttractor(a)
	stepAll(t, eng, 20)
	return eng
}

// TestVisitSegments walks every tree edge and checks child/parent pairing.
func TestVisitSegments(t *testing.T) {
	eng := grownChain(t)

	type seg struct{ child, parent geom.P2 }
	var segs []seg
	eng.VisitSegments(func(child, parent geom.P2) {
		segs = append(segs, seg{child, parent})
	})

	if len(segs) != eng.NodeCount()-1 {
		t.Fatalf("segments = %d; want %d (every non-root node)", len(segs), eng.NodeCount()-1)
	}
	for i, sg := range segs {
		if sg.parent.X >= sg.child.X {
			t.Errorf("segment %d: parent %v not behind child %v on a forward chain", i, sg.parent, sg.child)
		}
	}
}

// TestVisitRoots visits each tree origin exactly once.
func TestVisitRoots(t *testing.T) {
	eng := newPlanar()
	eng.AddRoot(geom.Pt2(0, 0))
	eng.AddRoot(geom.Pt2(9, 9))

	var roots []geom.P2
	eng.VisitRoots(func(n spacecol.Node[geom.P2, geom.V2, string]) {
		if !n.IsRoot() {
			t.Errorf("non-root visited: %+v", n)
		}
		roots = append(roots, n.Position)
	})
	want := []geom.P2{geom.Pt2(0, 0), geom.Pt2(9, 9)}
	if !reflect.DeepEqual(roots, want) {
		t.Errorf("roots = %v; want %v", roots, want)
	}
}

// TestVisitAttractors covers both attractor visitors.
func TestVisitAttractors(t *testing.T) {
	eng := newPlanar()
	eng.AddDefaultAttractor(geom.Pt2(1, 2))
	a := eng.NewAttractor(geom.Pt2(3, 4))
	a.Strength = 2.5
	eng.AddAttractor(a)

	var points []geom.P2
	eng.VisitAttractorPoints(func(p geom.P2) { points = append(points, p) })
	if want := []geom.P2{geom.Pt2(1, 2), geom.Pt2(3, 4)}; !reflect.DeepEqual(points, want) {
		t.Errorf("points = %v; want %v", points, want)
	}

	var strengths []float64
	eng.VisitAttractors(func(a spacecol.Attractor[geom.P2, string]) {
		strengths = append(strengths, a.Strength)
		if a.ExcludedRoot != spacecol.NoNode || a.ExcludedConnectingRoot != spacecol.NoNode {
			t.Errorf("fresh attractor carries exclusions: %+v", a)
		}
	})
	if want := []float64{1, 2.5}; !reflect.DeepEqual(strengths, want) {
		t.Errorf("strengths = %v; want %v", strengths, want)
	}
}

// TestVisitPayloadNodes pairs payload carriers with their root and
// skips roots even when the root itself holds a payload.
func TestVisitPayloadNodes(t *testing.T) {
	eng := grownChain(t)

	visits := 0
	eng.VisitPayloadNodes(func(node, root spacecol.Node[geom.P2, geom.V2, string]) {
		visits++
		payload, has := node.Payload()
		if !has || payload != "mark" {
			t.Errorf("payload = %q, %v; want \"mark\", true", payload, has)
		}
		rootPayload, has := root.Payload()
		if !root.IsRoot() || !has || rootPayload != "seed" {
			t.Errorf("paired root = %+v; want the seed root", root)
		}
	})
	// Only the contact node qualifies: the root carries "seed" but is
	// excluded by contract.
	if visits != 1 {
		t.Errorf("payload visits = %d; want 1", visits)
	}
}

// TestVisitorsIdempotent re-runs every visitor and requires identical
// output: reads must not mutate engine state.
func TestVisitorsIdempotent(t *testing.T) {
	eng := grownChain(t)

	collect := func() [][]geom.P2 {
		var points, children, roots []geom.P2
		eng.VisitAttractorPoints(func(p geom.P2) { points = append(points, p) })
		eng.VisitSegments(func(c, _ geom.P2) { children = append(children, c) })
		eng.VisitRoots(func(n spacecol.Node[geom.P2, geom.V2, string]) { roots = append(roots, n.Position) })
		return [][]geom.P2{points, children, roots}
	}

	first := collect()
	for i := 0; i < 3; i++ {
		if got := collect(); !reflect.DeepEqual(got, first) {
			t.Fatalf("visitor pass %d diverged: %v vs %v", i+2, got, first)
		}
	}
}
