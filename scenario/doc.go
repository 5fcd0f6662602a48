// Package scenario builds and runs space-colonization growth runs from
// declarative YAML documents.
//
// What
//
//   - A Scenario describes one complete run: engine parameters, root
//     nodes, and attractors, all in a single YAML file.
//   - Parse/Load read a document, Validate checks it, Build turns it
//     into a ready spacecol.Engine over 3-D space, and Run drives the
//     engine until quiescence or until the mandatory step budget runs
//     out.
//
// Why
//
//	The engine core defines no I/O by design; a renderer, a test
//	harness, and a batch pipeline all want the same thing on top of
//	it — "here is a growth setup, run it". scenario is that boundary
//	layer, kept out of the algorithm package.
//
// Radii in scenario files are plain distances; they are squared on
// build, so a file says `connect_radius: 1` where the engine sees the
// squared value.
//
// Positions are `[x, y]` or `[x, y, z]`; planar positions get z = 0.
//
// Usage
//
//	sc, err := scenario.Load("venation.yaml")
//	if err != nil { ... }
//	eng, steps, err := sc.Run()
//
// A minimal document:
//
//	move_distance: 1
//	attract_radius: 20
//	connect_radius: 1
//	steps: 200
//	roots:
//	  - position: [0, 0]
//	attractors:
//	  - position: [10, 0]
//	  - position: [0, 10]
//	    action: disable
//	    iterations: 5
//
// Errors
//
//   - ErrNoRoots           if the document declares no roots.
//   - ErrNoSteps           if the step budget is absent or non-positive.
//   - ErrNonPositiveMove   if move_distance is absent or non-positive.
//   - ErrBadPosition       if a position is not 2 or 3 numbers.
//   - ErrUnknownAction     if an attractor action is not recognized.
package scenario
