// Package ramify grows branching, tree-like structures — vascular
// networks, plant venation, root systems — toward attraction points in
// continuous space, using the space-colonization algorithm.
//
// 🚀 What is ramify?
//
//	A small, dependency-light library that brings together:
//		• spacecol/ — the stateful space-colonization engine: caller-driven
//		  stepping over an append-only node arena and a live attractor set
//		• geom/     — the point/vector capability the engine is generic
//		  over, plus ready-made 2-D and 3-D types backed by gonum
//		• scenario/ — declarative YAML growth scenarios: parameters,
//		  roots and attractors in one file, built and run in two calls
//
// ✨ Why choose ramify?
//
//   - Dimension-agnostic – one engine for 2-D, 3-D, or your own space
//   - Caller in control – one Step() per call, you decide when to stop
//   - Arena-indexed – parent/root links are plain indices, no pointer
//     graphs, trivially safe to traverse and export
//   - Pure Go – no cgo, no hidden machinery
//
// Quick ASCII example:
//
//	   · ·          attraction points (·) pull the nearest active
//	  · ╲│╱ ·       node toward them each step; nodes that come close
//	    ╲│╱         enough "connect", exchange a payload, and retire
//	     │          the attractor
//	     R          root
//
// Start with spacecol.New, add a root and a handful of attractors, and
// loop on Step() until it returns 0 (always under your own iteration
// cap — competing attractors can make a structure oscillate forever).
//
// Dive into examples/ for leaf venation, capillary bridging between
// trees, and YAML-driven runs.
//
//	go get github.com/ramify-go/ramify/spacecol
package ramify
