// Package spacecol defines the node, attractor, and option types for the
// space-colonization engine.
package spacecol

import (
	"math"

	"github.com/ramify-go/ramify/geom"
)

// NodeID indexes a node in the engine's append-only arena. A node's ID is
// fixed at insertion time; the ID of a root is the handle external code
// uses to refer to its whole tree.
type NodeID int

// NoNode marks an absent node reference, e.g. an unset root exclusion.
const NoNode NodeID = -1

// Node is a point in the grown structure. Nodes are created by root
// insertion or by leaf spawning during Step, are never removed, and are
// mutated only by Step.
type Node[P geom.Point[P, V], V geom.Vector[V], I any] struct {
	// Parent is the direct parent's ID. A root is its own parent.
	Parent NodeID

	// Root is the ID of the root of the tree this node belongs to.
	Root NodeID

	// Length is the distance in edges from the root (a root has 0).
	Length int

	// Branches counts children spawned from this node so far.
	Branches int

	// Position is the node's location in the ambient space.
	Position P

	// growth accumulates normalized attraction directions, weighted by
	// attractor strength; reset every step.
	growth V

	// growthCount is the number of attractors pulling on this node in
	// the current step.
	growthCount int

	payload    I
	hasPayload bool
}

// IsRoot reports whether n is the root of its tree.
func (n Node[P, V, I]) IsRoot() bool {
	return n.Length == 0
}

// IsLeaf reports whether n has spawned no children yet.
func (n Node[P, V, I]) IsLeaf() bool {
	return n.Branches == 0
}

// Payload returns the payload assigned to n by a connecting attractor
// (or given at root insertion) and whether one is present.
func (n Node[P, V, I]) Payload() (I, bool) {
	return n.payload, n.hasPayload
}

// active reports whether n may still attract growth: both the length and
// the branch limit must be unreached. An inactive node stays in the
// arena; the structure built through it is immutable going forward.
func (n Node[P, V, I]) active(maxLength, maxBranches int) bool {
	return n.Length < maxLength && n.Branches < maxBranches
}

// ConnectKind selects the attractor lifecycle action taken on contact.
type ConnectKind int

const (
	// KillAttractor removes the attractor from the engine.
	KillAttractor ConnectKind = iota
	// DisableAttractor hides the attractor for a number of iterations.
	DisableAttractor
	// DisableForConnectingRoot hides the attractor from the tree whose
	// node connected, permanently; other trees still see it.
	DisableForConnectingRoot
)

// ConnectAction is performed when a node comes within an attractor's
// connect radius, after the attractor's payload has been handed to the
// node.
type ConnectAction struct {
	Kind ConnectKind

	// Iterations is the disable span for DisableAttractor; ignored
	// otherwise.
	Iterations int
}

// Kill returns the action that removes the attractor on contact.
func Kill() ConnectAction {
	return ConnectAction{Kind: KillAttractor}
}

// DisableFor returns the action that hides the attractor for the next k
// iterations after contact.
func DisableFor(k int) ConnectAction {
	return ConnectAction{Kind: DisableAttractor, Iterations: k}
}

// DisableForRoot returns the action that permanently hides the attractor
// from the connecting node's tree.
func DisableForRoot() ConnectAction {
	return ConnectAction{Kind: DisableForConnectingRoot}
}

// Attractor is a point source exerting growth influence on nearby nodes.
//
// Build attractors with Engine.NewAttractor to pick up engine defaults
// (and the NoNode exclusion sentinels); adjust fields, then pass the
// value to Engine.AddAttractor.
type Attractor[P any, I any] struct {
	// AttractRadius is the squared distance within which the attractor
	// pulls on the nearest active node. Strictly exclusive: a node at
	// exactly this squared distance is out of range.
	AttractRadius geom.SqDist

	// ConnectRadius is the squared distance within which a node
	// connects. Strictly exclusive, and expected (not enforced) to be
	// at most AttractRadius.
	ConnectRadius geom.SqDist

	// Strength scales the normalized pull direction.
	Strength float64

	// Position is the attractor's location.
	Position P

	// Payload is handed to the node that connects, overwriting any
	// payload the node already carries.
	Payload I

	// OnConnect is the lifecycle action applied on contact.
	OnConnect ConnectAction

	// ActiveFrom gates the attractor: it is inert while the engine's
	// iteration counter is below this value.
	ActiveFrom int

	// ExcludedRoot, when not NoNode, hides this attractor from every
	// node of the tree rooted there. Prevents a tree from attracting
	// itself when growing connections out of its own nodes.
	ExcludedRoot NodeID

	// ExcludedConnectingRoot is the same filter, written by the engine
	// when OnConnect is DisableForRoot. Never cleared automatically.
	ExcludedConnectingRoot NodeID
}

// activeIn reports whether the attractor participates in the given
// iteration.
func (a Attractor[P, I]) activeIn(iteration int) bool {
	return iteration >= a.ActiveFrom
}

// Options holds the engine's per-run parameters.
//
// Values are deliberately not validated: the algorithm is total, and
// degenerate parameters (zero radii, negative move distance) simply
// produce a degenerate-but-running engine.
type Options struct {
	// AttractRadius is the default squared attraction radius given to
	// attractors built by NewAttractor / AddDefaultAttractor.
	AttractRadius geom.SqDist

	// ConnectRadius is the default squared connect radius.
	ConnectRadius geom.SqDist

	// MaxLength deactivates a node once its edge distance from the root
	// reaches it.
	MaxLength int

	// MaxBranches deactivates a node once it has spawned this many
	// children.
	MaxBranches int

	// MoveDistance is the fixed step length of newly grown nodes.
	MoveDistance float64

	// ActiveWindow, when > 0, limits every scan to the last N nodes of
	// the arena — an optimization knob for sliding-window growth or
	// when early nodes are known to be fully colonized. 0 scans all.
	ActiveWindow int
}

// DefaultOptions returns the engine defaults:
//   - attraction radius 400 (= 20²), connect radius 1 (= 1²)
//   - unlimited tree depth and branching
//   - move distance 1
//   - no active window (all nodes scanned)
func DefaultOptions() Options {
	return Options{
		AttractRadius: geom.SqDistOf(20),
		ConnectRadius: geom.SqDistOf(1),
		MaxLength:     math.MaxInt,
		MaxBranches:   math.MaxInt,
		MoveDistance:  1,
		ActiveWindow:  0,
	}
}

// Option configures an Engine at construction time.
type Option func(*Options)

// WithAttractRadius sets the default squared attraction radius.
func WithAttractRadius(sq geom.SqDist) Option {
	return func(o *Options) { o.AttractRadius = sq }
}

// WithConnectRadius sets the default squared connect radius.
func WithConnectRadius(sq geom.SqDist) Option {
	return func(o *Options) { o.ConnectRadius = sq }
}

// WithMaxLength caps the edge distance a tree may grow from its root.
func WithMaxLength(n int) Option {
	return func(o *Options) { o.MaxLength = n }
}

// WithMaxBranches caps the children a single node may spawn.
func WithMaxBranches(n int) Option {
	return func(o *Options) { o.MaxBranches = n }
}

// WithMoveDistance sets the step length of newly grown nodes.
func WithMoveDistance(d float64) Option {
	return func(o *Options) { o.MoveDistance = d }
}

// WithActiveWindow limits scans to the last n nodes added (0 = scan all).
func WithActiveWindow(n int) Option {
	return func(o *Options) { o.ActiveWindow = n }
}
