// Package scenario defines the YAML document types and sentinel errors
// for declarative growth runs.
package scenario

import "errors"

// Sentinel errors for scenario validation.
var (
	// ErrNoRoots indicates a document without a single root node.
	ErrNoRoots = errors.New("scenario: at least one root is required")
	// ErrNoSteps indicates a missing or non-positive step budget.
	ErrNoSteps = errors.New("scenario: a positive step budget is required")
	// ErrNonPositiveMove indicates a missing or non-positive move distance.
	ErrNonPositiveMove = errors.New("scenario: move_distance must be positive")
	// ErrBadPosition indicates a position that is not 2 or 3 numbers.
	ErrBadPosition = errors.New("scenario: position must have 2 or 3 components")
	// ErrUnknownAction indicates an unrecognized attractor action.
	ErrUnknownAction = errors.New("scenario: unknown connect action")
)

// Scenario is the top-level YAML document: one engine configuration,
// the roots to seed, the attractors to place, and the step budget the
// run is bounded by.
type Scenario struct {
	// MoveDistance is the step length of new growth. Required, > 0.
	MoveDistance float64 `yaml:"move_distance"`

	// AttractRadius is the default attraction radius as a plain
	// distance (squared on build). 0 keeps the engine default.
	AttractRadius float64 `yaml:"attract_radius"`

	// ConnectRadius is the default connect radius as a plain distance.
	// 0 keeps the engine default.
	ConnectRadius float64 `yaml:"connect_radius"`

	// MaxLength caps tree depth; 0 means unlimited.
	MaxLength int `yaml:"max_length"`

	// MaxBranches caps per-node children; 0 means unlimited.
	MaxBranches int `yaml:"max_branches"`

	// ActiveWindow limits scans to the last N nodes; 0 scans all.
	ActiveWindow int `yaml:"active_window"`

	// Steps is the run budget for Run. Required, > 0: the algorithm
	// does not guarantee termination, so every run must be bounded.
	Steps int `yaml:"steps"`

	Roots      []RootSpec      `yaml:"roots"`
	Attractors []AttractorSpec `yaml:"attractors"`
}

// RootSpec seeds one tree.
type RootSpec struct {
	// Position is [x, y] or [x, y, z].
	Position []float64 `yaml:"position"`

	// Payload, when non-empty, is carried by the root from insertion.
	Payload string `yaml:"payload"`
}

// AttractorSpec places one attractor.
type AttractorSpec struct {
	// Position is [x, y] or [x, y, z].
	Position []float64 `yaml:"position"`

	// Strength scales the pull; 0 means the default strength 1.
	Strength float64 `yaml:"strength"`

	// AttractRadius and ConnectRadius are plain distances overriding
	// the scenario defaults; 0 keeps the default.
	AttractRadius float64 `yaml:"attract_radius"`
	ConnectRadius float64 `yaml:"connect_radius"`

	// Action is the lifecycle action on contact: "kill" (default),
	// "disable" (with Iterations), or "disable_for_root".
	Action string `yaml:"action"`

	// Iterations is the disable span for action "disable".
	Iterations int `yaml:"iterations"`

	// ActiveFrom gates the attractor until the given iteration.
	ActiveFrom int `yaml:"active_from"`

	// Payload is handed to the connecting node.
	Payload string `yaml:"payload"`
}
