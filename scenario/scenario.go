// Package scenario turns YAML growth documents into running
// space-colonization engines. See doc.go for the document format.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ramify-go/ramify/geom"
	"github.com/ramify-go/ramify/spacecol"
)

// Engine is the concrete engine type scenarios build: 3-D space with
// string payloads. Planar documents simply leave z at 0.
type Engine = spacecol.Engine[geom.P3, geom.V3, string]

// Node is the node type of a scenario-built engine, for visitor
// callbacks.
type Node = spacecol.Node[geom.P3, geom.V3, string]

// Parse decodes a YAML document into a Scenario and validates it.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	return Parse(data)
}

// Validate checks the document for structural problems. Geometry is
// deliberately not second-guessed beyond the position arity: the engine
// is total, and a degenerate setup is the author's to own.
func (s *Scenario) Validate() error {
	if s.MoveDistance <= 0 {
		return ErrNonPositiveMove
	}
	if s.Steps <= 0 {
		return ErrNoSteps
	}
	if len(s.Roots) == 0 {
		return ErrNoRoots
	}
	for i, r := range s.Roots {
		if _, err := point(r.Position); err != nil {
			return fmt.Errorf("root %d: %w", i, err)
		}
	}
	for i, a := range s.Attractors {
		if _, err := point(a.Position); err != nil {
			return fmt.Errorf("attractor %d: %w", i, err)
		}
		if _, err := action(a); err != nil {
			return fmt.Errorf("attractor %d: %w", i, err)
		}
	}
	return nil
}

// Build constructs a fresh engine populated with the scenario's roots
// and attractors. Each call builds an independent engine.
func (s *Scenario) Build() (*Engine, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	opts := []spacecol.Option{spacecol.WithMoveDistance(s.MoveDistance)}
	if s.AttractRadius > 0 {
		opts = append(opts, spacecol.WithAttractRadius(geom.SqDistOf(s.AttractRadius)))
	}
	if s.ConnectRadius > 0 {
		opts = append(opts, spacecol.WithConnectRadius(geom.SqDistOf(s.ConnectRadius)))
	}
	if s.MaxLength > 0 {
		opts = append(opts, spacecol.WithMaxLength(s.MaxLength))
	}
	if s.MaxBranches > 0 {
		opts = append(opts, spacecol.WithMaxBranches(s.MaxBranches))
	}
	if s.ActiveWindow > 0 {
		opts = append(opts, spacecol.WithActiveWindow(s.ActiveWindow))
	}
	eng := spacecol.New[geom.P3, geom.V3, string](opts...)

	for _, r := range s.Roots {
		pos, _ := point(r.Position)
		if r.Payload == "" {
			eng.AddRoot(pos)
		} else {
			eng.AddRootWithPayload(pos, r.Payload)
		}
	}
	for _, spec := range s.Attractors {
		pos, _ := point(spec.Position)
		a := eng.NewAttractor(pos)
		if spec.Strength > 0 {
			a.Strength = spec.Strength
		}
		if spec.AttractRadius > 0 {
			a.AttractRadius = geom.SqDistOf(spec.AttractRadius)
		}
		if spec.ConnectRadius > 0 {
			a.ConnectRadius = geom.SqDistOf(spec.ConnectRadius)
		}
		act, _ := action(spec)
		a.OnConnect = act
		a.ActiveFrom = spec.ActiveFrom
		a.Payload = spec.Payload
		eng.AddAttractor(a)
	}
	return eng, nil
}

// Run builds the engine and steps it until a step grows nothing or the
// budget is exhausted, returning the engine and the number of steps
// executed.
func (s *Scenario) Run() (*Engine, int, error) {
	eng, err := s.Build()
	if err != nil {
		return nil, 0, err
	}
	steps := 0
	for ; steps < s.Steps; steps++ {
		if eng.Step() == 0 {
			steps++
			break
		}
	}
	return eng, steps, nil
}

// point maps a 2- or 3-component position onto 3-D space.
func point(pos []float64) (geom.P3, error) {
	switch len(pos) {
	case 2:
		return geom.Pt3(pos[0], pos[1], 0), nil
	case 3:
		return geom.Pt3(pos[0], pos[1], pos[2]), nil
	default:
		return geom.P3{}, fmt.Errorf("%w: got %d", ErrBadPosition, len(pos))
	}
}

// action maps the document's action string onto a ConnectAction.
func action(spec AttractorSpec) (spacecol.ConnectAction, error) {
	switch spec.Action {
	case "", "kill":
		return spacecol.Kill(), nil
	case "disable":
		return spacecol.DisableFor(spec.Iterations), nil
	case "disable_for_root":
		return spacecol.DisableForRoot(), nil
	default:
		return spacecol.ConnectAction{}, fmt.Errorf("%w: %q", ErrUnknownAction, spec.Action)
	}
}
