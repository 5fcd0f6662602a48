package scenario_test

import (
	"fmt"

	"github.com/ramify-go/ramify/scenario"
)

////////////////////////////////////////////////////////////////////////////////
// Example: a complete run from one YAML document
////////////////////////////////////////////////////////////////////////////////

// ExampleScenario_Run declares a root and one attraction point ten
// units away, then runs the growth to contact under a step budget.
// Scenario:
//
//   - Attraction radius 20: the root is pulled from the first step
//   - Connect radius 1, move distance 1: the chain advances one unit
//     per step and the final node kills the attractor on contact
func ExampleScenario_Run() {
	doc := `
move_distance: 1
attract_radius: 20
connect_radius: 1
steps: 200
roots:
  - position: [0, 0]
attractors:
  - position: [10, 0]
    payload: vessel-end
`
	s, err := scenario.Parse([]byte(doc))
	if err != nil {
		panic(err)
	}
	eng, steps, err := s.Run()
	if err != nil {
		panic(err)
	}

	fmt.Println("steps:", steps)
	fmt.Println("nodes:", eng.NodeCount())
	fmt.Println("attractors:", eng.AttractorCount())

	// Output:
	// steps: 11
	// nodes: 11
	// attractors: 0
}
