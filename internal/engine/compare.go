package engine

import (
	"fmt"

	"github.com/piwi3910/AngleCut/internal/model"
)

// ComparisonScenario defines a named request variant to compare.
type ComparisonScenario struct {
	Name    string
	Request model.RunRequest
}

// ComparisonResult holds the optimization outcome and headline statistics
// for a single scenario. Err is set when the scenario could not be planned.
type ComparisonResult struct {
	Scenario      ComparisonScenario
	Result        model.RunResult
	TotalBrackets int
	PieceCount    int
	UniqueLengths int
	Score         float64
	Err           error
}

// CompareScenarios plans each scenario and returns the results in scenario
// order, enabling side-by-side comparison of what-if hardware parameters.
func CompareScenarios(scenarios []ComparisonScenario) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		res := ComparisonResult{Scenario: scenario}
		result, err := New(scenario.Request).Optimize()
		if err != nil {
			res.Err = err
		} else {
			res.Result = result
			res.TotalBrackets = result.Optimal.TotalBrackets
			res.PieceCount = result.Optimal.PieceCount
			res.UniqueLengths = result.Optimal.UniqueLengths
			res.Score = result.Optimal.Score
		}
		results = append(results, res)
	}

	return results
}

// BuildDefaultScenarios generates comparison scenarios from a base request,
// varying the parameters an installer can actually change on site.
func BuildDefaultScenarios(base model.RunRequest) []ComparisonScenario {
	base = base.WithDefaults()
	scenarios := []ComparisonScenario{
		{Name: "Current hardware", Request: base},
	}

	// Scenario: shorter transportable stock.
	if base.MaxAngleLength > 1190 {
		short := base
		short.MaxAngleLength = 1190
		scenarios = append(scenarios, ComparisonScenario{
			Name:    "Short stock (1190mm)",
			Request: short,
		})
	}

	// Scenario: relaxed edge window, allowing brackets further from ends.
	relaxed := base
	relaxed.MaxEdgeDistance = 0.6 * base.BracketCentres
	scenarios = append(scenarios, ComparisonScenario{
		Name:    fmt.Sprintf("Relaxed edges (max %.0fmm)", relaxed.MaxEdgeDistance),
		Request: relaxed,
	})

	return scenarios
}
