// Package pricing runs the finite-horizon backward induction over the MDP
// encoding of the American put and collects the results.
package pricing

import (
	"github.com/iwvelando/option-pricer/internal/config"
	"github.com/iwvelando/option-pricer/internal/lattice"
	"github.com/iwvelando/option-pricer/internal/mdp"
	"github.com/iwvelando/option-pricer/pkg/validation"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// BoundaryPoint records the optimal exercise boundary after one backward
// step. Exercised is false when no state prefers exercise at that step.
type BoundaryPoint struct {
	Step           int
	TimeToMaturity float64
	Price          float64
	Exercised      bool
}

// Result holds everything produced by one solve.
type Result struct {
	Model    *lattice.Model
	Values   []float64 // final value function over grid states
	Policy   []int     // greedy action per grid state at the final step
	Boundary []BoundaryPoint
	European float64 // Black-Scholes European put reference at the initial price
}

// Value returns the computed option value at the initial price.
func (r *Result) Value() float64 {
	return r.Values[r.Model.InitialIndex()]
}

// Price builds the lattice and MDP encoding from the configuration and runs
// exactly Steps backward-induction iterations from a zero terminal value.
// There is no convergence check; the horizon is finite by construction.
func Price(logger *zap.Logger, conf config.Configuration) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	model, err := lattice.New(conf)
	if err != nil {
		return nil, err
	}
	for _, warning := range validation.ValidateUpProbability(model.UpProb) {
		logger.Warn("Lattice warning: "+warning,
			zap.String("op", "pricing.Price"),
		)
	}
	logger.Debug("derived lattice parameters",
		zap.String("op", "pricing.Price"),
		zap.Float64("tau", model.Tau),
		zap.Float64("discount", model.Discount),
		zap.Float64("upFactor", model.UpFactor),
		zap.Float64("upProb", model.UpProb),
	)

	problem := mdp.NewPutProblem(model)
	op := mdp.NewOperator(problem)

	value := mat.NewVecDense(problem.NumStates, nil)
	var policy []int
	boundary := make([]BoundaryPoint, 0, model.Steps)
	for step := 0; step < model.Steps; step++ {
		value, policy = op.Step(value)
		boundary = append(boundary, exerciseBoundary(model, policy, step))
	}

	values := make([]float64, len(model.Prices))
	for i := range values {
		values[i] = value.AtVec(i)
	}

	result := &Result{
		Model:    model,
		Values:   values,
		Policy:   policy[:len(model.Prices)],
		Boundary: boundary,
		European: EuropeanPut(model.InitialPrice, model.Strike,
			conf.Market.RiskFreeRate, conf.Market.Volatility, conf.Option.TimeToExpiration),
	}
	logger.Debug("completed backward induction",
		zap.String("op", "pricing.Price"),
		zap.Int("steps", model.Steps),
		zap.Float64("value", result.Value()),
		zap.Float64("european", result.European),
	)

	return result, nil
}

// exerciseBoundary finds the highest-indexed grid state whose greedy action
// is exercise. The put's exercise region sits at the low end of the grid, so
// that state marks the region's upper edge.
func exerciseBoundary(model *lattice.Model, policy []int, step int) BoundaryPoint {
	point := BoundaryPoint{
		Step:           step,
		TimeToMaturity: float64(step+1) * model.Tau,
	}
	for i := len(model.Prices) - 1; i >= 0; i-- {
		if policy[i] == mdp.Exercise {
			point.Price = model.Prices[i]
			point.Exercised = true
			break
		}
	}
	return point
}
