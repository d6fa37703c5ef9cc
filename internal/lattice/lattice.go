// Package lattice derives the discrete-time binomial price model from the
// continuous-time market parameters.
package lattice

import (
	"math"

	"github.com/iwvelando/option-pricer/internal/config"
)

// Model holds the derived lattice parameters and the price grid. It is
// immutable once constructed.
type Model struct {
	Steps        int
	Tau          float64 // length of one period in years
	Discount     float64 // per-period discount factor exp(-r*tau)
	UpFactor     float64
	UpProb       float64 // risk-neutral probability of an up move
	Strike       float64
	InitialPrice float64
	Prices       []float64 // 2*Steps+1 prices in ascending order
}

// New derives the lattice from the configuration. The grid spans Steps up
// moves and Steps down moves around the initial price, so every price
// reachable within the horizon has a grid point.
func New(conf config.Configuration) (*Model, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	steps := conf.Model.Steps
	vol := conf.Market.Volatility
	rate := conf.Market.RiskFreeRate

	tau := conf.Option.TimeToExpiration / float64(steps)
	up := math.Exp(vol * math.Sqrt(tau))
	upProb := 0.5 + math.Sqrt(tau)*(rate-math.Pow(vol, 2)/2)/(2*vol)

	prices := make([]float64, 2*steps+1)
	for i := range prices {
		prices[i] = conf.Option.InitialPrice * math.Pow(up, float64(i-steps))
	}

	return &Model{
		Steps:        steps,
		Tau:          tau,
		Discount:     math.Exp(-rate * tau),
		UpFactor:     up,
		UpProb:       upProb,
		Strike:       conf.Option.Strike,
		InitialPrice: conf.Option.InitialPrice,
		Prices:       prices,
	}, nil
}

// InitialIndex returns the grid index of the initial price.
func (m *Model) InitialIndex() int {
	return m.Steps
}

// IntrinsicValue returns the immediate payoff of exercising the put at the
// given price. Not floored at zero; callers that need the economic payoff
// floor it themselves.
func (m *Model) IntrinsicValue(price float64) float64 {
	return m.Strike - price
}
