// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"
)

// MarketParameters holds the primitive inputs required to derive the lattice.
type MarketParameters struct {
	Volatility       float64
	RiskFreeRate     float64
	TimeToExpiration float64
	Strike           float64
	InitialPrice     float64
	Steps            int
}

// ValidateMarketParameters returns an error for any parameter value that
// would make the lattice derivation undefined (division by zero, NaN prices,
// or an empty lattice).
func ValidateMarketParameters(params MarketParameters) error {
	if params.Volatility <= 0 {
		return fmt.Errorf("volatility must be positive, got %v", params.Volatility)
	}
	if params.TimeToExpiration <= 0 {
		return fmt.Errorf("timeToExpiration must be positive, got %v", params.TimeToExpiration)
	}
	if params.Strike <= 0 {
		return fmt.Errorf("strike must be positive, got %v", params.Strike)
	}
	if params.InitialPrice <= 0 {
		return fmt.Errorf("initialPrice must be positive, got %v", params.InitialPrice)
	}
	if params.Steps < 1 {
		return fmt.Errorf("steps must be at least 1, got %d", params.Steps)
	}
	return nil
}

// ValidateUpProbability returns warnings when the derived risk-neutral
// up-probability falls outside [0,1]. The lattice still encodes rows that
// sum to one, but the resulting distribution carries negative mass and the
// solve is economically meaningless.
func ValidateUpProbability(upProb float64) []string {
	var warnings []string
	if upProb < 0 {
		warnings = append(warnings, fmt.Sprintf("up-probability %v is negative; increase steps or volatility relative to drift", upProb))
	}
	if upProb > 1 {
		warnings = append(warnings, fmt.Sprintf("up-probability %v exceeds 1; increase steps or volatility relative to drift", upProb))
	}
	return warnings
}
