// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/option-pricer/internal/config"
)

// ReferenceConfiguration returns the textbook parameter set used throughout
// the tests: half a year to expiration, 20% volatility, 5% risk-free rate,
// strike 2.1 against an initial price of 2, and 100 lattice periods.
func ReferenceConfiguration() config.Configuration {
	return config.Configuration{
		Option: config.OptionConfig{
			Strike:           2.1,
			InitialPrice:     2.0,
			TimeToExpiration: 0.5,
		},
		Market: config.MarketConfig{
			Volatility:   0.2,
			RiskFreeRate: 0.05,
		},
		Model: config.ModelConfig{
			Steps: 100,
		},
	}
}
