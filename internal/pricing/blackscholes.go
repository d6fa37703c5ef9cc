package pricing

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// EuropeanPut returns the Black-Scholes value of a European put with the
// given spot, strike, continuously compounded risk-free rate, annualized
// volatility, and time to expiration in years. It serves as a reference
// value: an American put is always worth at least the European put on the
// same terms.
func EuropeanPut(spot, strike, rate, vol, expiry float64) float64 {
	norm := distuv.UnitNormal
	d1 := (math.Log(spot/strike) + (rate+vol*vol/2)*expiry) / (vol * math.Sqrt(expiry))
	d2 := d1 - vol*math.Sqrt(expiry)
	return strike*math.Exp(-rate*expiry)*norm.CDF(-d2) - spot*norm.CDF(-d1)
}
