// Package output provides utilities for formatting and displaying pricing results.
package output

import (
	"fmt"

	"github.com/iwvelando/option-pricer/internal/mdp"
	"github.com/iwvelando/option-pricer/internal/pricing"
	"github.com/iwvelando/option-pricer/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ActionName returns the display name of an MDP action.
func ActionName(action int) string {
	if action == mdp.Exercise {
		return "exercise"
	}
	return "hold"
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(result *pricing.Result) {
	p := message.NewPrinter(language.English)
	model := result.Model

	fmt.Printf("--- American put (strike %.4f, initial price %.4f, %d steps) ---\n",
		model.Strike, model.InitialPrice, model.Steps)
	_, _ = p.Printf("Value at initial price:  %.6f\n", result.Value())
	_, _ = p.Printf("European put reference:  %.6f\n", result.European)

	fmt.Printf("\nPrice      | Value      | Intrinsic  | Action\n")
	fmt.Printf("_____      | _____      | _________  | ______\n")
	for i, price := range model.Prices {
		intrinsic := mathutil.Max(0, model.IntrinsicValue(price))
		_, _ = p.Printf("%10.4f | %10.6f | %10.6f | %s\n",
			price, result.Values[i], intrinsic, ActionName(result.Policy[i]))
	}

	fmt.Printf("\nTime to maturity | Exercise boundary\n")
	fmt.Printf("________________ | _________________\n")
	for _, point := range result.Boundary {
		if point.Exercised {
			_, _ = p.Printf("%16.4f | %17.4f\n", point.TimeToMaturity, point.Price)
		} else {
			_, _ = p.Printf("%16.4f | %17s\n", point.TimeToMaturity, "none")
		}
	}
}

// CsvFormat outputs in comma-separated value format: first the value
// function over the price grid, then the per-step exercise boundary.
func CsvFormat(result *pricing.Result) {
	model := result.Model

	fmt.Printf("\"price\",\"value\",\"intrinsic\",\"action\"\n")
	for i, price := range model.Prices {
		intrinsic := mathutil.Max(0, model.IntrinsicValue(price))
		fmt.Printf("\"%.6f\",\"%.6f\",\"%.6f\",\"%s\"\n",
			price, result.Values[i], intrinsic, ActionName(result.Policy[i]))
	}

	fmt.Printf("\n\"timeToMaturity\",\"exerciseBoundary\"\n")
	for _, point := range result.Boundary {
		if point.Exercised {
			fmt.Printf("\"%.6f\",\"%.6f\"\n", point.TimeToMaturity, point.Price)
		} else {
			fmt.Printf("\"%.6f\",\"\"\n", point.TimeToMaturity)
		}
	}
}
