// Package plot renders PNG summaries of a pricing result.
package plot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iwvelando/option-pricer/internal/pricing"
	"github.com/iwvelando/option-pricer/pkg/constants"
	"github.com/iwvelando/option-pricer/pkg/mathutil"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// WriteAll renders both plots into the given directory, creating it if
// necessary, and returns the paths written.
func WriteAll(result *pricing.Result, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create plot directory %s: %v", dir, err)
	}

	valuePath := filepath.Join(dir, constants.ValuePlotFile)
	if err := ValueFunction(result, valuePath); err != nil {
		return nil, err
	}
	boundaryPath := filepath.Join(dir, constants.BoundaryPlotFile)
	if err := ExerciseBoundary(result, boundaryPath); err != nil {
		return []string{valuePath}, err
	}
	return []string{valuePath, boundaryPath}, nil
}

// ValueFunction plots the computed value function against the price grid
// with the intrinsic payoff overlaid.
func ValueFunction(result *pricing.Result, path string) error {
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = "American put value"
	p.X.Label.Text = "asset price"
	p.Y.Label.Text = "option value"
	p.Add(plotter.NewGrid())

	model := result.Model
	values := make(plotter.XYs, len(model.Prices))
	intrinsic := make(plotter.XYs, len(model.Prices))
	for i, price := range model.Prices {
		values[i].X = price
		values[i].Y = result.Values[i]
		intrinsic[i].X = price
		intrinsic[i].Y = mathutil.Max(0, model.IntrinsicValue(price))
	}

	valueLine, err := plotter.NewLine(values)
	if err != nil {
		return err
	}
	intrinsicLine, err := plotter.NewLine(intrinsic)
	if err != nil {
		return err
	}
	intrinsicLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(valueLine, intrinsicLine)
	p.Legend.Add("value", valueLine)
	p.Legend.Add("intrinsic", intrinsicLine)

	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}

// ExerciseBoundary plots the optimal exercise price against time to
// maturity. Steps where no state prefers exercise are skipped.
func ExerciseBoundary(result *pricing.Result, path string) error {
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = "Optimal exercise boundary"
	p.X.Label.Text = "time to maturity (years)"
	p.Y.Label.Text = "exercise price"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, 0, len(result.Boundary))
	for _, point := range result.Boundary {
		if !point.Exercised {
			continue
		}
		pts = append(pts, plotter.XY{X: point.TimeToMaturity, Y: point.Price})
	}

	boundaryLine, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(boundaryLine)
	p.Legend.Add("boundary", boundaryLine)

	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}
