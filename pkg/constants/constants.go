// Package constants provides shared constants for the option-pricer application.
package constants

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)

// Numerical constants
const (
	// ProbabilityTolerance is the tolerance for probability-mass comparisons,
	// e.g. checking that a transition row sums to one
	ProbabilityTolerance = 1e-12

	// PriceTolerance is the tolerance for comparing option values and prices
	PriceTolerance = 1e-9

	// DefaultSteps is the default number of lattice periods when the
	// configuration does not specify one
	DefaultSteps = 100
)

// Plot output defaults
const (
	// DefaultPlotDirectory is where PNG plots are written when plotting is
	// enabled without an explicit directory
	DefaultPlotDirectory = "plots"

	// ValuePlotFile is the file name of the value-function plot
	ValuePlotFile = "value_function.png"

	// BoundaryPlotFile is the file name of the exercise-boundary plot
	BoundaryPlotFile = "exercise_boundary.png"
)
