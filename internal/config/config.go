// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/iwvelando/option-pricer/pkg/constants"
	"github.com/iwvelando/option-pricer/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for option-pricer.
type Configuration struct {
	Option  OptionConfig
	Market  MarketConfig
	Model   ModelConfig
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
	Plots   PlotConfig    `yaml:"plots,omitempty"`
}

// OptionConfig holds the contract terms of the American put being priced.
type OptionConfig struct {
	Strike           float64
	InitialPrice     float64
	TimeToExpiration float64 // years
}

// MarketConfig holds the continuous-time market parameters.
type MarketConfig struct {
	Volatility   float64 // annualized
	RiskFreeRate float64 // annualized, continuously compounded
}

// ModelConfig holds the discretization parameters.
type ModelConfig struct {
	Steps int // number of lattice periods to expiration
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// PlotConfig holds plot rendering configuration options
type PlotConfig struct {
	Enabled   bool   `yaml:"enabled,omitempty"`
	Directory string `yaml:"directory,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")
	viper.SetDefault("model.steps", constants.DefaultSteps)
	viper.SetDefault("plots.directory", constants.DefaultPlotDirectory)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// MarketParameters collects the primitive lattice inputs for validation.
func (c *Configuration) MarketParameters() validation.MarketParameters {
	return validation.MarketParameters{
		Volatility:       c.Market.Volatility,
		RiskFreeRate:     c.Market.RiskFreeRate,
		TimeToExpiration: c.Option.TimeToExpiration,
		Strike:           c.Option.Strike,
		InitialPrice:     c.Option.InitialPrice,
		Steps:            c.Model.Steps,
	}
}

// Validate performs hard validation of the configuration; any error returned
// here means the lattice derivation would be undefined.
func (c *Configuration) Validate() error {
	return validation.ValidateMarketParameters(c.MarketParameters())
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings for parameter combinations that are legal but suspicious.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if c.Option.Strike <= c.Option.InitialPrice/2 {
		warnings = append(warnings, fmt.Sprintf(
			"strike %v is deep out of the money against initial price %v; the put value will be near zero",
			c.Option.Strike, c.Option.InitialPrice))
	}
	if c.Model.Steps < 10 {
		warnings = append(warnings, fmt.Sprintf(
			"steps %d is very coarse; the lattice may poorly approximate the continuous-time price",
			c.Model.Steps))
	}

	return warnings
}
