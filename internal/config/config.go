// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/revenue-forecast/pkg/constants"
	"github.com/iwvelando/revenue-forecast/pkg/revenue"
	"github.com/iwvelando/revenue-forecast/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for revenue-forecast.
type Configuration struct {
	Calculator Calculator    `yaml:"calculator"`
	Logging    LoggingConfig `yaml:"logging,omitempty"`
	Output     OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" env:"LEVEL"`            // debug, info, warn, error
	Format     string `yaml:"format,omitempty" env:"FORMAT"`          // json, console
	OutputFile string `yaml:"outputFile,omitempty" env:"OUTPUT_FILE"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format    string `yaml:"format,omitempty"` // pretty, csv, table
	Breakdown bool   `yaml:"breakdown,omitempty"`
}

// Calculator holds the staking inputs and the revenue streams to project.
type Calculator struct {
	Principal float64          `yaml:"principal"`
	Period    int              `yaml:"period"`
	Streams   []revenue.Stream `yaml:"streams"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(strings.TrimSuffix(constants.EnvPrefix, "_"))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("calculator.principal", constants.DefaultPrincipal)
	v.SetDefault("calculator.period", constants.DefaultPeriodMonths)
	v.SetDefault("output.format", constants.OutputFormatPretty)
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	if len(configuration.Calculator.Streams) == 0 {
		configuration.Calculator.Streams = revenue.DefaultStreams()
	}

	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	return validation.ValidateCalculator(c.Calculator.Principal, c.Calculator.Period, c.Calculator.Streams)
}

// Inputs returns the clamped calculator snapshot described by the configuration.
func (c *Configuration) Inputs() revenue.Inputs {
	return revenue.NewInputs(c.Calculator.Principal, c.Calculator.Period, c.Calculator.Streams)
}

// ApplyToggles flips each listed stream in order. Unknown ids are returned
// so the caller can report them.
func (c *Configuration) ApplyToggles(ids []string) []string {
	var unknown []string
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if revenue.FindStream(c.Calculator.Streams, id) == nil {
			unknown = append(unknown, id)
			continue
		}
		c.Calculator.Streams = revenue.ToggleStream(c.Calculator.Streams, id)
	}
	return unknown
}
