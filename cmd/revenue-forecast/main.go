package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/iwvelando/revenue-forecast/internal/config"
	"github.com/iwvelando/revenue-forecast/internal/forecast"
	"github.com/iwvelando/revenue-forecast/internal/logging"
	"github.com/iwvelando/revenue-forecast/pkg/constants"
	"github.com/iwvelando/revenue-forecast/pkg/output"
	"github.com/iwvelando/revenue-forecast/pkg/revenue"
	"github.com/iwvelando/revenue-forecast/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, table")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	principal := flag.Float64("principal", constants.DefaultPrincipal, "stake amount override")
	period := flag.Int("period", constants.DefaultPeriodMonths, "projection period override in months")
	toggles := flag.String("toggle", "", "comma separated stream ids to toggle before projecting")
	breakdown := flag.Bool("breakdown", false, "print the revenue distribution breakdown")
	flag.Parse()

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := logging.New(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	if set["principal"] {
		conf.Calculator.Principal = *principal
	}
	if set["period"] {
		conf.Calculator.Period = *period
	}

	for _, id := range conf.ApplyToggles(splitIDs(*toggles)) {
		logger.Warn("unknown stream id ignored",
			zap.String("op", "main"),
			zap.String("id", id),
		)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	results, err := forecast.GetForecast(logger, *conf)
	if err != nil {
		logger.Fatal("failed to compute forecast",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(results)
	case constants.OutputFormatCSV:
		output.CsvFormat(results)
	case constants.OutputFormatTable:
		output.TableFormat(results)
	}

	if *breakdown || conf.Output.Breakdown {
		output.BreakdownFormat(revenue.DefaultDistribution())
	}
}

func splitIDs(raw string) []string {
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
