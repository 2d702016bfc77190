// Package forecast defines the data structures related to a given forecast and
// includes functions for computing the forecasts.
package forecast

import (
	"fmt"
	"math"

	"github.com/iwvelando/revenue-forecast/internal/config"
	"github.com/iwvelando/revenue-forecast/pkg/format"
	"github.com/iwvelando/revenue-forecast/pkg/revenue"
	"go.uber.org/zap"
)

// Forecast holds all information related to a specific forecast.
type Forecast struct {
	Inputs        revenue.Inputs
	Points        []revenue.Point
	Summary       revenue.Summary
	Heights       []float64
	AxisLabels    []int
	Contributions []revenue.StreamContribution
	Notes         map[int][]string
}

// GetForecast projects the revenue described by conf.
func GetForecast(logger *zap.Logger, conf config.Configuration) (Forecast, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Compute(logger, conf.Inputs())
}

// Compute projects the given calculator snapshot.
func Compute(logger *zap.Logger, inputs revenue.Inputs) (Forecast, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	inputs = inputs.Clamp()
	enabled := revenue.EnabledStreams(inputs.Streams)
	for _, stream := range inputs.Streams {
		if !stream.Enabled {
			logger.Debug(fmt.Sprintf("skipping stream %s because it is disabled", stream.ID),
				zap.String("op", "forecast.Compute"),
			)
		}
	}

	points := inputs.Project()
	for _, p := range points {
		if !finite(p.Monthly) || !finite(p.Cumulative) || !finite(p.ROI) {
			return Forecast{}, fmt.Errorf("projection overflowed at month %d", p.Month)
		}
	}

	result := Forecast{
		Inputs:        inputs,
		Points:        points,
		Summary:       revenue.Summarize(inputs.Principal, points),
		Heights:       revenue.ChartHeights(points),
		AxisLabels:    revenue.AxisLabels(inputs.Period),
		Contributions: revenue.Contributions(inputs.Principal, inputs.Period, inputs.Streams),
		Notes:         make(map[int][]string),
	}

	if month, ok := BreakEvenMonth(points, inputs.Principal); ok {
		result.Notes[month] = append(result.Notes[month],
			fmt.Sprintf("cumulative revenue passes the %s principal", format.WholeCurrency(inputs.Principal)))
	}

	logger.Debug("forecast computed",
		zap.String("op", "forecast.Compute"),
		zap.Float64("principal", inputs.Principal),
		zap.Int("period", inputs.Period),
		zap.Int("enabledStreams", len(enabled)),
		zap.Float64("totalReturns", result.Summary.TotalReturns),
	)

	return result, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// BreakEvenMonth returns the first month whose cumulative revenue reaches
// the principal. A zero principal never breaks even.
func BreakEvenMonth(points []revenue.Point, principal float64) (int, bool) {
	if principal <= 0 {
		return 0, false
	}
	for _, p := range points {
		if p.Cumulative >= principal {
			return p.Month, true
		}
	}
	return 0, false
}
