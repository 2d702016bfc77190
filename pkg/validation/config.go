// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"
	"math"

	"github.com/iwvelando/revenue-forecast/pkg/constants"
	"github.com/iwvelando/revenue-forecast/pkg/revenue"
)

// ValidateCalculator checks the calculator inputs and returns warnings for
// values the calculator will clamp or that look unintended. None of them
// prevent a projection.
func ValidateCalculator(principal float64, period int, streams []revenue.Stream) []string {
	var warnings []string

	if principal < 0 || math.IsNaN(principal) {
		warnings = append(warnings, fmt.Sprintf("Principal %v is negative and will be treated as 0", principal))
	} else if principal == 0 {
		warnings = append(warnings, "Principal is 0 - every month will project no revenue")
	}

	if period < constants.MinPeriodMonths || period > constants.MaxPeriodMonths {
		warnings = append(warnings, fmt.Sprintf("Period %d months is outside [%d, %d] and will be clamped",
			period, constants.MinPeriodMonths, constants.MaxPeriodMonths))
	}

	warnings = append(warnings, ValidateStreams(streams)...)
	return warnings
}

// ValidateStreams checks stream identifiers and rates.
func ValidateStreams(streams []revenue.Stream) []string {
	var warnings []string

	seen := make(map[string]struct{}, len(streams))
	for i, stream := range streams {
		label := stream.ID
		if label == "" {
			label = fmt.Sprintf("#%d", i)
			warnings = append(warnings, fmt.Sprintf("Stream %s has no id and cannot be toggled", label))
		} else if _, dup := seen[stream.ID]; dup {
			warnings = append(warnings, fmt.Sprintf("Stream id '%s' is used more than once - toggling affects every match", stream.ID))
		}
		seen[stream.ID] = struct{}{}

		if stream.MonthlyBase < 0 {
			warnings = append(warnings, fmt.Sprintf("Stream '%s' has a negative monthly base (%v)", label, stream.MonthlyBase))
		}
		if stream.GrowthRate < 0 {
			warnings = append(warnings, fmt.Sprintf("Stream '%s' has a negative growth rate (%v)", label, stream.GrowthRate))
		}
	}

	if len(streams) > 0 && len(revenue.EnabledStreams(streams)) == 0 {
		warnings = append(warnings, "No revenue streams are enabled - every month will project no revenue")
	}

	return warnings
}
