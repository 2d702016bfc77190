// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/revenue-forecast/pkg/constants"
	"github.com/iwvelando/revenue-forecast/pkg/mathutil"
	"github.com/iwvelando/revenue-forecast/pkg/revenue"
)

// FindPoint finds the projection point for the given month.
// Returns a pointer to the point if found, nil otherwise.
func FindPoint(points []revenue.Point, month int) *revenue.Point {
	for i := range points {
		if points[i].Month == month {
			return &points[i]
		}
	}
	return nil
}

// FindContribution finds a stream contribution by stream id.
func FindContribution(contributions []revenue.StreamContribution, id string) *revenue.StreamContribution {
	for i := range contributions {
		if contributions[i].ID == id {
			return &contributions[i]
		}
	}
	return nil
}

// AlmostEqual reports whether two currency amounts agree within the
// package-wide currency tolerance.
func AlmostEqual(a, b float64) bool {
	return mathutil.WithinTolerance(a, b, constants.CurrencyTolerance)
}
