package revenue

import (
	"github.com/iwvelando/revenue-forecast/pkg/mathutil"
)

// Summary holds the headline figures of a projection.
type Summary struct {
	TotalInvestment float64 `json:"totalInvestment"`
	MonthlyRevenue  float64 `json:"monthlyRevenue"`
	TotalReturns    float64 `json:"totalReturns"`
	ROI             float64 `json:"roi"`
}

// Summarize reports the final month of points against the principal. Money
// figures are rounded to cents; ROI is left unrounded.
func Summarize(principal float64, points []Point) Summary {
	summary := Summary{TotalInvestment: mathutil.NonNegative(principal)}
	if len(points) == 0 {
		return summary
	}
	final := points[len(points)-1]
	summary.MonthlyRevenue = mathutil.Round(final.Monthly)
	summary.TotalReturns = mathutil.Round(final.Cumulative)
	summary.ROI = final.ROI
	return summary
}

// ChartHeights scales each month's cumulative revenue to a percentage of the
// final cumulative revenue. All bars are 0 when less than a cent accrues.
func ChartHeights(points []Point) []float64 {
	heights := make([]float64, len(points))
	if len(points) == 0 {
		return heights
	}
	final := points[len(points)-1].Cumulative
	if mathutil.IsZero(final) {
		return heights
	}
	for i, p := range points {
		heights[i] = mathutil.CalculatePercentage(p.Cumulative, final)
	}
	return heights
}

// AxisLabels returns the month ticks shown under the chart: the start, the
// midpoint and the end of the period.
func AxisLabels(period int) []int {
	if period < 0 {
		period = 0
	}
	return []int{0, period / 2, period}
}
