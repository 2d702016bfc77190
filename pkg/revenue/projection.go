package revenue

import (
	"math"

	"github.com/iwvelando/revenue-forecast/pkg/mathutil"
)

// Point is one month of a projection.
type Point struct {
	Month      int     `json:"month"`
	Monthly    float64 `json:"monthly"`
	Cumulative float64 `json:"cumulative"`
	ROI        float64 `json:"roi"`
}

// Project computes the revenue series for months 0 through periodMonths
// inclusive, so the result always has periodMonths+1 points.
//
// Each enabled stream contributes principal * MonthlyBase * GrowthRate^m in
// month m. ROI is cumulative revenue as a percentage of principal and is 0
// when principal is 0. Negative inputs are treated as 0.
func Project(principal float64, periodMonths int, streams []Stream) []Point {
	principal = mathutil.NonNegative(principal)
	if periodMonths < 0 {
		periodMonths = 0
	}

	points := make([]Point, 0, periodMonths+1)
	cumulative := 0.0
	for month := 0; month <= periodMonths; month++ {
		monthly := 0.0
		for _, stream := range streams {
			if !stream.Enabled {
				continue
			}
			base := principal * stream.MonthlyBase
			monthly += base * math.Pow(stream.GrowthRate, float64(month))
		}

		cumulative += monthly
		points = append(points, Point{
			Month:      month,
			Monthly:    monthly,
			Cumulative: cumulative,
			ROI:        mathutil.CalculatePercentage(cumulative, principal),
		})
	}

	return points
}

// StreamContribution is one stream's share of a projection.
type StreamContribution struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Monthly []float64 `json:"monthly"`
	Total   float64   `json:"total"`
}

// Contributions splits the projection by enabled stream, in stream order.
// The per-month values of all contributions sum to the Monthly of the
// matching Point from Project.
func Contributions(principal float64, periodMonths int, streams []Stream) []StreamContribution {
	var contributions []StreamContribution
	for _, stream := range EnabledStreams(streams) {
		points := Project(principal, periodMonths, []Stream{stream})
		c := StreamContribution{
			ID:      stream.ID,
			Name:    stream.Name,
			Monthly: make([]float64, len(points)),
		}
		for i, p := range points {
			c.Monthly[i] = p.Monthly
		}
		if len(points) > 0 {
			c.Total = points[len(points)-1].Cumulative
		}
		contributions = append(contributions, c)
	}
	return contributions
}
