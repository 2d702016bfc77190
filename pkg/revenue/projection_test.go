package revenue

import (
	"math"
	"testing"
)

const epsilon = 1e-6

func twoStreamScenario() []Stream {
	return []Stream{
		{ID: "inference", Enabled: true, MonthlyBase: 0.08, GrowthRate: 1.05},
		{ID: "gpu", Enabled: true, MonthlyBase: 0.06, GrowthRate: 1.15},
		{ID: "gaming", Enabled: false, MonthlyBase: 0.04, GrowthRate: 1.03},
	}
}

func TestProjectLength(t *testing.T) {
	tests := []struct {
		name   string
		period int
		want   int
	}{
		{"Zero period", 0, 1},
		{"One month", 1, 2},
		{"One year", 12, 13},
		{"Maximum slider", 36, 37},
		{"Negative period", -3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := Project(10000, tt.period, DefaultStreams())
			if len(points) != tt.want {
				t.Fatalf("len(Project(_, %d, _)) = %d, expected %d", tt.period, len(points), tt.want)
			}
			for i, p := range points {
				if p.Month != i {
					t.Errorf("point %d has month %d", i, p.Month)
				}
			}
		})
	}
}

func TestProjectScenario(t *testing.T) {
	points := Project(10000, 12, twoStreamScenario())

	if math.Abs(points[0].Monthly-1400) > epsilon {
		t.Errorf("monthly(0) = %.6f, expected 1400", points[0].Monthly)
	}
	if math.Abs(points[1].Monthly-1530) > epsilon {
		t.Errorf("monthly(1) = %.6f, expected 1530", points[1].Monthly)
	}
	if math.Abs(points[1].Cumulative-2930) > epsilon {
		t.Errorf("cumulative(1) = %.6f, expected 2930", points[1].Cumulative)
	}
	if math.Abs(points[1].ROI-29.3) > epsilon {
		t.Errorf("roi(1) = %.6f, expected 29.3", points[1].ROI)
	}

	expectedMonth12 := 800*math.Pow(1.05, 12) + 600*math.Pow(1.15, 12)
	if math.Abs(points[12].Monthly-expectedMonth12) > epsilon {
		t.Errorf("monthly(12) = %.6f, expected %.6f", points[12].Monthly, expectedMonth12)
	}
}

func TestProjectCumulativeInvariant(t *testing.T) {
	points := Project(25000, 36, DefaultStreams())

	if points[0].Cumulative != points[0].Monthly {
		t.Fatalf("cumulative(0) = %v, expected monthly(0) = %v", points[0].Cumulative, points[0].Monthly)
	}
	for m := 1; m < len(points); m++ {
		want := points[m-1].Cumulative + points[m].Monthly
		if math.Abs(points[m].Cumulative-want) > epsilon {
			t.Errorf("cumulative(%d) = %v, expected %v", m, points[m].Cumulative, want)
		}
		if points[m].Cumulative < points[m-1].Cumulative {
			t.Errorf("cumulative decreased at month %d", m)
		}
		wantROI := points[m].Cumulative / 25000 * 100
		if math.Abs(points[m].ROI-wantROI) > epsilon {
			t.Errorf("roi(%d) = %v, expected %v", m, points[m].ROI, wantROI)
		}
	}
}

func TestProjectAllDisabled(t *testing.T) {
	streams := DefaultStreams()
	for i := range streams {
		streams[i].Enabled = false
	}

	for _, p := range Project(10000, 24, streams) {
		if p.Monthly != 0 || p.Cumulative != 0 || p.ROI != 0 {
			t.Fatalf("month %d: expected all zeros, got %+v", p.Month, p)
		}
	}
}

func TestProjectZeroPrincipal(t *testing.T) {
	for _, p := range Project(0, 12, DefaultStreams()) {
		if p.Monthly != 0 {
			t.Errorf("month %d: monthly = %v, expected 0", p.Month, p.Monthly)
		}
		if math.IsNaN(p.ROI) || math.IsInf(p.ROI, 0) {
			t.Fatalf("month %d: roi is non-finite", p.Month)
		}
		if p.ROI != 0 {
			t.Errorf("month %d: roi = %v, expected 0", p.Month, p.ROI)
		}
	}
}

func TestProjectNegativePrincipalTreatedAsZero(t *testing.T) {
	for _, p := range Project(-500, 3, DefaultStreams()) {
		if p.Monthly != 0 || p.ROI != 0 {
			t.Fatalf("month %d: expected zeros for negative principal, got %+v", p.Month, p)
		}
	}
}

func TestProjectROIIndependentOfPrincipal(t *testing.T) {
	principals := []float64{1, 1000, 10000, 50000, 1234567.89}
	reference := Project(principals[0], 36, DefaultStreams())

	for _, principal := range principals[1:] {
		points := Project(principal, 36, DefaultStreams())
		for m := range points {
			if math.Abs(points[m].ROI-reference[m].ROI) > 1e-9*math.Max(1, reference[m].ROI) {
				t.Errorf("principal %.2f month %d: roi = %v, expected %v", principal, m, points[m].ROI, reference[m].ROI)
			}
		}
	}
}

func TestProjectDeterministic(t *testing.T) {
	streams := DefaultStreams()
	first := Project(10000, 12, streams)
	second := Project(10000, 12, streams)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("month %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestContributions(t *testing.T) {
	streams := twoStreamScenario()
	contributions := Contributions(10000, 12, streams)
	if len(contributions) != 2 {
		t.Fatalf("expected 2 contributions, got %d", len(contributions))
	}
	if contributions[0].ID != "inference" || contributions[1].ID != "gpu" {
		t.Errorf("unexpected contribution order: %s, %s", contributions[0].ID, contributions[1].ID)
	}

	points := Project(10000, 12, streams)
	for m, p := range points {
		sum := contributions[0].Monthly[m] + contributions[1].Monthly[m]
		if math.Abs(sum-p.Monthly) > epsilon {
			t.Errorf("month %d: contributions sum to %v, expected %v", m, sum, p.Monthly)
		}
	}

	total := contributions[0].Total + contributions[1].Total
	if math.Abs(total-points[12].Cumulative) > epsilon {
		t.Errorf("contribution totals = %v, expected %v", total, points[12].Cumulative)
	}
}
