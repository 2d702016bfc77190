package validation

import (
	"strings"
	"testing"

	"github.com/iwvelando/revenue-forecast/pkg/revenue"
)

func TestValidateCalculator(t *testing.T) {
	tests := []struct {
		name         string
		principal    float64
		period       int
		streams      []revenue.Stream
		expectWarn   int
		wantContains string
	}{
		{
			name:       "Defaults are clean",
			principal:  10000,
			period:     12,
			streams:    revenue.DefaultStreams(),
			expectWarn: 0,
		},
		{
			name:         "Negative principal",
			principal:    -1,
			period:       12,
			streams:      revenue.DefaultStreams(),
			expectWarn:   1,
			wantContains: "negative",
		},
		{
			name:         "Zero principal",
			principal:    0,
			period:       12,
			streams:      revenue.DefaultStreams(),
			expectWarn:   1,
			wantContains: "Principal is 0",
		},
		{
			name:         "Period above slider",
			principal:    10000,
			period:       48,
			streams:      revenue.DefaultStreams(),
			expectWarn:   1,
			wantContains: "clamped",
		},
		{
			name:         "Period zero",
			principal:    10000,
			period:       0,
			streams:      revenue.DefaultStreams(),
			expectWarn:   1,
			wantContains: "outside",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := ValidateCalculator(tt.principal, tt.period, tt.streams)
			if len(warnings) != tt.expectWarn {
				t.Fatalf("expected %d warnings, got %d: %v", tt.expectWarn, len(warnings), warnings)
			}
			if tt.wantContains != "" && !strings.Contains(warnings[0], tt.wantContains) {
				t.Errorf("warning %q does not contain %q", warnings[0], tt.wantContains)
			}
		})
	}
}

func TestValidateStreams(t *testing.T) {
	tests := []struct {
		name         string
		streams      []revenue.Stream
		expectWarn   int
		wantContains string
	}{
		{
			name:       "Empty set",
			streams:    nil,
			expectWarn: 0,
		},
		{
			name: "Duplicate ids",
			streams: []revenue.Stream{
				{ID: "a", Enabled: true, MonthlyBase: 0.1, GrowthRate: 1},
				{ID: "a", Enabled: true, MonthlyBase: 0.1, GrowthRate: 1},
			},
			expectWarn:   1,
			wantContains: "more than once",
		},
		{
			name: "Missing id",
			streams: []revenue.Stream{
				{Enabled: true, MonthlyBase: 0.1, GrowthRate: 1},
			},
			expectWarn:   1,
			wantContains: "no id",
		},
		{
			name: "Negative rates",
			streams: []revenue.Stream{
				{ID: "a", Enabled: true, MonthlyBase: -0.1, GrowthRate: -1},
			},
			expectWarn:   2,
			wantContains: "negative monthly base",
		},
		{
			name: "Nothing enabled",
			streams: []revenue.Stream{
				{ID: "a", MonthlyBase: 0.1, GrowthRate: 1},
			},
			expectWarn:   1,
			wantContains: "No revenue streams",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := ValidateStreams(tt.streams)
			if len(warnings) != tt.expectWarn {
				t.Fatalf("expected %d warnings, got %d: %v", tt.expectWarn, len(warnings), warnings)
			}
			if tt.wantContains != "" && !strings.Contains(warnings[0], tt.wantContains) {
				t.Errorf("warning %q does not contain %q", warnings[0], tt.wantContains)
			}
		})
	}
}
