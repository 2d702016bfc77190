package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Round up", 1.236, 1.24},
		{"Round down", 1.234, 1.23},
		{"No rounding needed", 1.23, 1.23},
		{"Large number", 12345.678, 12345.68},
		{"Negative number", -1.236, -1.24},
		{"Zero", 0.0, 0.0},
		{"Very small positive", 0.001, 0.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected bool
	}{
		{"Exactly zero", 0.0, true},
		{"Very small positive", 0.001, true},
		{"Very small negative", -0.001, true},
		{"Just above tolerance", 0.02, false},
		{"Large negative", -100.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsZero(tt.input); result != tt.expected {
				t.Errorf("IsZero(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestCalculatePercentage(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		total    float64
		expected float64
	}{
		{"Half", 50, 100, 50},
		{"Greater than total", 2500, 10000, 25},
		{"Zero total", 100, 0, 0},
		{"Zero value", 0, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculatePercentage(tt.value, tt.total)
			if math.IsNaN(result) || math.IsInf(result, 0) {
				t.Fatalf("CalculatePercentage(%v, %v) returned non-finite %v", tt.value, tt.total, result)
			}
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("CalculatePercentage(%v, %v) = %v, expected %v", tt.value, tt.total, result, tt.expected)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(1.0, 1.005, 0.01) {
		t.Error("expected values within tolerance")
	}
	if WithinTolerance(1.0, 1.5, 0.01) {
		t.Error("expected values outside tolerance")
	}
}

func TestClampInt(t *testing.T) {
	tests := []struct {
		name     string
		value    int
		expected int
	}{
		{"Below minimum", 0, 1},
		{"Negative", -5, 1},
		{"In range", 12, 12},
		{"At maximum", 36, 36},
		{"Above maximum", 48, 36},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := ClampInt(tt.value, 1, 36); result != tt.expected {
				t.Errorf("ClampInt(%d, 1, 36) = %d, expected %d", tt.value, result, tt.expected)
			}
		})
	}
}

func TestNonNegative(t *testing.T) {
	if NonNegative(-1) != 0 {
		t.Error("expected negative value to clamp to 0")
	}
	if NonNegative(math.NaN()) != 0 {
		t.Error("expected NaN to clamp to 0")
	}
	if NonNegative(42.5) != 42.5 {
		t.Error("expected positive value to pass through")
	}
}
