package mathutil

import (
	"testing"
)

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		name      string
		val1      float64
		val2      float64
		tolerance float64
		expected  bool
	}{
		{"Equal values", 1.0, 1.0, 0.001, true},
		{"Within tolerance", 1.0, 1.0005, 0.001, true},
		{"Outside tolerance", 1.0, 1.002, 0.001, false},
		{"Exactly at tolerance", 1.0, 1.001, 0.001, true},
		{"Negative values", -1.0, -1.0005, 0.001, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := WithinTolerance(tt.val1, tt.val2, tt.tolerance)
			if result != tt.expected {
				t.Errorf("WithinTolerance(%v, %v, %v) = %v, expected %v",
					tt.val1, tt.val2, tt.tolerance, result, tt.expected)
			}
		})
	}
}

func TestIsProbability(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected bool
	}{
		{"Zero", 0.0, true},
		{"One", 1.0, true},
		{"Half", 0.5, true},
		{"Slightly negative within tolerance", -1e-13, true},
		{"Negative", -0.1, false},
		{"Above one", 1.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsProbability(tt.input)
			if result != tt.expected {
				t.Errorf("IsProbability(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestMinMax(t *testing.T) {
	if got := Min(1.5, 2.5); got != 1.5 {
		t.Errorf("Min(1.5, 2.5) = %v, expected 1.5", got)
	}
	if got := Min(-1, -2); got != -2 {
		t.Errorf("Min(-1, -2) = %v, expected -2", got)
	}
	if got := Max(1.5, 2.5); got != 2.5 {
		t.Errorf("Max(1.5, 2.5) = %v, expected 2.5", got)
	}
	if got := Max(-1, -2); got != -1 {
		t.Errorf("Max(-1, -2) = %v, expected -1", got)
	}
}

func TestClampIndex(t *testing.T) {
	tests := []struct {
		name     string
		index    int
		last     int
		expected int
	}{
		{"Within range", 5, 10, 5},
		{"Below range", -1, 10, 0},
		{"Above range", 11, 10, 10},
		{"At lower edge", 0, 10, 0},
		{"At upper edge", 10, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ClampIndex(tt.index, tt.last)
			if result != tt.expected {
				t.Errorf("ClampIndex(%d, %d) = %d, expected %d",
					tt.index, tt.last, result, tt.expected)
			}
		})
	}
}
