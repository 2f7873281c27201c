package core

import (
	"image/color"
	"math"
	"testing"
)

func TestColor_Scale(t *testing.T) {
	tests := []struct {
		name     string
		color    Color
		k        float64
		expected Color
	}{
		{
			name:     "Half intensity darkens every channel",
			color:    NewColor(255, 128, 64),
			k:        0.5,
			expected: NewColor(127.5, 64, 32),
		},
		{
			name:     "Zero intensity is black",
			color:    Teal,
			k:        0,
			expected: NewColor(0, 0, 0),
		},
		{
			name:     "Intensity above one overshoots 255",
			color:    Red,
			k:        1.6,
			expected: NewColor(408, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const tolerance = 1e-9
			result := tt.color.Scale(tt.k)
			if math.Abs(result.R-tt.expected.R) > tolerance ||
				math.Abs(result.G-tt.expected.G) > tolerance ||
				math.Abs(result.B-tt.expected.B) > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestColor_Clamp(t *testing.T) {
	tests := []struct {
		name     string
		color    Color
		expected Color
	}{
		{
			name:     "In-range color is unchanged",
			color:    NewColor(12, 99.5, 255),
			expected: NewColor(12, 99.5, 255),
		},
		{
			name:     "Over-bright channels saturate at 255",
			color:    NewColor(408, 256, 100),
			expected: NewColor(255, 255, 100),
		},
		{
			name:     "Negative channels clamp to zero",
			color:    NewColor(-20, 50, -0.5),
			expected: NewColor(0, 50, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.color.Clamp()
			if result != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestColor_RGBA(t *testing.T) {
	tests := []struct {
		name     string
		color    Color
		expected color.RGBA
	}{
		{
			name:     "In-range channels pass through",
			color:    NewColor(255, 128, 0),
			expected: color.RGBA{R: 255, G: 128, B: 0, A: 255},
		},
		{
			name:     "Fractional channels truncate",
			color:    NewColor(127.9, 0.5, 254.1),
			expected: color.RGBA{R: 127, G: 0, B: 254, A: 255},
		},
		{
			name:     "Out-of-range channels saturate",
			color:    NewColor(408, -20, 256),
			expected: color.RGBA{R: 255, G: 0, B: 255, A: 255},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.color.RGBA()
			if result != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}
