package output

import (
	"testing"
)

func TestRoundFloat(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"round up", 0.1234567, 0.123457},
		{"round down", 0.1234564, 0.123456},
		{"no rounding needed", 0.6, 0.6},
		{"accumulated error", 1 - 0.4*3/4, 0.7},
		{"zero", 0, 0},
		{"negative", -0.123456789, -0.123457},
		{"importance", 2.5, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundFloat(tt.input); got != tt.want {
				t.Errorf("RoundFloat(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{1.0, "1"},
		{0.6, "0.6"},
		{3.5, "3.5"},
		{0.0123456789, "0.012346"},
		{0, "0"},
		{1e-9, "0"},
	}

	for _, tt := range tests {
		if got := FormatFloat(tt.input); got != tt.want {
			t.Errorf("FormatFloat(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
