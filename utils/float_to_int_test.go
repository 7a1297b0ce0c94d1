// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{
			name:  "zero",
			input: 0.0,
			want:  0,
		},
		{
			name:  "max positive",
			input: 1.0,
			want:  32767,
		},
		{
			name:  "max negative",
			input: -1.0,
			want:  -32767, // symmetric scale, -32768 is never produced
		},
		{
			name:  "half positive",
			input: 0.5,
			want:  16384, // 16383.5 rounds away from zero
		},
		{
			name:  "half negative",
			input: -0.5,
			want:  -16384,
		},
		{
			name:  "quarter positive",
			input: 0.25,
			want:  8192, // 8191.75
		},
		{
			name:  "small positive",
			input: 0.001,
			want:  33, // 32.767
		},
		{
			name:  "small negative",
			input: -0.001,
			want:  -33,
		},
		{
			name:  "largest float below one",
			input: math.Nextafter32(1, 0),
			want:  32767,
		},
		{
			name:  "clamp over max",
			input: 1.5,
			want:  32767,
		},
		{
			name:  "clamp over min",
			input: -1.5,
			want:  -32767,
		},
		{
			name:  "clamp way over max",
			input: 100.0,
			want:  32767,
		},
		{
			name:  "clamp way under min",
			input: -100.0,
			want:  -32767,
		},
		{
			name:  "max float32",
			input: math.MaxFloat32,
			want:  32767,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt16(tt.input); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestFloat32ToInt16_NonFinite pins the values chosen to keep the conversion total.
func TestFloat32ToInt16_NonFinite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{"NaN", float32(math.NaN()), 0},
		{"+Inf", float32(math.Inf(1)), 32767},
		{"-Inf", float32(math.Inf(-1)), -32767},
	}

	for _, tt := range tests {
		if got := Float32ToInt16(tt.input); got != tt.want {
			t.Errorf("Float32ToInt16(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

// TestFloat32ToInt16Range tests full range conversion
func TestFloat32ToInt16Range(t *testing.T) {
	t.Parallel()

	for f := float32(-1.0); f <= 1.0; f += 0.001 {
		got := Float32ToInt16(f)

		want := int16(math.Round(float64(f) * 32767))
		if got != want {
			t.Errorf("Float32ToInt16(%v) = %v, want %v", f, got, want)
		}

		if got < -32767 || got > 32767 {
			t.Errorf("Float32ToInt16(%v) = %v, outside [-32767, 32767]", f, got)
		}
	}
}

// TestFloat32ToInt16Saturation checks that out-of-range input never wraps.
func TestFloat32ToInt16Saturation(t *testing.T) {
	t.Parallel()

	for f := float32(1.0); f < 1e6; f *= 1.7 {
		if got := Float32ToInt16(f); got != 32767 {
			t.Errorf("Float32ToInt16(%v) = %v, want 32767", f, got)
		}
		if got := Float32ToInt16(-f); got != -32767 {
			t.Errorf("Float32ToInt16(%v) = %v, want -32767", -f, got)
		}
	}
}

// TestFloat32ToInt16Monotonic ensures larger input never produces smaller output
func TestFloat32ToInt16Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt16(-2)
	for f := float32(-2.0); f <= 2.0; f += 0.0005 {
		got := Float32ToInt16(f)
		if got < prev {
			t.Fatalf("Float32ToInt16(%v) = %v, less than previous %v", f, got, prev)
		}
		prev = got
	}
}

func BenchmarkFloat32ToInt16(b *testing.B) {
	for i := 0; b.Loop(); i++ {
		_ = Float32ToInt16(float32(i%2000)/1000 - 1)
	}
}
