package vmath

import (
	"math"
	"testing"
)

func TestIncrementRounding(t *testing.T) {
	tests := []struct {
		name      string
		fn        func(float64, float64) float64
		value     float64
		increment float64
		want      float64
	}{
		{"Ceil unit", Ceil, 1.2, 1, 2},
		{"Ceil negative", Ceil, -1.8, 1, -1},
		{"Ceil by 5", Ceil, 11, 5, 15},
		{"Ceil exact multiple", Ceil, 10, 5, 10},
		{"Floor unit", Floor, 1.8, 1, 1},
		{"Floor negative", Floor, -1.2, 1, -2},
		{"Floor by 5", Floor, 14, 5, 10},
		{"Floor by quarter", Floor, 0.6, 0.25, 0.5},
		{"Round unit", Round, 1.4, 1, 1},
		{"Round half up", Round, 2.5, 1, 3},
		{"Round negative half toward +Inf", Round, -2.5, 1, -2},
		{"Round by 5", Round, 12.4, 5, 10},
		{"Round by 5 half", Round, 12.5, 5, 15},
		{"Round by hundredth", Round, 3.14159, 0.01, 3.14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.value, tt.increment); !closeEnough(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIncrementRounding_ZeroIncrement(t *testing.T) {
	// 0 * ±Inf is NaN; the division result is passed through unguarded
	for _, fn := range []func(float64, float64) float64{Ceil, Floor, Round} {
		if got := fn(3, 0); !math.IsNaN(got) {
			t.Errorf("zero increment = %v, want NaN", got)
		}
	}
}

func TestIncrementRounding_Direction(t *testing.T) {
	rng := NewFastRand(7)
	for i := 0; i < 200; i++ {
		value := Random(rng, -100, 100, 1)
		increment := Random(rng, 0.5, 10, 1)
		if c := Ceil(value, increment); c < value-1e-9 {
			t.Fatalf("Ceil(%v, %v) = %v below value", value, increment, c)
		}
		if f := Floor(value, increment); f > value+1e-9 {
			t.Fatalf("Floor(%v, %v) = %v above value", value, increment, f)
		}
		if r := Round(value, increment); math.Abs(r-value) > increment/2+1e-9 {
			t.Fatalf("Round(%v, %v) = %v more than half an increment away", value, increment, r)
		}
	}
}

func TestModulo(t *testing.T) {
	tests := []struct {
		value, limit, want float64
	}{
		{7, 3, 1},
		{-7, 3, 2},
		{-1, 360, 359},
		{450, 360, 90},
		{5.5, 2, 1.5},
		{-0.5, 2, 1.5},
		{7, 0, 0},
		{-7, 0, 0},
		{7, math.NaN(), 0},
	}

	for _, tt := range tests {
		if got := Modulo(tt.value, tt.limit); !closeEnough(got, tt.want) {
			t.Errorf("Modulo(%v, %v) = %v, want %v", tt.value, tt.limit, got, tt.want)
		}
	}
}

func TestModulo_NonNegativeMatchesRemainder(t *testing.T) {
	rng := NewFastRand(99)
	for i := 0; i < 100; i++ {
		value := Random(rng, 0, 1000, 1)
		limit := Random(rng, 1, 50, 1)
		if got, want := Modulo(value, limit), math.Mod(value, limit); got != want {
			t.Fatalf("Modulo(%v, %v) = %v, want %v", value, limit, got, want)
		}
	}
}

func TestModulo_NegativeMultipleIsPositiveZero(t *testing.T) {
	got := Modulo(-720, 360)
	if got != 0 || math.Signbit(got) {
		t.Errorf("Modulo(-720, 360) = %v (signbit %v), want +0", got, math.Signbit(got))
	}
}

func TestModuloInt(t *testing.T) {
	tests := []struct {
		value, limit, want int
	}{
		{7, 3, 1},
		{-7, 3, 2},
		{-6, 3, 0},
		{-1, 12, 11},
		{7, 0, 0},
	}

	for _, tt := range tests {
		if got := ModuloInt(tt.value, tt.limit); got != tt.want {
			t.Errorf("ModuloInt(%d, %d) = %d, want %d", tt.value, tt.limit, got, tt.want)
		}
	}

	if got := ModuloInt[uint8](250, 7); got != 5 {
		t.Errorf("ModuloInt[uint8](250, 7) = %d, want 5", got)
	}
}
