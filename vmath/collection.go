package vmath

import (
	"math"
	"reflect"
	"slices"

	"golang.org/x/exp/constraints"
)

// Average returns the arithmetic mean of values, NaN when empty
func Average(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}

// AverageOf is the variadic form of Average
func AverageOf(values ...float64) float64 {
	return Average(values)
}

// Total sums numeric non-NaN values and counts every other truthy value as 1
func Total(values []any) float64 {
	sum := 0.0
	for _, v := range values {
		if f, ok := numericValue(v); ok && !math.IsNaN(f) {
			sum += f
		} else if IsTruthy(v) {
			sum++
		}
	}
	return sum
}

func numericValue(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// IsTruthy reports whether v counts as present.
// Falsy: nil, typed nil references, numeric zero, NaN, empty string, false.
// Empty but non-nil containers are truthy.
func IsTruthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		return c != 0 && !math.IsNaN(real(c)) && !math.IsNaN(imag(c))
	case reflect.String:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return !rv.IsNil()
	}
	return true
}

// --- Ordering ---

// SortAscending is a three-way comparator for slices.SortFunc
func SortAscending[T constraints.Ordered](a, b T) int {
	if a > b {
		return 1
	}
	if a < b {
		return -1
	}
	return 0
}

// SortDescending is the reverse of SortAscending
func SortDescending[T constraints.Ordered](a, b T) int {
	if a > b {
		return -1
	}
	if a < b {
		return 1
	}
	return 0
}

// Shuffle permutes items with Fisher-Yates. With duplicate false items is
// shuffled in place and returned; otherwise a shuffled clone is returned and
// items is left untouched.
func Shuffle[T any](rng Source, items []T, duplicate bool) []T {
	rng = sourceOrDefault(rng)
	shuffled := items
	if duplicate {
		shuffled = slices.Clone(items)
	}
	for i := len(shuffled) - 1; i > 0; i-- {
		j := int(rng.Float64() * float64(i+1))
		if j > i {
			j = i
		}
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
