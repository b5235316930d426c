package vmath

import "golang.org/x/exp/constraints"

// Euclid returns the greatest common divisor of a and b
func Euclid[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// IntLength returns the count of decimal digits in |n|, 0 for n == 0
func IntLength(n int) int {
	u := uint64(n)
	if n < 0 {
		// Two's complement negation also covers math.MinInt64
		u = -u
	}
	return uintLength(u)
}

func uintLength(u uint64) int {
	length := 0
	for u > 0 {
		u /= 10
		length++
	}
	return length
}

// SplitUint returns the decimal digits of n, most significant first.
// Zero has no digits and yields an empty slice.
func SplitUint(n uint64) []int {
	length := uintLength(n)
	digits := make([]int, length)
	for i := length - 1; i >= 0; i-- {
		digits[i] = int(n % 10)
		n /= 10
	}
	return digits
}

// Luhn validates n against the Luhn checksum, the least significant digit
// being the check digit. Inputs with fewer than two digits are invalid.
func Luhn(n uint64) bool {
	if n < 10 {
		return false
	}

	check := int(n % 10)
	n /= 10

	total := 0
	double := true
	for n > 0 {
		d := int(n % 10)
		n /= 10
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		total += d
		double = !double
	}

	return (10-total%10)%10 == check
}

// Primes returns all primes <= limit using the sieve of Eratosthenes
func Primes(limit int) []int {
	primes := make([]int, 0)
	if limit < 2 {
		return primes
	}

	composite := make([]bool, limit+1)
	for i := 2; i <= limit; i++ {
		if composite[i] {
			continue
		}
		primes = append(primes, i)
		// i*i overflow guard for limits near MaxInt
		if i > limit/i {
			continue
		}
		for j := i * i; j <= limit; j += i {
			composite[j] = true
		}
	}
	return primes
}
