package money

import (
	"fmt"
	"math/big"
	"strings"
)

// Approximation is a method of rounding a rational number to an integer.
// It is used whenever an exact value must be represented in a coarser unit,
// see [DiscreteFromDense] and [FormatRat].
type Approximation uint8

const (
	// Round rounds to the nearest integer, and to the even one on ties
	// ([rounding half to even], banker's rounding).
	//
	// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
	Round Approximation = iota
	// Floor rounds toward negative infinity.
	Floor
	// Ceiling rounds toward positive infinity.
	Ceiling
	// Truncate rounds toward zero.
	Truncate
)

// ParseApproximation converts "round", "floor", "ceiling" or "truncate"
// (case-insensitive) to an approximation.
func ParseApproximation(s string) (Approximation, error) {
	switch strings.ToLower(s) {
	case "round":
		return Round, nil
	case "floor":
		return Floor, nil
	case "ceiling", "ceil":
		return Ceiling, nil
	case "truncate", "trunc":
		return Truncate, nil
	}
	return 0, fmt.Errorf("unknown approximation %q", s)
}

// String implements the [fmt.Stringer] interface.
func (a Approximation) String() string {
	switch a {
	case Round:
		return "round"
	case Floor:
		return "floor"
	case Ceiling:
		return "ceiling"
	case Truncate:
		return "truncate"
	}
	return fmt.Sprintf("Approximation(%d)", uint8(a))
}

// approximate returns r rounded to an integer using method a.
// The denominator of a big.Rat is always positive.
func (a Approximation) approximate(r *big.Rat) *big.Int {
	num, den := r.Num(), r.Denom()
	if r.IsInt() {
		return new(big.Int).Set(num)
	}
	switch a {
	case Floor:
		// Euclidean division rounds toward negative infinity for positive divisors.
		return new(big.Int).Div(num, den)
	case Ceiling:
		q := new(big.Int).Div(num, den)
		return q.Add(q, big.NewInt(1))
	case Truncate:
		return new(big.Int).Quo(num, den)
	case Round:
		q, m := new(big.Int).DivMod(num, den, new(big.Int))
		// 0 < m < den, compare 2m with den
		switch new(big.Int).Lsh(m, 1).Cmp(den) {
		case 1:
			q.Add(q, big.NewInt(1))
		case 0:
			if q.Bit(0) == 1 {
				q.Add(q, big.NewInt(1))
			}
		}
		return q
	}
	panic(fmt.Sprintf("%v.approximate(%v) failed: unknown approximation", a, r))
}

// Approximate rounds r to an integer using method a.
// The argument is not modified.
func (a Approximation) Approximate(r *big.Rat) *big.Int {
	return a.approximate(r)
}
