package money

import (
	"fmt"
	"math"
	"math/big"
)

// Discrete represents a monetary amount as a whole number of units U of
// currency C, for example a number of US cents as Discrete[USD, Minor[USD]].
// Its zero value is 0.
//
// Discrete is immutable and safe for concurrent use by multiple goroutines.
// Compare values with [Discrete.Equal] or [Discrete.Cmp], not with ==.
type Discrete[C Currency, U Unit] struct {
	curr  string   // set only when C is Dynamic
	scale Scale    // set only when U is Dynamic
	value *big.Int // never mutated, nil means 0
}

var zeroInt = new(big.Int)

// newDiscreteUnsafe wraps i without copying it.
func newDiscreteUnsafe[C Currency, U Unit](curr string, scale Scale, i *big.Int) Discrete[C, U] {
	if !isDynamic[C]() {
		curr = ""
	}
	if !isDynamic[U]() {
		scale = Scale{}
	}
	return Discrete[C, U]{curr: curr, scale: scale, value: i}
}

// NewDiscrete returns an amount of units units.
//
// NewDiscrete panics if U is [Dynamic], since the scale is unknown.
// Use [NewSomeDiscrete] for units known only at run time.
func NewDiscrete[C Currency, U Unit](units int64) Discrete[C, U] {
	if isDynamic[U]() {
		panic(fmt.Sprintf("NewDiscrete[%v](%v) failed: %v", codeOf[C](), units, ErrUnknownScale))
	}
	return newDiscreteUnsafe[C, U]("", Scale{}, big.NewInt(units))
}

// NewDiscreteFromBig returns an amount of units units.
// The integer is copied, so units may be reused by the caller.
//
// NewDiscreteFromBig returns an error if units is nil or if U is [Dynamic].
func NewDiscreteFromBig[C Currency, U Unit](units *big.Int) (Discrete[C, U], error) {
	if units == nil {
		return Discrete[C, U]{}, fmt.Errorf("creating %v amount: missing units", codeOf[C]())
	}
	if isDynamic[U]() {
		return Discrete[C, U]{}, fmt.Errorf("creating %v amount: %w", codeOf[C](), ErrUnknownScale)
	}
	return newDiscreteUnsafe[C, U]("", Scale{}, new(big.Int).Set(units)), nil
}

// MustNewDiscreteFromBig is like [NewDiscreteFromBig] but panics if the amount
// cannot be constructed.
// It is meant for literals and other trusted call sites only.
func MustNewDiscreteFromBig[C Currency, U Unit](units *big.Int) Discrete[C, U] {
	x, err := NewDiscreteFromBig[C, U](units)
	if err != nil {
		panic(fmt.Sprintf("NewDiscreteFromBig[%v](%v) failed: %v", codeOf[C](), units, err))
	}
	return x
}

// DiscreteFromDense approximates amount d as a whole number of units U using
// method a. The difference between d and the result is returned as an exact
// remainder, so no money is lost:
//
//	x, rem := DiscreteFromDense[C, U](a, d)
//	x.Dense().Add(rem) // equals d
//
// DiscreteFromDense panics if U is [Dynamic], since the scale is unknown.
// Use [SomeDense.Discrete] for erased amounts.
func DiscreteFromDense[C Currency, U Unit](a Approximation, d Dense[C]) (Discrete[C, U], Dense[C]) {
	if isDynamic[U]() {
		panic(fmt.Sprintf("DiscreteFromDense(%v, %v) failed: %v", a, d, ErrUnknownScale))
	}
	var u U
	i, rem := discreteFromRat(a, u.Scale(), d.rat())
	return newDiscreteUnsafe[C, U](d.curr, Scale{}, i), newDenseUnsafe[C](d.curr, rem)
}

// discreteFromRat returns i = a(r * s) and r - i/s.
func discreteFromRat(a Approximation, s Scale, r *big.Rat) (*big.Int, *big.Rat) {
	scaled := new(big.Rat).Mul(r, s.rat())
	i := a.approximate(scaled)
	back := new(big.Rat).SetInt(i)
	back.Quo(back, s.rat())
	return i, back.Sub(r, back)
}

// Currency returns the code of the currency of the amount.
func (x Discrete[C, U]) Currency() string {
	if x.curr != "" {
		return x.curr
	}
	return codeOf[C]()
}

// Scale returns the number of units per base unit of the currency.
func (x Discrete[C, U]) Scale() Scale {
	if x.scale.IsValid() {
		return x.scale
	}
	var u U
	return u.Scale()
}

func (x Discrete[C, U]) int() *big.Int {
	if x.value == nil {
		return zeroInt
	}
	return x.value
}

// Amount returns a copy of the number of units.
func (x Discrete[C, U]) Amount() *big.Int {
	return new(big.Int).Set(x.int())
}

// Int64 returns the number of units as an int64.
// If the result cannot be represented as an int64, then false is returned.
func (x Discrete[C, U]) Int64() (units int64, ok bool) {
	i := x.int()
	if !i.IsInt64() {
		return 0, false
	}
	return i.Int64(), true
}

// Dense returns the exact amount in base units, that is units / scale.
func (x Discrete[C, U]) Dense() Dense[C] {
	r := new(big.Rat).SetInt(x.int())
	return newDenseUnsafe[C](x.curr, r.Quo(r, x.Scale().rat()))
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x = 0
//	+1 if x > 0
func (x Discrete[C, U]) Sign() int {
	return x.int().Sign()
}

// IsZero returns true if x = 0.
func (x Discrete[C, U]) IsZero() bool {
	return x.Sign() == 0
}

// Abs returns the absolute value of the amount.
func (x Discrete[C, U]) Abs() Discrete[C, U] {
	return newDiscreteUnsafe[C, U](x.curr, x.scale, new(big.Int).Abs(x.int()))
}

// Neg returns an amount with the opposite sign.
func (x Discrete[C, U]) Neg() Discrete[C, U] {
	return newDiscreteUnsafe[C, U](x.curr, x.scale, new(big.Int).Neg(x.int()))
}

// Add returns the sum of amounts x and y.
//
// Add panics if the amounts are [Dynamic] and their currencies or scales differ.
// To avoid this panic, use [Discrete.SameCurr] and [Discrete.SameScale].
func (x Discrete[C, U]) Add(y Discrete[C, U]) Discrete[C, U] {
	curr, scale := x.mustSame(y, "+")
	return newDiscreteUnsafe[C, U](curr, scale, new(big.Int).Add(x.int(), y.int()))
}

// Sub returns the difference between amounts x and y.
//
// Sub panics if the amounts are [Dynamic] and their currencies or scales differ.
func (x Discrete[C, U]) Sub(y Discrete[C, U]) Discrete[C, U] {
	curr, scale := x.mustSame(y, "-")
	return newDiscreteUnsafe[C, U](curr, scale, new(big.Int).Sub(x.int(), y.int()))
}

// Mul returns the product of amount x and an integer factor.
func (x Discrete[C, U]) Mul(factor int64) Discrete[C, U] {
	return newDiscreteUnsafe[C, U](x.curr, x.scale, new(big.Int).Mul(x.int(), big.NewInt(factor)))
}

// Cmp compares amounts and returns:
//
//	-1 if x < y
//	 0 if x = y
//	+1 if x > y
//
// Cmp panics if the amounts are [Dynamic] and their currencies or scales differ.
func (x Discrete[C, U]) Cmp(y Discrete[C, U]) int {
	x.mustSame(y, "cmp")
	return x.int().Cmp(y.int())
}

// Equal returns true if amounts have the same currency, scale and value.
func (x Discrete[C, U]) Equal(y Discrete[C, U]) bool {
	return x.SameCurr(y) && x.SameScale(y) && x.int().Cmp(y.int()) == 0
}

// SameCurr returns true if amounts are denominated in the same currency.
// It can only return false for [Dynamic] amounts. A [Dynamic] amount without
// a currency name, such as the zero value, matches any currency.
func (x Discrete[C, U]) SameCurr(y Discrete[C, U]) bool {
	return x.curr == "" || y.curr == "" || x.curr == y.curr
}

// SameScale returns true if amounts have the same scale.
// It can only return false for [Dynamic] amounts. A [Dynamic] amount without
// a scale, such as the zero value, matches any scale.
func (x Discrete[C, U]) SameScale(y Discrete[C, U]) bool {
	if !isDynamic[U]() || !x.scale.IsValid() || !y.scale.IsValid() {
		return true
	}
	return x.scale.Equal(y.scale)
}

// mustSame returns the currency name and the scale of the result.
func (x Discrete[C, U]) mustSame(y Discrete[C, U], op string) (string, Scale) {
	if !x.SameCurr(y) {
		panic(fmt.Sprintf("computing [%v %v %v] failed: %v", x, op, y, ErrCurrencyMismatch))
	}
	if !x.SameScale(y) {
		panic(fmt.Sprintf("computing [%v %v %v] failed: %v", x, op, y, ErrScaleMismatch))
	}
	curr, scale := x.curr, x.scale
	if curr == "" {
		curr = y.curr
	}
	if !scale.IsValid() {
		scale = y.scale
	}
	return curr, scale
}

// Split returns a slice of amounts that sum up to the original amount,
// ensuring the parts are as equal as possible.
// If the original amount cannot be divided equally among the specified number
// of parts, the remainder is distributed among the first parts of the slice,
// one unit each.
//
// Split returns an error if the number of parts is not a positive integer.
func (x Discrete[C, U]) Split(parts int) ([]Discrete[C, U], error) {
	if parts <= 0 || parts > math.MaxInt32 {
		return nil, fmt.Errorf("splitting %v into %v parts: number of parts must be positive", x, parts)
	}

	// Quotient and remainder, truncated toward zero so that all parts share
	// the sign of the original amount
	quo, rem := new(big.Int).QuoRem(x.int(), big.NewInt(int64(parts)), new(big.Int))
	ulp := big.NewInt(int64(rem.Sign()))
	left := rem.Int64() // |rem| < parts
	if left < 0 {
		left = -left
	}

	res := make([]Discrete[C, U], parts)
	for i := range res {
		q := quo
		// Remainder distribution
		if int64(i) < left {
			q = new(big.Int).Add(quo, ulp)
		}
		res[i] = newDiscreteUnsafe[C, U](x.curr, x.scale, q)
	}
	return res, nil
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of an amount, such as "USD 1234 (scale 100)".
// See also method [Discrete.FormatDecimal].
func (x Discrete[C, U]) String() string {
	return x.Currency() + " " + x.int().String() + " (scale " + x.Scale().String() + ")"
}
