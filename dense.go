package money

import (
	"fmt"
	"math/big"
)

// Dense represents an exact monetary amount in currency C as a rational
// number of base units, with no limit on precision.
// Its zero value is 0.
//
// Dense supports addition, subtraction and multiplication by a scalar.
// It deliberately offers neither multiplication of two amounts nor division:
// use [Dense.Rat] to leave the realm of money explicitly.
//
// Dense is immutable and safe for concurrent use by multiple goroutines.
// Compare values with [Dense.Equal] or [Dense.Cmp], not with ==.
type Dense[C Currency] struct {
	curr  string   // set only when C is Dynamic
	value *big.Rat // never mutated, nil means 0
}

var zeroRat = new(big.Rat)

// newDenseUnsafe wraps r without copying it.
// Use it only if r is not shared with the caller.
func newDenseUnsafe[C Currency](curr string, r *big.Rat) Dense[C] {
	if !isDynamic[C]() {
		curr = ""
	}
	return Dense[C]{curr: curr, value: r}
}

// NewDense returns an amount equal to r.
// The rational is copied, so r may be reused by the caller.
//
// NewDense returns an error if r is nil.
func NewDense[C Currency](r *big.Rat) (Dense[C], error) {
	if r == nil {
		return Dense[C]{}, fmt.Errorf("creating %v amount: %w", codeOf[C](), ErrMalformedRational)
	}
	return newDenseUnsafe[C]("", new(big.Rat).Set(r)), nil
}

// NewDenseFrac returns an amount equal to num / den.
//
// NewDenseFrac returns an error if den is 0.
func NewDenseFrac[C Currency](num, den int64) (Dense[C], error) {
	if den == 0 {
		return Dense[C]{}, fmt.Errorf("creating %v amount %v/%v: %w", codeOf[C](), num, den, ErrMalformedRational)
	}
	return newDenseUnsafe[C]("", big.NewRat(num, den)), nil
}

// NewDenseFromBig returns an amount equal to num / den.
//
// NewDenseFromBig returns an error if num or den is nil, or if den is 0.
func NewDenseFromBig[C Currency](num, den *big.Int) (Dense[C], error) {
	if num == nil || den == nil || den.Sign() == 0 {
		return Dense[C]{}, fmt.Errorf("creating %v amount %v/%v: %w", codeOf[C](), num, den, ErrMalformedRational)
	}
	return newDenseUnsafe[C]("", new(big.Rat).SetFrac(num, den)), nil
}

// MustNewDense is like [NewDenseFrac] but panics if the amount cannot be constructed.
// It is meant for literals and other trusted call sites only.
func MustNewDense[C Currency](num, den int64) Dense[C] {
	d, err := NewDenseFrac[C](num, den)
	if err != nil {
		panic(fmt.Sprintf("NewDenseFrac[%v](%v, %v) failed: %v", codeOf[C](), num, den, err))
	}
	return d
}

// Sum returns the sum of amounts, or 0 if there are none.
func Sum[C Currency](amounts ...Dense[C]) Dense[C] {
	var s Dense[C]
	for i, a := range amounts {
		if i == 0 {
			s = a
			continue
		}
		s = s.Add(a)
	}
	return s
}

// Currency returns the code of the currency of the amount.
func (d Dense[C]) Currency() string {
	if d.curr != "" {
		return d.curr
	}
	return codeOf[C]()
}

// rat returns the underlying rational; it must not be modified.
func (d Dense[C]) rat() *big.Rat {
	if d.value == nil {
		return zeroRat
	}
	return d.value
}

// Rat returns a copy of the amount as a rational number.
// The result is no longer guarded against currency confusion.
func (d Dense[C]) Rat() *big.Rat {
	return new(big.Rat).Set(d.rat())
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d = 0
//	+1 if d > 0
func (d Dense[C]) Sign() int {
	return d.rat().Sign()
}

// IsZero returns true if d = 0.
func (d Dense[C]) IsZero() bool {
	return d.Sign() == 0
}

// IsInt returns true if d is a whole number of base units.
func (d Dense[C]) IsInt() bool {
	return d.rat().IsInt()
}

// Abs returns the absolute value of the amount.
func (d Dense[C]) Abs() Dense[C] {
	return newDenseUnsafe[C](d.curr, new(big.Rat).Abs(d.rat()))
}

// Neg returns an amount with the opposite sign.
func (d Dense[C]) Neg() Dense[C] {
	return newDenseUnsafe[C](d.curr, new(big.Rat).Neg(d.rat()))
}

// Add returns the exact sum of amounts d and e.
//
// Add panics if both amounts are [Dynamic] and their currencies differ.
// To avoid this panic, use [Dense.SameCurr] before calling Add.
func (d Dense[C]) Add(e Dense[C]) Dense[C] {
	curr := d.mustSameCurr(e, "+")
	return newDenseUnsafe[C](curr, new(big.Rat).Add(d.rat(), e.rat()))
}

// Sub returns the exact difference between amounts d and e.
//
// Sub panics if both amounts are [Dynamic] and their currencies differ.
func (d Dense[C]) Sub(e Dense[C]) Dense[C] {
	curr := d.mustSameCurr(e, "-")
	return newDenseUnsafe[C](curr, new(big.Rat).Sub(d.rat(), e.rat()))
}

// Mul returns the exact product of amount d and scalar factor f.
// There is no way to multiply two amounts.
//
// Mul panics if f is nil.
func (d Dense[C]) Mul(f *big.Rat) Dense[C] {
	if f == nil {
		panic(fmt.Sprintf("%v.Mul(nil) failed: %v", d, ErrMalformedRational))
	}
	return newDenseUnsafe[C](d.curr, new(big.Rat).Mul(d.rat(), f))
}

// Cmp compares amounts and returns:
//
//	-1 if d < e
//	 0 if d = e
//	+1 if d > e
//
// Cmp panics if both amounts are [Dynamic] and their currencies differ.
func (d Dense[C]) Cmp(e Dense[C]) int {
	d.mustSameCurr(e, "cmp")
	return d.rat().Cmp(e.rat())
}

// Equal returns true if amounts have the same currency and value.
func (d Dense[C]) Equal(e Dense[C]) bool {
	return d.SameCurr(e) && d.rat().Cmp(e.rat()) == 0
}

// Min returns the smaller amount.
func (d Dense[C]) Min(e Dense[C]) Dense[C] {
	if d.Cmp(e) <= 0 {
		return d
	}
	return e
}

// Max returns the larger amount.
func (d Dense[C]) Max(e Dense[C]) Dense[C] {
	if d.Cmp(e) >= 0 {
		return d
	}
	return e
}

// SameCurr returns true if amounts are denominated in the same currency.
// It can only return false for [Dynamic] amounts. A [Dynamic] amount without
// a currency name, such as the zero value, matches any currency.
func (d Dense[C]) SameCurr(e Dense[C]) bool {
	return d.curr == "" || e.curr == "" || d.curr == e.curr
}

// mustSameCurr returns the currency name of the result.
func (d Dense[C]) mustSameCurr(e Dense[C], op string) string {
	if !d.SameCurr(e) {
		panic(fmt.Sprintf("computing [%v %v %v] failed: %v", d, op, e, ErrCurrencyMismatch))
	}
	if d.curr == "" {
		return e.curr
	}
	return d.curr
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of an amount, such as "USD 1/3" or "EUR -12".
// See also method [Dense.FormatDecimal].
func (d Dense[C]) String() string {
	return d.Currency() + " " + d.rat().RatString()
}
