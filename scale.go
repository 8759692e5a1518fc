package money

import (
	"fmt"
	"math/big"
)

// Scale is a positive rational number of subunits per base unit of a currency.
// For example, the scale of US cents is 100, the scale of Japanese yen is 1,
// and the scale of grams per troy ounce of gold is 311034768/10000000.
//
// Its zero value is not a valid scale; use [NewScale] or one of the unit
// markers to obtain one.
// Scale is designed to be safe for concurrent use by multiple goroutines.
type Scale struct {
	r *big.Rat // never mutated, always positive
}

var one = big.NewRat(1, 1)

// newScaleUnsafe wraps r without checking or copying it.
func newScaleUnsafe(r *big.Rat) Scale {
	return Scale{r: r}
}

// NewScale returns a scale equal to num / den.
//
// NewScale returns an error if num or den is not positive.
func NewScale(num, den int64) (Scale, error) {
	if num <= 0 || den <= 0 {
		return Scale{}, fmt.Errorf("creating scale %v/%v: %w", num, den, ErrNonPositiveScale)
	}
	return newScaleUnsafe(big.NewRat(num, den)), nil
}

// MustNewScale is like [NewScale] but panics if the scale cannot be constructed.
// It simplifies safe initialization of global variables holding scales.
func MustNewScale(num, den int64) Scale {
	s, err := NewScale(num, den)
	if err != nil {
		panic(fmt.Sprintf("NewScale(%v, %v) failed: %v", num, den, err))
	}
	return s
}

// NewScaleFromBig returns a scale equal to num / den.
//
// NewScaleFromBig returns an error if num or den is nil or not positive.
func NewScaleFromBig(num, den *big.Int) (Scale, error) {
	if num == nil || den == nil || num.Sign() <= 0 || den.Sign() <= 0 {
		return Scale{}, fmt.Errorf("creating scale %v/%v: %w", num, den, ErrNonPositiveScale)
	}
	return newScaleUnsafe(new(big.Rat).SetFrac(num, den)), nil
}

// NewScaleFromRat returns a scale equal to r.
// The rational is copied, so r may be reused by the caller.
//
// NewScaleFromRat returns an error if r is nil or not positive.
func NewScaleFromRat(r *big.Rat) (Scale, error) {
	if r == nil || r.Sign() <= 0 {
		return Scale{}, fmt.Errorf("creating scale %v: %w", r, ErrNonPositiveScale)
	}
	return newScaleUnsafe(new(big.Rat).Set(r)), nil
}

// pow10Scale returns 10^digits as a scale.
func pow10Scale(digits int) Scale {
	return newScaleUnsafe(new(big.Rat).SetInt(pow10(digits)))
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// IsValid returns false for the zero value of Scale.
func (s Scale) IsValid() bool {
	return s.r != nil
}

// rat returns the underlying rational; it must not be modified.
func (s Scale) rat() *big.Rat {
	if s.r == nil {
		return one
	}
	return s.r
}

// Rat returns a copy of the scale as a rational number.
func (s Scale) Rat() *big.Rat {
	return new(big.Rat).Set(s.rat())
}

// Num returns a copy of the numerator of the scale in lowest terms.
func (s Scale) Num() *big.Int {
	return new(big.Int).Set(s.rat().Num())
}

// Denom returns a copy of the denominator of the scale in lowest terms.
func (s Scale) Denom() *big.Int {
	return new(big.Int).Set(s.rat().Denom())
}

// Equal returns true if both scales represent the same rational number.
func (s Scale) Equal(t Scale) bool {
	return s.rat().Cmp(t.rat()) == 0
}

// String implements the [fmt.Stringer] interface.
// Integral scales are rendered as "100", others in lowest terms as "19439673/625000".
func (s Scale) String() string {
	return s.rat().RatString()
}
