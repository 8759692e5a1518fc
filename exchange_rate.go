package money

import (
	"fmt"
	"math/big"
)

// ExchangeRate represents a unidirectional exchange rate from currency Src to
// currency Dst: how many units of Dst are obtained for 1 unit of Src.
// The rate is an exact positive rational number.
//
// The zero value behaves as a rate of 1.
// ExchangeRate is immutable and safe for concurrent use by multiple goroutines.
type ExchangeRate[Src, Dst Currency] struct {
	src, dst string   // set only when Src or Dst is Dynamic
	value    *big.Rat // never mutated, always positive
}

// newExchRateUnsafe wraps r without checking or copying it.
func newExchRateUnsafe[Src, Dst Currency](src, dst string, r *big.Rat) ExchangeRate[Src, Dst] {
	if !isDynamic[Src]() {
		src = ""
	}
	if !isDynamic[Dst]() {
		dst = ""
	}
	return ExchangeRate[Src, Dst]{src: src, dst: dst, value: r}
}

// newExchRateSafe checks the rate before wrapping it.
func newExchRateSafe[Src, Dst Currency](src, dst string, r *big.Rat) (ExchangeRate[Src, Dst], error) {
	if r == nil || r.Sign() <= 0 {
		return ExchangeRate[Src, Dst]{}, ErrNonPositiveRate
	}
	return newExchRateUnsafe[Src, Dst](src, dst, r), nil
}

// NewExchRate returns an exchange rate equal to r.
// The rational is copied, so r may be reused by the caller.
//
// NewExchRate returns an error if r is nil, zero or negative.
func NewExchRate[Src, Dst Currency](r *big.Rat) (ExchangeRate[Src, Dst], error) {
	var c *big.Rat
	if r != nil {
		c = new(big.Rat).Set(r)
	}
	x, err := newExchRateSafe[Src, Dst]("", "", c)
	if err != nil {
		return ExchangeRate[Src, Dst]{}, fmt.Errorf("creating %v/%v exchange rate %v: %w", codeOf[Src](), codeOf[Dst](), r, err)
	}
	return x, nil
}

// NewExchRateFrac returns an exchange rate equal to num / den.
// See [NewExchRate] for the conditions under which it returns an error.
func NewExchRateFrac[Src, Dst Currency](num, den int64) (ExchangeRate[Src, Dst], error) {
	if den == 0 {
		return ExchangeRate[Src, Dst]{}, fmt.Errorf("creating %v/%v exchange rate %v/%v: %w", codeOf[Src](), codeOf[Dst](), num, den, ErrMalformedRational)
	}
	return NewExchRate[Src, Dst](big.NewRat(num, den))
}

// MustNewExchRate is like [NewExchRateFrac] but panics if the exchange rate
// cannot be constructed.
// It is meant for literals and other trusted call sites only.
func MustNewExchRate[Src, Dst Currency](num, den int64) ExchangeRate[Src, Dst] {
	x, err := NewExchRateFrac[Src, Dst](num, den)
	if err != nil {
		panic(fmt.Sprintf("NewExchRateFrac[%v, %v](%v, %v) failed: %v", codeOf[Src](), codeOf[Dst](), num, den, err))
	}
	return x
}

// IdentityRate returns the exchange rate of 1 from C to C.
// It is the identity of [Compose].
func IdentityRate[C Currency]() ExchangeRate[C, C] {
	return newExchRateUnsafe[C, C]("", "", one)
}

// Compose returns the exchange rate from A to C obtained by exchanging A to B
// with ab, then B to C with bc. The resulting rate is the exact product of
// both rates.
//
// A [Dynamic] currency without a name matches any currency. A [Dynamic] rate
// without names on either side, such as IdentityRate[Dynamic](), takes the
// names of the other rate, so composing with it keeps them.
//
// Compose panics if B is [Dynamic] and the currencies of bc and ab do not
// meet.
func Compose[A, B, C Currency](bc ExchangeRate[B, C], ab ExchangeRate[A, B]) ExchangeRate[A, C] {
	left, right := ab.Dst(), bc.Src()
	if left != "" && right != "" && left != right {
		panic(fmt.Sprintf("Compose(%v, %v) failed: %v", bc, ab, ErrCurrencyMismatch))
	}
	src, dst := ab.Src(), bc.Dst()
	if src == "" && left == "" {
		src = right
	}
	if dst == "" && right == "" {
		dst = left
	}
	return newExchRateUnsafe[A, C](src, dst, new(big.Rat).Mul(bc.rat(), ab.rat()))
}

// rat returns the underlying rational; it must not be modified.
// The zero value is treated as a rate of 1.
func (r ExchangeRate[Src, Dst]) rat() *big.Rat {
	if r.value == nil {
		return one
	}
	return r.value
}

// Rat returns a copy of the exchange rate as a rational number.
func (r ExchangeRate[Src, Dst]) Rat() *big.Rat {
	return new(big.Rat).Set(r.rat())
}

// Src returns the code of the currency being exchanged.
func (r ExchangeRate[Src, Dst]) Src() string {
	if r.src != "" {
		return r.src
	}
	return codeOf[Src]()
}

// Dst returns the code of the currency obtained in exchange.
func (r ExchangeRate[Src, Dst]) Dst() string {
	if r.dst != "" {
		return r.dst
	}
	return codeOf[Dst]()
}

// Inv returns the reciprocal exchange rate, from Dst to Src.
// Inverting twice returns the original rate.
func (r ExchangeRate[Src, Dst]) Inv() ExchangeRate[Dst, Src] {
	return newExchRateUnsafe[Dst, Src](r.dst, r.src, new(big.Rat).Inv(r.rat()))
}

// Mul returns an exchange rate with the same currencies, but with the rate
// multiplied by a positive factor f.
//
// Mul panics if factor f is nil or not positive.
func (r ExchangeRate[Src, Dst]) Mul(f *big.Rat) ExchangeRate[Src, Dst] {
	if f == nil || f.Sign() <= 0 {
		panic(fmt.Sprintf("%v.Mul(%v) failed: factor must be positive", r, f))
	}
	return newExchRateUnsafe[Src, Dst](r.src, r.dst, new(big.Rat).Mul(r.rat(), f))
}

// CanConv returns true if [ExchangeRate.Conv] can be used to convert the given amount.
// It can only return false for [Dynamic] currencies.
func (r ExchangeRate[Src, Dst]) CanConv(d Dense[Src]) bool {
	src := r.Src()
	return src == "" || d.curr == "" || d.Currency() == src
}

// Conv returns amount d converted from currency Src to currency Dst,
// exactly d * rate.
//
// A [Dynamic] rate without names on either side keeps the currency of d.
// Conv panics if Src is [Dynamic] and the currency of the amount does not
// match the source currency of the exchange rate.
// To avoid this panic, use the [ExchangeRate.CanConv] method to ensure
// the currencies are compatible before calling Conv.
func (r ExchangeRate[Src, Dst]) Conv(d Dense[Src]) Dense[Dst] {
	if !r.CanConv(d) {
		panic(fmt.Sprintf("%v.Conv(%v) failed: %v", r, d, ErrCurrencyMismatch))
	}
	dst := r.Dst()
	if dst == "" && r.Src() == "" {
		dst = d.curr
	}
	return newDenseUnsafe[Dst](dst, new(big.Rat).Mul(d.rat(), r.rat()))
}

// Equal returns true if exchange rates have the same currencies and value.
func (r ExchangeRate[Src, Dst]) Equal(q ExchangeRate[Src, Dst]) bool {
	return r.SameCurr(q) && r.rat().Cmp(q.rat()) == 0
}

// SameCurr returns true if exchange rates are denominated in the same source
// and destination currencies.
func (r ExchangeRate[Src, Dst]) SameCurr(q ExchangeRate[Src, Dst]) bool {
	return r.Src() == q.Src() && r.Dst() == q.Dst()
}

// IsOne returns true if the rate is exactly 1, in which case [ExchangeRate.Conv]
// does not change the amount.
func (r ExchangeRate[Src, Dst]) IsOne() bool {
	return r.rat().Cmp(one) == 0
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the exchange rate, such as "USD/EUR 23/25".
// See also method [ExchangeRate.FormatDecimal].
func (r ExchangeRate[Src, Dst]) String() string {
	return r.Src() + "/" + r.Dst() + " " + r.rat().RatString()
}
