package money

import (
	"fmt"
	"math/big"
)

// SomeDense is a [Dense] amount whose currency is carried as data rather than
// as a type, for storage and transport when the currency is not known
// statically. See [Dense.Some] and [FromSomeDense].
//
// SomeDense is immutable and safe for concurrent use by multiple goroutines.
type SomeDense struct {
	curr  string
	value *big.Rat // never mutated, nil means 0
}

// NewSomeDense returns an erased amount of r in currency curr.
// The rational is copied, so r may be reused by the caller.
//
// NewSomeDense returns an error if r is nil.
func NewSomeDense(curr string, r *big.Rat) (SomeDense, error) {
	if r == nil {
		return SomeDense{}, fmt.Errorf("creating %v amount: %w", curr, ErrMalformedRational)
	}
	return SomeDense{curr: curr, value: new(big.Rat).Set(r)}, nil
}

// MustNewSomeDense is like [NewSomeDense] but panics if the amount cannot be constructed.
func MustNewSomeDense(curr string, r *big.Rat) SomeDense {
	s, err := NewSomeDense(curr, r)
	if err != nil {
		panic(fmt.Sprintf("NewSomeDense(%q, %v) failed: %v", curr, r, err))
	}
	return s
}

// Some erases the currency type of the amount.
func (d Dense[C]) Some() SomeDense {
	return SomeDense{curr: d.Currency(), value: d.rat()}
}

// FromSomeDense restores the currency type of an erased amount.
// It returns false if s is not denominated in currency C.
// For C = [Dynamic] it always succeeds.
func FromSomeDense[C Currency](s SomeDense) (Dense[C], bool) {
	if !isDynamic[C]() && s.curr != codeOf[C]() {
		return Dense[C]{}, false
	}
	return newDenseUnsafe[C](s.curr, s.value), true
}

// WithSomeDense calls fn with the amount carried by s, tagged with a currency
// identity taken from its currency name. It is meant for code that works the
// same for every currency.
func WithSomeDense[R any](s SomeDense, fn func(Dense[Dynamic]) R) R {
	d, _ := FromSomeDense[Dynamic](s)
	return fn(d)
}

// Currency returns the code of the currency of the amount.
func (s SomeDense) Currency() string {
	return s.curr
}

// Rat returns a copy of the amount as a rational number.
func (s SomeDense) Rat() *big.Rat {
	if s.value == nil {
		return new(big.Rat)
	}
	return new(big.Rat).Set(s.value)
}

func (s SomeDense) rat() *big.Rat {
	if s.value == nil {
		return zeroRat
	}
	return s.value
}

// Discrete approximates the amount as a whole number of units of the given
// scale, returning the exact remainder, like [DiscreteFromDense].
func (s SomeDense) Discrete(a Approximation, scale Scale) (SomeDiscrete, SomeDense) {
	if !scale.IsValid() {
		scale = newScaleUnsafe(one)
	}
	i, rem := discreteFromRat(a, scale, s.rat())
	return SomeDiscrete{curr: s.curr, scale: scale, value: i}, SomeDense{curr: s.curr, value: rem}
}

// Equal returns true if amounts have the same currency and value.
func (s SomeDense) Equal(t SomeDense) bool {
	return s.curr == t.curr && s.rat().Cmp(t.rat()) == 0
}

// String implements the [fmt.Stringer] interface, like [Dense.String].
func (s SomeDense) String() string {
	return s.curr + " " + s.rat().RatString()
}

// FormatDecimal renders the amount as a decimal string, see [FormatRat].
func (s SomeDense) FormatDecimal(a Approximation, conf DecimalConf) (string, error) {
	d, _ := FromSomeDense[Dynamic](s)
	return d.FormatDecimal(a, conf)
}

// ParseSomeDense converts a decimal string to an erased amount in currency curr.
// See [ParseDense].
func ParseSomeDense(curr, s string, conf DecimalConf) (SomeDense, error) {
	d, err := ParseDense[Dynamic](s, conf)
	if err != nil {
		return SomeDense{}, fmt.Errorf("parsing %v amount: %w", curr, err)
	}
	return SomeDense{curr: curr, value: d.rat()}, nil
}

// SomeDiscrete is a [Discrete] amount whose currency and scale are carried
// as data rather than as types. See [Discrete.Some] and [FromSomeDiscrete].
//
// SomeDiscrete is immutable and safe for concurrent use by multiple goroutines.
type SomeDiscrete struct {
	curr  string
	scale Scale
	value *big.Int // never mutated, nil means 0
}

// NewSomeDiscrete returns an erased amount of units units of the given scale
// in currency curr. The integer is copied, so units may be reused by the caller.
//
// NewSomeDiscrete returns an error if units is nil or scale is the zero value.
func NewSomeDiscrete(curr string, scale Scale, units *big.Int) (SomeDiscrete, error) {
	if !scale.IsValid() {
		return SomeDiscrete{}, fmt.Errorf("creating %v amount: %w", curr, ErrNonPositiveScale)
	}
	if units == nil {
		return SomeDiscrete{}, fmt.Errorf("creating %v amount: missing units", curr)
	}
	return SomeDiscrete{curr: curr, scale: scale, value: new(big.Int).Set(units)}, nil
}

// MustNewSomeDiscrete is like [NewSomeDiscrete] but panics if the amount
// cannot be constructed.
func MustNewSomeDiscrete(curr string, scale Scale, units *big.Int) SomeDiscrete {
	s, err := NewSomeDiscrete(curr, scale, units)
	if err != nil {
		panic(fmt.Sprintf("NewSomeDiscrete(%q, %v, %v) failed: %v", curr, scale, units, err))
	}
	return s
}

// LookupSomeDiscrete returns an erased amount of units of the named unit of
// currency curr, using l to resolve the scale, for example:
//
//	LookupSomeDiscrete(ISO, "USD", "minor", big.NewInt(25)) // 25 US cents
//
// LookupSomeDiscrete returns an error if l does not know the unit.
func LookupSomeDiscrete(l ScaleLookup, curr, unit string, units *big.Int) (SomeDiscrete, error) {
	scale, ok := l.LookupScale(curr, unit)
	if !ok {
		return SomeDiscrete{}, fmt.Errorf("creating %v amount in %q: %w", curr, unit, ErrUnknownScale)
	}
	return NewSomeDiscrete(curr, scale, units)
}

// Some erases the currency and unit types of the amount.
func (x Discrete[C, U]) Some() SomeDiscrete {
	return SomeDiscrete{curr: x.Currency(), scale: x.Scale(), value: x.int()}
}

// FromSomeDiscrete restores the currency and unit types of an erased amount.
// It returns false if s is not denominated in currency C or if its scale
// differs from the scale of U.
// [Dynamic] matches any currency or scale.
func FromSomeDiscrete[C Currency, U Unit](s SomeDiscrete) (Discrete[C, U], bool) {
	if !isDynamic[C]() && s.curr != codeOf[C]() {
		return Discrete[C, U]{}, false
	}
	if !isDynamic[U]() {
		var u U
		if !u.Scale().Equal(s.Scale()) {
			return Discrete[C, U]{}, false
		}
	}
	return newDiscreteUnsafe[C, U](s.curr, s.Scale(), s.value), true
}

// WithSomeDiscrete calls fn with the amount carried by s, tagged with
// currency and unit identities taken from its currency name and scale.
func WithSomeDiscrete[R any](s SomeDiscrete, fn func(Discrete[Dynamic, Dynamic]) R) R {
	x, _ := FromSomeDiscrete[Dynamic, Dynamic](s)
	return fn(x)
}

// Currency returns the code of the currency of the amount.
func (s SomeDiscrete) Currency() string {
	return s.curr
}

// Scale returns the number of units per base unit of the currency.
func (s SomeDiscrete) Scale() Scale {
	if !s.scale.IsValid() {
		return newScaleUnsafe(one)
	}
	return s.scale
}

// Amount returns a copy of the number of units.
func (s SomeDiscrete) Amount() *big.Int {
	return new(big.Int).Set(s.int())
}

func (s SomeDiscrete) int() *big.Int {
	if s.value == nil {
		return zeroInt
	}
	return s.value
}

// Dense returns the exact erased amount in base units, that is units / scale.
func (s SomeDiscrete) Dense() SomeDense {
	return WithSomeDiscrete(s, func(x Discrete[Dynamic, Dynamic]) SomeDense {
		return x.Dense().Some()
	})
}

// Equal returns true if amounts have the same currency, scale and value.
func (s SomeDiscrete) Equal(t SomeDiscrete) bool {
	return s.curr == t.curr && s.Scale().Equal(t.Scale()) && s.int().Cmp(t.int()) == 0
}

// String implements the [fmt.Stringer] interface, like [Discrete.String].
func (s SomeDiscrete) String() string {
	return s.curr + " " + s.int().String() + " (scale " + s.Scale().String() + ")"
}

// FormatDecimal renders the amount in base units as a decimal string,
// see [FormatRat].
func (s SomeDiscrete) FormatDecimal(a Approximation, conf DecimalConf) (string, error) {
	return s.Dense().FormatDecimal(a, conf)
}

// ParseSomeDiscrete converts a decimal string of base units to an erased
// whole number of units of the given scale. See [ParseDiscrete].
func ParseSomeDiscrete(curr string, scale Scale, s string, conf DecimalConf) (SomeDiscrete, error) {
	d, err := ParseSomeDense(curr, s, conf)
	if err != nil {
		return SomeDiscrete{}, err
	}
	x, rem := d.Discrete(Truncate, scale)
	if rem.rat().Sign() != 0 {
		return SomeDiscrete{}, fmt.Errorf("parsing %v amount %q at scale %v: %w", curr, s, x.Scale(), ErrInexact)
	}
	return x, nil
}

// SomeExchangeRate is an [ExchangeRate] whose currencies are carried as data
// rather than as types. See [ExchangeRate.Some] and [FromSomeExchRate].
//
// SomeExchangeRate is immutable and safe for concurrent use by multiple goroutines.
type SomeExchangeRate struct {
	src, dst string
	value    *big.Rat // never mutated, always positive
}

// NewSomeExchRate returns an erased exchange rate of r from src to dst.
// The rational is copied, so r may be reused by the caller.
//
// NewSomeExchRate returns an error if r is nil, zero or negative.
func NewSomeExchRate(src, dst string, r *big.Rat) (SomeExchangeRate, error) {
	if r == nil || r.Sign() <= 0 {
		return SomeExchangeRate{}, fmt.Errorf("creating %v/%v exchange rate %v: %w", src, dst, r, ErrNonPositiveRate)
	}
	return SomeExchangeRate{src: src, dst: dst, value: new(big.Rat).Set(r)}, nil
}

// MustNewSomeExchRate is like [NewSomeExchRate] but panics if the exchange
// rate cannot be constructed.
func MustNewSomeExchRate(src, dst string, r *big.Rat) SomeExchangeRate {
	s, err := NewSomeExchRate(src, dst, r)
	if err != nil {
		panic(fmt.Sprintf("NewSomeExchRate(%q, %q, %v) failed: %v", src, dst, r, err))
	}
	return s
}

// Some erases the currency types of the exchange rate.
func (r ExchangeRate[Src, Dst]) Some() SomeExchangeRate {
	return SomeExchangeRate{src: r.Src(), dst: r.Dst(), value: r.rat()}
}

// FromSomeExchRate restores the currency types of an erased exchange rate.
// It returns false unless both the source and the destination currencies
// of s match Src and Dst. [Dynamic] matches any currency.
func FromSomeExchRate[Src, Dst Currency](s SomeExchangeRate) (ExchangeRate[Src, Dst], bool) {
	if !isDynamic[Src]() && s.src != codeOf[Src]() {
		return ExchangeRate[Src, Dst]{}, false
	}
	if !isDynamic[Dst]() && s.dst != codeOf[Dst]() {
		return ExchangeRate[Src, Dst]{}, false
	}
	return newExchRateUnsafe[Src, Dst](s.src, s.dst, s.value), true
}

// WithSomeExchRate calls fn with the exchange rate carried by s, tagged with
// currency identities taken from its currency names.
func WithSomeExchRate[R any](s SomeExchangeRate, fn func(ExchangeRate[Dynamic, Dynamic]) R) R {
	r, _ := FromSomeExchRate[Dynamic, Dynamic](s)
	return fn(r)
}

// Src returns the code of the currency being exchanged.
func (s SomeExchangeRate) Src() string {
	return s.src
}

// Dst returns the code of the currency obtained in exchange.
func (s SomeExchangeRate) Dst() string {
	return s.dst
}

func (s SomeExchangeRate) rat() *big.Rat {
	if s.value == nil {
		return one
	}
	return s.value
}

// Rat returns a copy of the exchange rate as a rational number.
func (s SomeExchangeRate) Rat() *big.Rat {
	return new(big.Rat).Set(s.rat())
}

// Equal returns true if exchange rates have the same currencies and value.
func (s SomeExchangeRate) Equal(t SomeExchangeRate) bool {
	return s.src == t.src && s.dst == t.dst && s.rat().Cmp(t.rat()) == 0
}

// String implements the [fmt.Stringer] interface, like [ExchangeRate.String].
func (s SomeExchangeRate) String() string {
	return s.src + "/" + s.dst + " " + s.rat().RatString()
}

// FormatDecimal renders the exchange rate as a decimal string,
// see [ExchangeRate.FormatDecimal].
func (s SomeExchangeRate) FormatDecimal(a Approximation, seps Separators, digits int) (string, error) {
	r, _ := FromSomeExchRate[Dynamic, Dynamic](s)
	return r.FormatDecimal(a, seps, digits)
}

// ParseSomeExchRate converts a decimal string to an erased exchange rate
// from src to dst. See [ParseExchRate].
func ParseSomeExchRate(src, dst, s string, seps Separators) (SomeExchangeRate, error) {
	r, err := parseRateText(s, seps)
	if err != nil {
		return SomeExchangeRate{}, fmt.Errorf("parsing %v/%v exchange rate: %w", src, dst, err)
	}
	return NewSomeExchRate(src, dst, r)
}
