package money

import (
	"fmt"
	"strings"
)

//go:generate go run scripts/currency/codegen.go

// Currency is implemented by marker types that identify a currency at compile
// time, such as [USD] or [EUR].
// Marker types carry no data: the currency of a [Dense], [Discrete] or
// [ExchangeRate] is part of its type, so values in different currencies
// cannot be combined by mistake.
//
// New currencies are declared by the caller:
//
//	type DOGE struct{}
//
//	func (DOGE) Code() string { return "DOGE" }
//
// Code must return the same non-empty string on every call.
// It is used to check identity when erased values are specialized again,
// see [FromSomeDense].
type Currency interface {
	Code() string
}

// Unit is implemented by marker types that identify a unit of a currency
// and its [Scale], the number of units per base unit.
// See [Major] and [Minor] for the units defined by [ISO 4217].
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
type Unit interface {
	Scale() Scale
}

// Dynamic is a marker used in place of both a currency and a unit when the
// identity is only known at run time, for example after decoding an erased
// value. See [WithSomeDense], [WithSomeDiscrete] and [WithSomeExchRate].
//
// Values tagged with Dynamic carry their currency name and scale as data.
// Operations combining two such values check the names and scales and panic
// with [ErrCurrencyMismatch] or [ErrScaleMismatch] when they differ.
type Dynamic struct{}

// Code returns an empty string: a Dynamic identity is taken from the value.
func (Dynamic) Code() string { return "" }

// Scale returns the zero Scale: a Dynamic scale is taken from the value.
func (Dynamic) Scale() Scale { return Scale{} }

// Major is the base unit of currency C, with a scale of 1.
type Major[C Currency] struct{}

// Scale returns 1.
func (Major[C]) Scale() Scale { return newScaleUnsafe(one) }

// Minor is the minor unit of currency C as defined by ISO 4217,
// for example the cent of [USD] (scale 100) or the baisa of [OMR] (scale 1000).
//
// Scale panics if the currency has no minor unit, like [XAU].
// Use [MinorDigits] to check beforehand.
type Minor[C Currency] struct{}

// Scale returns 10^digits, where digits is the number of digits of the minor unit.
func (Minor[C]) Scale() Scale {
	code := codeOf[C]()
	s, ok := ISO.LookupScale(code, "minor")
	if !ok {
		panic(fmt.Sprintf("Minor[%v].Scale() failed: %v", code, ErrUnknownScale))
	}
	return s
}

func codeOf[C Currency]() string {
	var c C
	return c.Code()
}

func isDynamic[T any]() bool {
	var t T
	_, ok := any(t).(Dynamic)
	return ok
}

// ScaleLookup resolves the scale of a unit of a currency.
// LookupScale returns false if the currency is unknown or has no such unit,
// for example precious metals have no canonical smallest unit.
type ScaleLookup interface {
	LookupScale(curr, unit string) (Scale, bool)
}

// ISO resolves the units "major" and "minor" of the currencies listed in
// ISO 4217, plus BTC. Currency codes are case-insensitive.
var ISO ScaleLookup = isoScales{}

type isoScales struct{}

func (isoScales) LookupScale(curr, unit string) (Scale, bool) {
	curr = strings.ToUpper(curr)
	if _, ok := nameLookup[curr]; !ok {
		return Scale{}, false
	}
	switch strings.ToLower(unit) {
	case "major":
		return newScaleUnsafe(one), true
	case "minor":
		s, ok := minorLookup[curr]
		return s, ok
	}
	return Scale{}, false
}

// MinorDigits returns the number of digits after the decimal point required
// for representing the minor unit of a currency:
//   - 0 for currencies without fractional minor units, like [JPY];
//   - 2 for currencies like [USD], whose cent is 0.01 dollars;
//   - 3 for currencies like [OMR], whose baisa is 0.001 rials.
//
// MinorDigits returns false if the currency is unknown or has no minor unit.
func MinorDigits(curr string) (int, bool) {
	d, ok := digitsLookup[strings.ToUpper(curr)]
	return d, ok
}

// CurrencyName returns the English name of a known currency, for example
// "US Dollar" for "USD".
func CurrencyName(curr string) (string, bool) {
	n, ok := nameLookup[strings.ToUpper(curr)]
	return n, ok
}

// CurrencyNum returns the 3-digit ISO 4217 code of a known currency.
// Currencies outside ISO 4217, like BTC, have no such code.
func CurrencyNum(curr string) (string, bool) {
	n, ok := numLookup[strings.ToUpper(curr)]
	return n, ok && n != ""
}

var minorLookup = func() map[string]Scale {
	m := make(map[string]Scale, len(digitsLookup))
	for code, d := range digitsLookup {
		m[code] = pow10Scale(d)
	}
	return m
}()
