package money

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example   | Description                          |
//	| ------ | --------- | ------------------------------------ |
//	| %s, %v | USD 1/3   | Currency and exact amount            |
//	| %q     | "USD 1/3" | Quoted currency and exact amount     |
//	| %f     | 0.33      | Amount rounded half to even          |
//	| %c     | USD       | Currency                             |
//
// The '-' format flag can be used with all verbs.
// The '+' and '0' format flags can be used with the %f verb.
//
// Precision is only supported for the %f verb.
// The default precision is the number of minor digits of the currency,
// or 2 if the currency has no minor unit.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d Dense[C]) Format(state fmt.State, verb rune) {
	curr := d.Currency()
	formatter{
		typ:    "Dense",
		label:  curr,
		exact:  d.rat().RatString(),
		rat:    d.rat(),
		digits: currDigits(curr),
	}.format(state, verb)
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example                  | Description                  |
//	| ------ | ------------------------ | ---------------------------- |
//	| %s, %v | USD 1234 (scale 100)     | Currency, units and scale    |
//	| %q     | "USD 1234 (scale 100)"   | Quoted                       |
//	| %f     | 12.34                    | Amount in base units         |
//	| %d     | 1234                     | Number of units              |
//	| %c     | USD                      | Currency                     |
//
// The '-' format flag can be used with all verbs.
// The '+' and '0' format flags can be used with the %f and %d verbs.
//
// Precision is only supported for the %f verb.
// If the scale is a power of ten, the default precision shows every unit
// exactly; otherwise it is the default precision of [Dense.Format].
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (x Discrete[C, U]) Format(state fmt.State, verb rune) {
	curr, scale := x.Currency(), x.Scale()
	digits, ok := scaleDigits(scale)
	if !ok {
		digits = currDigits(curr)
	}
	formatter{
		typ:    "Discrete",
		label:  curr,
		exact:  x.int().String() + " (scale " + scale.String() + ")",
		rat:    x.Dense().rat(),
		digits: digits,
		units:  x.int(),
	}.format(state, verb)
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example           | Description                  |
//	| ------ | ----------------- | ---------------------------- |
//	| %s, %v | USD/EUR 23/25     | Currencies and exact rate    |
//	| %q     | "USD/EUR 23/25"   | Quoted currencies and rate   |
//	| %f     | 0.9200            | Rate rounded half to even    |
//	| %c     | USD/EUR           | Currencies                   |
//
// The '-' format flag can be used with all verbs.
// The '+' and '0' format flags can be used with the %f verb.
//
// Precision is only supported for the %f verb.
// The default precision is the sum of the default precisions of both
// currencies, see [Dense.Format].
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (r ExchangeRate[Src, Dst]) Format(state fmt.State, verb rune) {
	src, dst := r.Src(), r.Dst()
	formatter{
		typ:    "ExchangeRate",
		label:  src + "/" + dst,
		exact:  r.rat().RatString(),
		rat:    r.rat(),
		digits: currDigits(src) + currDigits(dst),
	}.format(state, verb)
}

// formatter renders a value for the verbs shared by amounts and rates.
type formatter struct {
	typ    string   // type name reported for unsupported verbs
	label  string   // currency code or pair
	exact  string   // exact value, as in String
	rat    *big.Rat // value rendered by %f
	digits int      // default precision of %f
	units  *big.Int // value rendered by %d, nil if unsupported
}

func (f formatter) format(state fmt.State, verb rune) {
	var s string
	numeric := false
	switch verb {
	case 's', 'S', 'v', 'V':
		s = f.label + " " + f.exact
	case 'q', 'Q':
		s = strconv.Quote(f.label + " " + f.exact)
	case 'f', 'F':
		digits := f.digits
		if p, ok := state.Precision(); ok {
			digits = p
		}
		s = formatRat(f.rat, Round, DecimalConf{LeadingPlus: state.Flag('+'), Digits: digits})
		numeric = true
	case 'd', 'D':
		if f.units == nil {
			f.badVerb(state, verb)
			return
		}
		s = f.units.String()
		if state.Flag('+') && f.units.Sign() > 0 {
			s = "+" + s
		}
		numeric = true
	case 'c', 'C':
		s = f.label
	default:
		f.badVerb(state, verb)
		return
	}

	// Padding
	if w, ok := state.Width(); ok {
		if n := utf8.RuneCountInString(s); w > n {
			switch {
			case state.Flag('-'):
				s += strings.Repeat(" ", w-n)
			case state.Flag('0') && numeric:
				sign := ""
				if s[0] == '-' || s[0] == '+' {
					sign, s = s[:1], s[1:]
				}
				s = sign + strings.Repeat("0", w-n) + s
			default:
				s = strings.Repeat(" ", w-n) + s
			}
		}
	}

	_, _ = state.Write([]byte(s))
}

func (f formatter) badVerb(state fmt.State, verb rune) {
	_, _ = fmt.Fprintf(state, "%%!%c(money.%v=%v %v)", verb, f.typ, f.label, f.exact)
}

// currDigits returns the default number of decimal digits for currency curr.
func currDigits(curr string) int {
	if n, ok := MinorDigits(curr); ok {
		return n
	}
	return DefaultDecimalConf.Digits
}

// scaleDigits returns k if scale s is 10^k.
func scaleDigits(s Scale) (int, bool) {
	r := s.rat()
	if !r.IsInt() {
		return 0, false
	}
	n := new(big.Int).Set(r.Num())
	ten, m := big.NewInt(10), new(big.Int)
	k := 0
	for n.Cmp(big.NewInt(1)) > 0 {
		n.QuoRem(n, ten, m)
		if m.Sign() != 0 {
			return 0, false
		}
		k++
	}
	return k, true
}
